package refs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeTree_EndToEnd(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "guide.md", "# Guide\n\n## My Section\n\nBody.\n")
	writeDoc(t, root, "index.md", "# Index\n\nSee [the section](guide.md#my-section) and [the guide](guide.md).\n")

	stats, err := NormalizeTree(PipelineOptions{Root: root})
	require.NoError(t, err)
	require.Equal(t, 2, stats.FilesScanned)
	require.Equal(t, 2, stats.FilesAnnotated)
	require.Equal(t, 1, stats.FilesRewritten)
	require.Zero(t, stats.FileErrors)

	guide, err := os.ReadFile(filepath.Join(root, "guide.md"))
	require.NoError(t, err)
	require.Equal(t,
		"(ref-guide-guide)=\n# Guide\n\n(ref-guide-my-section)=\n## My Section\n\nBody.\n",
		string(guide))

	index, err := os.ReadFile(filepath.Join(root, "index.md"))
	require.NoError(t, err)
	require.Equal(t,
		"(ref-index-index)=\n# Index\n\nSee {ref}`ref-guide-my-section` and {ref}`ref-guide-guide`.\n",
		string(index))
}

func TestNormalizeTree_SecondRunChangesNothing(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "guide.md", "# Guide\n\n## My Section\n")
	writeDoc(t, root, "index.md", "See [x](guide.md#my-section).\n")

	_, err := NormalizeTree(PipelineOptions{Root: root})
	require.NoError(t, err)

	before := readTree(t, root)
	stats, err := NormalizeTree(PipelineOptions{Root: root})
	require.NoError(t, err)
	require.Zero(t, stats.FilesAnnotated)
	require.Zero(t, stats.FilesRewritten)
	require.Equal(t, before, readTree(t, root))
}

// A document with nothing to annotate and nothing to rewrite is never
// touched, including its modification time.
func TestNormalizeTree_NonMutation(t *testing.T) {
	root := t.TempDir()
	path := writeDoc(t, root, "done.md",
		"(ref-done-done)=\n# Done\n\nVisit [site](https://example.com).\n")

	infoBefore, err := os.Stat(path)
	require.NoError(t, err)

	_, err = NormalizeTree(PipelineOptions{Root: root})
	require.NoError(t, err)

	infoAfter, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, infoBefore.ModTime(), infoAfter.ModTime())
}

func TestNormalizeTree_RootMissing(t *testing.T) {
	_, err := NormalizeTree(PipelineOptions{Root: filepath.Join(t.TempDir(), "absent")})
	require.Error(t, err)
}

func TestAnnotateTree_LevelOneScope(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "doc.md", "# Top\n\n## Deep\n")

	_, err := AnnotateTree(PipelineOptions{Root: root, Scope: ScopeLevelOne})
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(root, "doc.md"))
	require.NoError(t, err)
	require.Equal(t, "(ref-doc-top)=\n# Top\n\n## Deep\n", string(content))
}

func TestConvertTree_PreserveText(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "guide.md", "(ref-guide-guide)=\n# Guide\n")
	writeDoc(t, root, "index.md", "Read [the guide](guide.md).\n")

	_, err := ConvertTree(PipelineOptions{Root: root, PreserveText: true})
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(root, "index.md"))
	require.NoError(t, err)
	require.Equal(t, "Read {ref}`the guide <ref-guide-guide>`.\n", string(content))
}

func TestConvertTree_ExcludePatterns(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "drafts"), 0o755))
	writeDoc(t, root, "guide.md", "(ref-guide-guide)=\n# Guide\n")
	draft := writeDoc(t, filepath.Join(root, "drafts"), "wip.md", "See [g](../guide.md).\n")

	_, err := ConvertTree(PipelineOptions{Root: root, Exclude: []string{"drafts/*"}})
	require.NoError(t, err)

	content, err := os.ReadFile(draft)
	require.NoError(t, err)
	require.Equal(t, "See [g](../guide.md).\n", string(content))
}

func readTree(t *testing.T, root string) map[string]string {
	t.Helper()
	out := make(map[string]string)
	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		content, err := os.ReadFile(filepath.Join(root, entry.Name()))
		require.NoError(t, err)
		out[entry.Name()] = string(content)
	}
	return out
}
