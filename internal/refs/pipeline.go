package refs

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/degville/documentation-tools/internal/docs"
	"github.com/degville/documentation-tools/internal/logfields"
)

// PipelineOptions configures a tree run.
type PipelineOptions struct {
	// Root is the documentation root directory.
	Root string

	// Exclude holds discovery exclude patterns.
	Exclude []string

	// Scope selects which headings the annotation phase targets.
	Scope HeadingScope

	// PreserveText keeps link display text in rewritten references.
	PreserveText bool
}

// Stats summarizes a tree run.
type Stats struct {
	FilesScanned   int
	FilesAnnotated int
	FilesRewritten int
	FileErrors     int
}

// AnnotateTree inserts heading targets across every Markdown file under the
// root. Per-file failures are logged and skipped; only a missing root aborts.
func AnnotateTree(opts PipelineOptions) (Stats, error) {
	files, _, err := discover(opts)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{FilesScanned: len(files)}
	for _, path := range files {
		changed, err := AnnotateFile(path, opts.Scope)
		if err != nil {
			slog.Error("Failed to annotate document", logfields.File(path), logfields.Error(err))
			stats.FileErrors++
			continue
		}
		if changed {
			stats.FilesAnnotated++
		}
	}

	slog.Info("Annotation completed",
		logfields.Count(stats.FilesScanned),
		slog.Int("annotated", stats.FilesAnnotated),
		slog.Int("errors", stats.FileErrors))
	return stats, nil
}

// ConvertTree rewrites internal links across every Markdown file under the
// root, resolving targets through a single shared cache. Annotation of the
// whole tree must have completed first; the cache assumes target files no
// longer change during conversion.
func ConvertTree(opts PipelineOptions) (Stats, error) {
	files, root, err := discover(opts)
	if err != nil {
		return Stats{}, err
	}

	resolver := NewResolver(NewCache())
	rewriteOpts := RewriteOptions{Root: root, PreserveText: opts.PreserveText}

	stats := Stats{FilesScanned: len(files)}
	for _, path := range files {
		changed, err := RewriteFile(path, resolver, rewriteOpts)
		if err != nil {
			slog.Error("Failed to convert document", logfields.File(path), logfields.Error(err))
			stats.FileErrors++
			continue
		}
		if changed {
			stats.FilesRewritten++
		}
	}

	slog.Info("Link conversion completed",
		logfields.Count(stats.FilesScanned),
		slog.Int("rewritten", stats.FilesRewritten),
		slog.Int("errors", stats.FileErrors))
	return stats, nil
}

// NormalizeTree runs both phases in order: all annotation writes complete
// before the first resolution read, so the resolver never observes
// pre-annotation content.
func NormalizeTree(opts PipelineOptions) (Stats, error) {
	annotated, err := AnnotateTree(opts)
	if err != nil {
		return annotated, err
	}

	converted, err := ConvertTree(opts)
	if err != nil {
		return converted, err
	}

	return Stats{
		FilesScanned:   converted.FilesScanned,
		FilesAnnotated: annotated.FilesAnnotated,
		FilesRewritten: converted.FilesRewritten,
		FileErrors:     annotated.FileErrors + converted.FileErrors,
	}, nil
}

// AnnotateFile annotates a single document, rewriting it on disk only when a
// label was inserted.
func AnnotateFile(path string, scope HeadingScope) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("reading document: %w", err)
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	lines := strings.Split(string(content), "\n")

	annotated, changed := Annotate(stem, lines, scope)
	if !changed {
		return false, nil
	}

	if err := writeFile(path, []byte(strings.Join(annotated, "\n"))); err != nil {
		return false, err
	}
	slog.Debug("Document annotated", logfields.File(path))
	return true, nil
}

// RewriteFile converts a single document's internal links, rewriting it on
// disk only when a substitution occurred.
func RewriteFile(path string, resolver *Resolver, opts RewriteOptions) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("reading document: %w", err)
	}

	out, changed, err := Rewrite(path, content, resolver, opts)
	if err != nil {
		return false, fmt.Errorf("rewriting links: %w", err)
	}
	if !changed {
		return false, nil
	}

	if err := writeFile(path, out); err != nil {
		return false, err
	}
	slog.Debug("Document links converted", logfields.File(path))
	return true, nil
}

func discover(opts PipelineOptions) (files []string, absRoot string, err error) {
	absRoot, err = filepath.Abs(opts.Root)
	if err != nil {
		return nil, "", fmt.Errorf("resolving root: %w", err)
	}

	discovery := &docs.Discovery{Root: absRoot, Exclude: opts.Exclude}
	files, err = discovery.Discover()
	if err != nil {
		return nil, "", err
	}
	return files, absRoot, nil
}

func writeFile(path string, content []byte) error {
	info, err := os.Stat(path)
	mode := os.FileMode(0o644)
	if err == nil {
		mode = info.Mode()
	}
	if err := os.WriteFile(path, content, mode); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	return nil
}
