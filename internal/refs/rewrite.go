package refs

import (
	"log/slog"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/degville/documentation-tools/internal/logfields"
	"github.com/degville/documentation-tools/internal/markdown"
)

// linkPattern matches inline links, capturing an optional leading image
// marker (Go regexp has no lookbehind), the display text, and the
// destination.
var linkPattern = regexp.MustCompile(`(!?)\[([^\]]+)\]\(([^)]+)\)`)

// RewriteOptions controls link rewriting.
type RewriteOptions struct {
	// Root is the absolute documentation root; destinations starting with /
	// are resolved against it.
	Root string

	// PreserveText emits {ref}`text <label>` instead of {ref}`label`,
	// keeping the original display text.
	PreserveText bool
}

// Rewrite replaces internal links in content with {ref} cross-references
// wherever the destination resolves to an explicit target label.
//
// External links (any scheme), anchor-only links, images, and links whose
// destination does not resolve are left byte-for-byte unchanged. docPath is
// the path of the document being rewritten; relative destinations resolve
// against its directory.
func Rewrite(docPath string, content []byte, resolver *Resolver, opts RewriteOptions) ([]byte, bool, error) {
	sourceDir := filepath.Dir(docPath)

	var edits []markdown.Edit
	for _, m := range linkPattern.FindAllSubmatchIndex(content, -1) {
		// m[2:4] image marker, m[4:6] text, m[6:8] destination.
		if m[3] > m[2] {
			continue // image
		}
		text := string(content[m[4]:m[5]])
		dest := string(content[m[6]:m[7]])

		target, fragment, ok := ClassifyDestination(dest, sourceDir, opts.Root)
		if !ok {
			continue
		}

		label, found := resolver.Resolve(target, fragment)
		if !found {
			slog.Warn("No target found for link, keeping original",
				logfields.File(docPath), logfields.Dest(dest), logfields.Target(target))
			continue
		}

		ref := "{ref}`" + label + "`"
		if opts.PreserveText {
			ref = "{ref}`" + text + " <" + label + ">`"
		}
		slog.Debug("Rewriting link",
			logfields.File(docPath), logfields.Dest(dest), logfields.Label(label))
		edits = append(edits, markdown.Edit{Start: m[0], End: m[1], Replacement: []byte(ref)})
	}

	if len(edits) == 0 {
		return content, false, nil
	}

	out, err := markdown.ApplyEdits(content, edits)
	if err != nil {
		return nil, false, err
	}
	return out, true, nil
}

// ClassifyDestination decides whether a link destination is an internal
// document link and, if so, resolves it to a target file path and fragment.
//
// Destinations with a scheme are external; destinations with an empty path
// are anchor-only. Both return ok=false. A destination starting with / is
// rooted at the documentation root, anything else at sourceDir, and the .md
// extension is appended unless already present (case-insensitive).
func ClassifyDestination(dest, sourceDir, root string) (target, fragment string, ok bool) {
	u, err := url.Parse(dest)
	if err != nil {
		return "", "", false
	}
	if u.Scheme != "" {
		return "", "", false // external
	}
	if u.Path == "" {
		return "", "", false // anchor-only
	}

	var base string
	if strings.HasPrefix(u.Path, "/") {
		base = filepath.Join(root, strings.TrimLeft(u.Path, `/\`))
	} else {
		base = filepath.Join(sourceDir, u.Path)
	}

	if !strings.HasSuffix(strings.ToLower(base), ".md") {
		base += ".md"
	}

	return filepath.Clean(base), u.Fragment, true
}
