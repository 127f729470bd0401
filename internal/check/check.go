// Package check verifies cross-references without modifying any file: it
// reports internal links that would not resolve to an explicit target, and
// heading pairs whose anchors collide within one document.
package check

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/degville/documentation-tools/internal/docs"
	"github.com/degville/documentation-tools/internal/markdown"
	"github.com/degville/documentation-tools/internal/refs"
)

// Severity indicates the importance of a reported issue.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns the human-readable severity name.
func (s Severity) String() string {
	if s == SeverityError {
		return "ERROR"
	}
	return "WARNING"
}

// Issue is a single problem found in a document.
type Issue struct {
	FilePath string
	Severity Severity
	Rule     string
	Message  string
}

// Result aggregates the issues of one run.
type Result struct {
	Issues     []Issue
	FilesTotal int
}

// HasErrors reports whether any error-level issue exists.
func (r *Result) HasErrors() bool {
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Options configures a check run.
type Options struct {
	Root    string
	Exclude []string
}

// Run scans the tree and returns all issues. Per-file read failures become
// issues rather than aborting the run.
func Run(opts Options) (*Result, error) {
	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return nil, fmt.Errorf("resolving root: %w", err)
	}

	discovery := &docs.Discovery{Root: root, Exclude: opts.Exclude}
	files, err := discovery.Discover()
	if err != nil {
		return nil, err
	}

	resolver := refs.NewResolver(refs.NewCache())
	result := &Result{FilesTotal: len(files)}

	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			result.Issues = append(result.Issues, Issue{
				FilePath: path,
				Severity: SeverityError,
				Rule:     "readable",
				Message:  err.Error(),
			})
			continue
		}

		result.Issues = append(result.Issues, checkLinks(path, content, root, resolver)...)
		result.Issues = append(result.Issues, checkAnchorCollisions(path, content)...)
	}

	return result, nil
}

// checkLinks reports inline links that point at a document but cannot be
// resolved to an explicit target label.
func checkLinks(path string, content []byte, root string, resolver *refs.Resolver) []Issue {
	var issues []Issue
	sourceDir := filepath.Dir(path)

	for _, link := range markdown.ExtractLinks(content) {
		if link.Kind != markdown.LinkKindInline {
			continue
		}
		target, fragment, internal := refs.ClassifyDestination(link.Destination, sourceDir, root)
		if !internal {
			continue
		}

		if _, ok := resolver.Resolve(target, fragment); !ok {
			issues = append(issues, Issue{
				FilePath: path,
				Severity: SeverityError,
				Rule:     "link-resolves",
				Message:  fmt.Sprintf("link %q does not resolve to an explicit target", link.Destination),
			})
		}
	}

	return issues
}

// checkAnchorCollisions reports headings within one document that normalize
// to the same anchor. The tools never repair these; the second heading's
// label would collide with the first.
func checkAnchorCollisions(path string, content []byte) []Issue {
	seen := make(map[string]string)
	var issues []Issue

	for _, line := range strings.Split(string(content), "\n") {
		heading, ok := refs.ParseHeading(line)
		if !ok {
			continue
		}
		anchor := refs.NormalizeAnchor(heading.Text)
		if first, dup := seen[anchor]; dup {
			issues = append(issues, Issue{
				FilePath: path,
				Severity: SeverityWarning,
				Rule:     "anchor-collision",
				Message:  fmt.Sprintf("headings %q and %q share anchor %q", first, heading.Text, anchor),
			})
			continue
		}
		seen[anchor] = heading.Text
	}

	return issues
}
