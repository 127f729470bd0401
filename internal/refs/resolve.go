package refs

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/degville/documentation-tools/internal/logfields"
)

// Resolver locates the explicit target label for a heading in a target
// document, memoizing outcomes in its cache.
type Resolver struct {
	cache *Cache
}

// NewResolver creates a resolver backed by the given cache.
func NewResolver(cache *Cache) *Resolver {
	return &Resolver{cache: cache}
}

// Resolve returns the ref- label preceding the heading identified by fragment
// in the document at targetPath, or ok=false when no label can be determined.
//
// An empty fragment targets the document's first top-level heading. A missing
// or unreadable file resolves negatively, never as an error: the caller keeps
// the original link and moves on.
//
// Scanning stops at the first heading whose anchor matches the fragment. If
// that heading has no label above it, resolution fails without considering
// later headings: a matched-but-unlabeled heading is a documentation defect,
// and silently picking a different heading would produce a wrong reference.
func (r *Resolver) Resolve(targetPath, fragment string) (string, bool) {
	abs, err := filepath.Abs(targetPath)
	if err != nil {
		return "", false
	}

	key := CacheKey{Path: abs, Fragment: fragment}
	if key.Fragment == "" {
		key.Fragment = firstHeadingSentinel
	}
	if label, ok := r.cache.Get(key); ok {
		return label, label != ""
	}

	label := r.scan(abs, fragment)
	r.cache.Put(key, label)
	return label, label != ""
}

func (r *Resolver) scan(abs, fragment string) string {
	content, err := os.ReadFile(abs)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("Could not read link target", logfields.Target(abs), logfields.Error(err))
		}
		return ""
	}

	prev := ""
	for _, line := range strings.Split(string(content), "\n") {
		if r.matches(line, fragment) {
			label, ok := ParseRefLabel(prev)
			if !ok {
				return ""
			}
			return label
		}
		prev = line
	}

	return ""
}

// matches reports whether line is the heading the lookup targets.
func (r *Resolver) matches(line, fragment string) bool {
	heading, ok := ParseHeading(line)
	if !ok {
		return false
	}
	if fragment == "" {
		return heading.Level == 1
	}
	return NormalizeAnchor(heading.Text) == fragment
}
