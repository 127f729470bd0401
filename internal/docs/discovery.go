// Package docs discovers Markdown documents beneath a documentation root.
package docs

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/degville/documentation-tools/internal/logfields"
)

// ErrRootNotFound is returned when the configured documentation root does not
// exist. It is the only unrecoverable condition in a run.
var ErrRootNotFound = fmt.Errorf("documentation root not found")

// Discovery walks a documentation tree and collects Markdown files.
type Discovery struct {
	// Root is the documentation root directory.
	Root string

	// Exclude holds path.Match patterns tested against each slash-separated
	// path relative to Root; matching files and directories are skipped.
	Exclude []string
}

// Discover returns the absolute paths of all Markdown files under Root, in
// deterministic sorted order. Hidden directories (dot-prefixed) are skipped.
func (d *Discovery) Discover() ([]string, error) {
	info, err := os.Stat(d.Root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrRootNotFound, d.Root)
	}

	var files []string
	err = filepath.WalkDir(d.Root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(d.Root, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)

		if entry.IsDir() {
			if path != d.Root && (strings.HasPrefix(entry.Name(), ".") || d.excluded(rel)) {
				return filepath.SkipDir
			}
			return nil
		}

		if !strings.EqualFold(filepath.Ext(entry.Name()), ".md") || d.excluded(rel) {
			return nil
		}

		abs, absErr := filepath.Abs(path)
		if absErr != nil {
			return absErr
		}
		files = append(files, abs)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", d.Root, err)
	}

	sort.Strings(files)
	slog.Debug("Markdown files discovered", logfields.Path(d.Root), logfields.Count(len(files)))
	return files, nil
}

func (d *Discovery) excluded(rel string) bool {
	for _, pattern := range d.Exclude {
		if ok, _ := filepath.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}
