// Package titles rewrites the title line of interface documents. Files named
// <base>-interface.md get their second line replaced with a heading of the
// form "# The <base> interface".
package titles

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/degville/documentation-tools/internal/logfields"
)

const suffix = "-interface.md"

// Result summarizes a title fixing run.
type Result struct {
	Matched int
	Updated int
	Skipped int
	Errors  int
}

// FixDir rewrites interface titles for every *-interface.md directly inside
// dir (non-recursive). Files with fewer than two lines are skipped, and
// per-file failures do not stop the run.
func FixDir(dir string) (Result, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*"+suffix))
	if err != nil {
		return Result{}, fmt.Errorf("globbing %s: %w", dir, err)
	}

	result := Result{Matched: len(matches)}
	for _, path := range matches {
		updated, err := FixFile(path)
		switch {
		case err != nil:
			slog.Error("Failed to fix interface title", logfields.File(path), logfields.Error(err))
			result.Errors++
		case updated:
			result.Updated++
		default:
			result.Skipped++
		}
	}

	return result, nil
}

// FixFile replaces the second line of one interface document with its derived
// title. It reports false, nil when the file is too short or already carries
// the expected title.
func FixFile(path string) (bool, error) {
	name := filepath.Base(path)
	if !strings.HasSuffix(name, suffix) {
		return false, fmt.Errorf("not an interface document: %s", name)
	}
	base := strings.TrimSuffix(name, suffix)
	title := "# The " + base + " interface"

	content, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("reading document: %w", err)
	}

	lines := strings.Split(string(content), "\n")
	if len(lines) < 2 {
		slog.Warn("Interface document has fewer than two lines, skipping", logfields.File(path))
		return false, nil
	}
	if lines[1] == title {
		return false, nil
	}

	slog.Debug("Replacing interface title",
		logfields.File(path), slog.String("old", lines[1]), slog.String("new", title))
	lines[1] = title

	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		return false, fmt.Errorf("writing document: %w", err)
	}
	return true, nil
}
