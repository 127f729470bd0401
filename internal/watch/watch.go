// Package watch re-runs the normalization pipeline whenever Markdown files
// under the root change, with debouncing so one save triggers one run.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/degville/documentation-tools/internal/logfields"
	"github.com/fsnotify/fsnotify"
)

// Watcher monitors a documentation tree and invokes a callback after changes
// settle.
type Watcher struct {
	root     string
	debounce time.Duration
	run      func() error
}

// New creates a watcher over root. run is invoked once per settled burst of
// changes.
func New(root string, debounce time.Duration, run func() error) *Watcher {
	return &Watcher{root: root, debounce: debounce, run: run}
}

// Run watches until ctx is cancelled. The tree is watched recursively;
// directories created while watching are added on the fly.
//
// Runs triggered by the pipeline's own writes converge: a second pass over
// already-normalized files modifies nothing, so no further events fire.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer fsw.Close()

	if err := w.addRecursive(fsw, w.root); err != nil {
		return err
	}

	slog.Info("Watching documentation tree", logfields.Path(w.root))

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			if event.Op.Has(fsnotify.Create) {
				// New directories need their own watch.
				_ = w.addRecursive(fsw, event.Name)
			}
			slog.Debug("Change detected", logfields.Path(event.Name), slog.String("op", event.Op.String()))
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", logfields.Error(err))

		case <-fire:
			fire = nil
			if err := w.run(); err != nil {
				slog.Error("Normalization run failed", logfields.Error(err))
			}
		}
	}
}

// relevant filters events down to Markdown content changes and directory
// creation.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op.Has(fsnotify.Chmod) {
		return false
	}
	base := filepath.Base(event.Name)
	if strings.HasPrefix(base, ".") {
		return false
	}
	// Directory events carry no extension; keep them so new subtrees get
	// watched and trigger a run.
	return strings.EqualFold(filepath.Ext(base), ".md") || filepath.Ext(base) == ""
}

func (w *Watcher) addRecursive(fsw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return nil // unwatchable entries are skipped, not fatal
		}
		if !entry.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(entry.Name(), ".") {
			return filepath.SkipDir
		}
		if err := fsw.Add(path); err != nil {
			slog.Warn("Failed to watch directory", logfields.Path(path), logfields.Error(err))
		}
		return nil
	})
}
