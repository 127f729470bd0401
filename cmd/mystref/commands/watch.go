package commands

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/degville/documentation-tools/internal/refs"
	"github.com/degville/documentation-tools/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	treeFlags
}

// Run executes the watch command: one full normalization up front, then
// debounced re-runs until interrupted.
func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	opts := w.pipelineOptions(cfg)

	run := func() error {
		_, err := refs.NormalizeTree(opts)
		return err
	}
	if err := run(); err != nil {
		return fmt.Errorf("initial normalization failed: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	watcher := watch.New(opts.Root, cfg.Debounce(), run)
	if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("watch failed: %w", err)
	}
	return nil
}
