package commands

import (
	"fmt"
	"log/slog"

	"github.com/degville/documentation-tools/internal/titles"
)

// FixTitlesCmd implements the 'fix-titles' command.
type FixTitlesCmd struct {
	Dir string `arg:"" optional:"" default:"." help:"Directory containing *-interface.md files"`
}

// Run executes the fix-titles command.
func (f *FixTitlesCmd) Run(_ *Global, _ *CLI) error {
	result, err := titles.FixDir(f.Dir)
	if err != nil {
		return fmt.Errorf("fixing interface titles: %w", err)
	}

	if result.Matched == 0 {
		slog.Info("No interface documents found", slog.String("dir", f.Dir))
		return nil
	}
	slog.Info("Interface titles processed",
		slog.Int("matched", result.Matched),
		slog.Int("updated", result.Updated),
		slog.Int("skipped", result.Skipped),
		slog.Int("errors", result.Errors))
	return nil
}
