package commands

import (
	"fmt"

	"github.com/degville/documentation-tools/internal/refs"
)

// AnnotateCmd implements the 'annotate' command: the first normalization
// phase, inserting explicit targets above headings.
type AnnotateCmd struct {
	treeFlags
}

// Run executes the annotate command.
func (a *AnnotateCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	if _, err := refs.AnnotateTree(a.pipelineOptions(cfg)); err != nil {
		return fmt.Errorf("annotation failed: %w", err)
	}
	return nil
}
