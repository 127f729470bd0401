package commands

import (
	"fmt"

	"github.com/degville/documentation-tools/internal/refs"
)

// ConvertCmd implements the 'convert' command: the second normalization
// phase, rewriting internal links against already-annotated files.
type ConvertCmd struct {
	treeFlags
}

// Run executes the convert command.
func (c *ConvertCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	if _, err := refs.ConvertTree(c.pipelineOptions(cfg)); err != nil {
		return fmt.Errorf("link conversion failed: %w", err)
	}
	return nil
}
