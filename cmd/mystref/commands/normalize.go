package commands

import (
	"fmt"

	"github.com/degville/documentation-tools/internal/refs"
)

// NormalizeCmd implements the 'normalize' command: both phases in order, so
// every annotation write lands before the first resolution read.
type NormalizeCmd struct {
	treeFlags
}

// Run executes the normalize command.
func (n *NormalizeCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	if _, err := refs.NormalizeTree(n.pipelineOptions(cfg)); err != nil {
		return fmt.Errorf("normalization failed: %w", err)
	}
	return nil
}
