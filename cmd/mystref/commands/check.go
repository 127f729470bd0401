package commands

import (
	"fmt"
	"os"

	"github.com/degville/documentation-tools/internal/check"
)

// CheckCmd implements the 'check' command.
type CheckCmd struct {
	Root  string `arg:"" optional:"" help:"Documentation root directory (defaults to config root or .)"`
	Quiet bool   `short:"q" help:"Only show errors, suppress warnings"`
}

// Run executes the check command. Exit code 2 signals unresolvable links.
func (c *CheckCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	opts := check.Options{Root: cfg.Root, Exclude: cfg.Exclude}
	if c.Root != "" {
		opts.Root = c.Root
	}

	result, err := check.Run(opts)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	for _, issue := range result.Issues {
		if c.Quiet && issue.Severity != check.SeverityError {
			continue
		}
		fmt.Fprintf(os.Stdout, "%s: %s: [%s] %s\n", issue.Severity, issue.FilePath, issue.Rule, issue.Message)
	}
	fmt.Fprintf(os.Stdout, "%d files checked, %d issues\n", result.FilesTotal, len(result.Issues))

	if result.HasErrors() {
		os.Exit(2)
	}
	return nil
}
