// Package commands defines the mystref command tree.
package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/degville/documentation-tools/internal/config"
	"github.com/degville/documentation-tools/internal/refs"
)

// Global context passed to subcommands.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"mystref.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Annotate  AnnotateCmd  `cmd:"" help:"Insert explicit heading targets into Markdown files"`
	Convert   ConvertCmd   `cmd:"" help:"Rewrite internal links into {ref} cross-references"`
	Normalize NormalizeCmd `cmd:"" help:"Annotate the tree, then convert its links"`
	Check     CheckCmd     `cmd:"" help:"Verify cross-references without modifying files"`
	Watch     WatchCmd     `cmd:"" help:"Re-run normalization when files change"`
	FixTitles FixTitlesCmd `cmd:"" name:"fix-titles" help:"Rewrite titles of *-interface.md files"`
}

// AfterApply runs after flag parsing; sets up logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// treeFlags are the flags shared by the commands that walk the tree. The
// positional root argument defaults to the config value (or the current
// directory).
type treeFlags struct {
	Root         string `arg:"" optional:"" help:"Documentation root directory (defaults to config root or .)"`
	LevelOneOnly bool   `name:"h1-only" help:"Annotate only top-level headings"`
	PreserveText bool   `short:"t" help:"Keep link display text in rewritten references"`
}

// pipelineOptions merges CLI flags over config defaults.
func (f *treeFlags) pipelineOptions(cfg *config.Config) refs.PipelineOptions {
	opts := refs.PipelineOptions{
		Root:         cfg.Root,
		Exclude:      cfg.Exclude,
		PreserveText: cfg.PreserveLinkText || f.PreserveText,
	}
	if f.Root != "" {
		opts.Root = f.Root
	}
	if cfg.LevelOneOnly || f.LevelOneOnly {
		opts.Scope = refs.ScopeLevelOne
	}
	return opts
}

// loadConfig loads the configuration named by the root --config flag.
func loadConfig(root *CLI) (*config.Config, error) {
	return config.Load(root.Config)
}
