package main

import (
	"log/slog"

	"github.com/alecthomas/kong"
	"github.com/degville/documentation-tools/cmd/mystref/commands"
)

var version = "dev"

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("mystref"),
		kong.Description("Normalize MyST Markdown cross-references: insert explicit heading targets and rewrite internal links."),
		kong.Vars{"version": version},
	)

	err := ctx.Run(&commands.Global{Logger: slog.Default()})
	ctx.FatalIfErrorf(err)
}
