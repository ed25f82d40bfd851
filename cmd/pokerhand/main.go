package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Eval    EvalCmd    `cmd:"" help:"Classify one or more hands"`
	Compare CompareCmd `cmd:"" help:"Compare two hands"`
	Batch   BatchCmd   `cmd:"" help:"Compare pairs of hands listed in a file"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokerhand"),
		kong.Description("Evaluate and compare five-card poker hands"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
		kong.Bind(&cli.Globals),
		kong.BindTo(os.Stdout, (*io.Writer)(nil)),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
