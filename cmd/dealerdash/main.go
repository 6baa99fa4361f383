package main

import (
	"github.com/alecthomas/kong"
)

type cli struct {
	Globals

	Serve    serveCmd    `cmd:"" help:"Serve the dashboard over HTTP."`
	Print    printCmd    `cmd:"" help:"Print a dashboard section to the terminal."`
	TUI      tuiCmd      `cmd:"" name:"tui" help:"Browse the dashboard interactively."`
	Validate validateCmd `cmd:"" help:"Validate a model document."`
	Export   exportCmd   `cmd:"" help:"Write the active model as a YAML document."`
	Widget   widgetCmd   `cmd:"" help:"Render a single widget document to the terminal."`
}

// Globals are flags shared by every command.
type Globals struct {
	Config   string `type:"path" env:"DEALERDASH_CONFIG" help:"Path to a YAML config file."`
	Model    string `help:"Model document path, registered source name, or http(s) URL. Defaults to the built-in dealer report."`
	LogLevel string `name:"log-level" help:"Override log level (debug, info, warn, error)."`
	Locale   string `help:"Locale used for number formatting (e.g. en, de, hi)."`
}

func main() {
	var args cli
	ctx := kong.Parse(&args,
		kong.Name("dealerdash"),
		kong.Description("OEM dealer performance dashboard."),
		kong.UsageOnError(),
	)
	a, err := newApp(args.Globals)
	ctx.FatalIfErrorf(err)
	defer a.Close()

	err = ctx.Run(a)
	ctx.FatalIfErrorf(err)
}
