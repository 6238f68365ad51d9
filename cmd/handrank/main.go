package main

import (
	"github.com/alecthomas/kong"

	"github.com/lox/handrank/internal/config"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Eval    EvalCmd          `cmd:"" help:"Rank one hand against a board"`
	Summary SummaryCmd       `cmd:"" help:"Rank several hands against a shared board"`
	Deal    DealCmd          `cmd:"" help:"Deal a random hand and summarize it street by street"`
	Tables  TablesCmd        `cmd:"" help:"Write or check persisted lookup tables"`
	Verify  VerifyCmd        `cmd:"" help:"Evaluate every five-card hand and check the distribution"`
	Serve   ServeCmd         `cmd:"" help:"Serve evaluations over HTTP and WebSocket"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("handrank"),
		kong.Description("Poker hand evaluation using perfect-hash lookup tables"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":     version,
			"config_file": config.DefaultFile,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
