package main

import (
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version   kong.VersionFlag `short:"v" help:"Show version"`
	LogLevel  string           `default:"info" env:"LOG_LEVEL" help:"Log level (debug, info, warn, error)"`
	LogFormat string           `default:"console" env:"LOG_FORMAT" enum:"console,json" help:"Log output format"`

	Serve  ServeCmd  `cmd:"" default:"withargs" help:"Run the game server"`
	Random RandomCmd `cmd:"" help:"Print the random boards a fresh game produces"`
}

func main() {
	_ = godotenv.Load()
	zerolog.TimeFieldFormat = time.RFC3339Nano

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("cookies"),
		kong.Description("Four-in-a-row with cookies and milk on a 4x4 board"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
