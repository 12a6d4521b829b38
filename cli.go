package main

import (
	"context"

	"github.com/urfave/cli/v3"
)

// Applicator defines the interface for the core application logic.
// This allows the CLI to be tested independently of the app implementation.
type Applicator interface {
	Calculate(ctx context.Context, cfgPath, logLevel string, noHelp bool) error
}

// BuildCLI creates the root command. With no flags it starts an
// interactive session with the default configuration.
func BuildCLI(app Applicator) *cli.Command {
	return &cli.Command{
		Name:  "calc",
		Usage: "An interactive arbitrary-precision calculator",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to an optional configuration file",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level: debug, info, warn or error",
			},
			&cli.BoolFlag{
				Name:  "no-help",
				Usage: "do not show the command reference at startup",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return app.Calculate(ctx, c.String("config"), c.String("log-level"), c.Bool("no-help"))
		},
	}
}
