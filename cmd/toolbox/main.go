package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func main() {
	cmd := &cli.Command{
		Name:  "toolbox",
		Usage: "Inspect the toolbox descriptors and value types",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "Log at debug level in a human readable format",
				Sources: cli.EnvVars("TOOLBOX_VERBOSE"),
			},
		},
		Commands: []*cli.Command{
			algorithmsCommand(),
			hashCommand(),
			radiiCommand(),
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(cmd *cli.Command) (*zap.Logger, error) {
	if cmd.Bool("verbose") {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
