package main

import (
	"context"
	"fmt"
	"go/format"
	"os"
	"time"

	"github.com/delaneyj/toolbox/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

const (
	outKey      = "out"
	maxArityKey = "max-arity"

	defaultMaxArity = 9
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the typed tuples",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    outKey,
				Usage:   "File to write the generated tuples to",
				Value:   "tuples/tuples.go",
				Sources: cli.EnvVars("TOOLBOX_CODEGEN_OUT"),
			},
			&cli.IntFlag{
				Name:    maxArityKey,
				Usage:   "Largest tuple to generate",
				Value:   defaultMaxArity,
				Sources: cli.EnvVars("TOOLBOX_CODEGEN_MAX_ARITY"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return generate(logger, cmd.String(outKey), int(cmd.Int(maxArityKey)))
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logger.Fatal("codegen failed", zap.Error(err))
	}
}

func generate(logger *zap.Logger, out string, maxArity int) error {
	start := time.Now()
	logger.Info("codegen for tuples started", zap.String("out", out), zap.Int("max_arity", maxArity))
	defer func() {
		logger.Info("codegen for tuples finished", zap.Duration("took", time.Since(start)))
	}()

	if maxArity < 2 || maxArity > templates.MaxArity {
		return fmt.Errorf("max arity must be between 2 and %d, got %d", templates.MaxArity, maxArity)
	}

	contents, err := format.Source([]byte(templates.Tuples(maxArity)))
	if err != nil {
		return fmt.Errorf("formatting generated tuples: %w", err)
	}
	if err := os.WriteFile(out, contents, 0644); err != nil {
		return err
	}
	return nil
}
