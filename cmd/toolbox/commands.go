package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/delaneyj/toolbox/api"
	"github.com/delaneyj/toolbox/geom"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func algorithmsCommand() *cli.Command {
	return &cli.Command{
		Name:  "algorithms",
		Usage: "List the known hash algorithms",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Usage:   "Print descriptors in this output format instead of a table (FULL, FULL_COMPRESSED, ...)",
				Sources: cli.EnvVars("TOOLBOX_FORMAT"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if name := cmd.String("format"); name != "" {
				f, err := api.ParseOutputFormat(name)
				if err != nil {
					return err
				}
				return writeDescriptors(os.Stdout, f)
			}
			writeAlgorithmTable(os.Stdout)
			return nil
		},
	}
}

func writeAlgorithmTable(w io.Writer) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"name", "ui string", "api string", "digest size"})
	for _, h := range api.HashAlgorithms() {
		size := "-"
		if hh, err := h.New(); err == nil {
			size = humanize.Bytes(uint64(hh.Size()))
		}
		tbl.Append([]string{h.Name(), h.UIString(), h.APIString(), size})
	}
	tbl.Render()
}

func writeDescriptors(w io.Writer, f api.OutputFormat) error {
	for _, h := range api.HashAlgorithms() {
		if _, err := fmt.Fprintln(w, h.Format(f)); err != nil {
			return err
		}
	}
	return nil
}

func hashCommand() *cli.Command {
	return &cli.Command{
		Name:      "hash",
		Usage:     "Print the digest of files, or of stdin when no file is given",
		ArgsUsage: "[file...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "algorithm",
				Aliases: []string{"a"},
				Usage:   "Hash algorithm, any common spelling (sha256, SHA-256, sha_256)",
				Value:   "sha256",
				Sources: cli.EnvVars("TOOLBOX_HASH_ALGORITHM"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logger, err := newLogger(cmd)
			if err != nil {
				return err
			}
			defer logger.Sync()

			h := api.HashAlgorithmFromText(cmd.String("algorithm"))
			files := cmd.Args().Slice()
			if len(files) == 0 {
				return hashReader(logger, os.Stdout, h, "-", os.Stdin)
			}
			for _, name := range files {
				if err := hashFile(logger, os.Stdout, h, name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func hashFile(logger *zap.Logger, w io.Writer, h api.HashAlgorithm, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return hashReader(logger, w, h, name, f)
}

func hashReader(logger *zap.Logger, w io.Writer, h api.HashAlgorithm, name string, r io.Reader) error {
	sum, n, err := h.SumReader(r)
	if err != nil {
		return err
	}
	logger.Debug("hashed input",
		zap.String("name", name),
		zap.String("algorithm", h.APIString()),
		zap.String("size", humanize.Bytes(uint64(n))),
	)
	_, err = fmt.Fprintf(w, "%s  %s\n", hex.EncodeToString(sum), name)
	return err
}

func radiiCommand() *cli.Command {
	return &cli.Command{
		Name:      "radii",
		Usage:     "Print corner radii, negative values are clamped to zero",
		ArgsUsage: "<radius> | <top-left> <top-right> <bottom-right> <bottom-left>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			c, err := parseRadii(cmd.Args().Slice())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(os.Stdout, c)
			return err
		},
	}
}

func parseRadii(args []string) (*geom.CornerRadii, error) {
	values := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
		if err != nil {
			return nil, fmt.Errorf("radius %d: %w", i+1, err)
		}
		values[i] = v
	}

	c := geom.UniformCornerRadii(0)
	switch len(values) {
	case 1:
		values = []float64{values[0], values[0], values[0], values[0]}
	case 4:
	default:
		return nil, fmt.Errorf("expected 1 or 4 radii, got %d", len(values))
	}
	c.SetTopLeft(values[0])
	c.SetTopRight(values[1])
	c.SetBottomRight(values[2])
	c.SetBottomLeft(values[3])
	return c, nil
}
