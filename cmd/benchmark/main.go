package main

import (
	"context"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/toolbox/props"
	"github.com/dustin/go-humanize"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

var (
	observerCounts = []int{1, 10, 100, 1_000}
	pairCounts     = []int{1, 10, 100, 1_000}
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Measure write propagation through bound properties",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "iterations",
				Usage:   "Writes measured per scenario",
				Value:   100,
				Sources: cli.EnvVars("TOOLBOX_BENCH_ITERATIONS"),
			},
			&cli.StringFlag{
				Name:    "cpuprofile",
				Usage:   "Write a CPU profile to this file",
				Sources: cli.EnvVars("TOOLBOX_BENCH_CPUPROFILE"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if path := cmd.String("cpuprofile"); path != "" {
				f, err := os.Create(path)
				if err != nil {
					return err
				}
				defer f.Close()
				if err := pprof.StartCPUProfile(f); err != nil {
					return err
				}
				defer pprof.StopCPUProfile()
			}

			iters := int(cmd.Int("iterations"))
			logger.Info("warming up", zap.Int("iterations", iters))
			for _, render := range []bool{false, true} {
				if err := benchmarkOneWay(iters, render); err != nil {
					return err
				}
				if err := benchmarkBidirectional(iters, render); err != nil {
					return err
				}
			}
			return nil
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logger.Fatal("benchmark failed", zap.Error(err))
	}
}

func newTable(title string) table.Writer {
	tbl := table.NewWriter()
	tbl.SetTitle(title)
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "notifications", "avg", "min", "p75", "p99", "max"})
	return tbl
}

func appendResult(tbl table.Writer, name string, notifications int64, calc *tachymeter.Metrics) {
	tbl.AppendRow(table.Row{
		name,
		humanize.Comma(notifications),
		calc.Time.Avg,
		calc.Time.Min,
		calc.Time.P75,
		calc.Time.P99,
		calc.Time.Max,
	})
}

func counting(n *int64) *props.Observer[int] {
	return props.NewObserver(func(props.Event[int]) {
		*n++
	})
}

func benchmarkOneWay(iters int, shouldRender bool) error {
	tbl := newTable("One-way bindings")

	for _, pairs := range pairCounts {
		for _, obs := range observerCounts {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})
			notifications := new(int64)

			sources := make([]*props.Property[int], pairs)
			for i := range sources {
				src := props.NewProperty(0)
				dst := props.NewProperty(0)
				dst.Bind(src)
				for j := 0; j < obs; j++ {
					dst.AddObserver(counting(notifications))
				}
				sources[i] = src
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				for _, src := range sources {
					if err := src.Set(i + 1); err != nil {
						return fmt.Errorf("one-way write: %w", err)
					}
				}
				tach.AddTime(time.Since(start))
			}

			appendResult(tbl, fmt.Sprintf("pairs: %d * observers: %d", pairs, obs), *notifications, tach.Calc())
		}
	}

	if shouldRender {
		tbl.Render()
	}
	return nil
}

func benchmarkBidirectional(iters int, shouldRender bool) error {
	tbl := newTable("Bidirectional bindings")

	for _, pairs := range pairCounts {
		for _, obs := range observerCounts {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})
			notifications := new(int64)

			left := make([]*props.Property[int], pairs)
			right := make([]*props.Property[int], pairs)
			for i := range left {
				left[i] = props.NewProperty(0)
				right[i] = props.NewProperty(0)
				left[i].BindBidirectional(right[i])
				for j := 0; j < obs; j++ {
					left[i].AddObserver(counting(notifications))
					right[i].AddObserver(counting(notifications))
				}
			}

			for i := 0; i < iters; i++ {
				side := left
				if i%2 == 1 {
					side = right
				}
				start := time.Now()
				for _, p := range side {
					if err := p.Set(i + 1); err != nil {
						return fmt.Errorf("bidirectional write: %w", err)
					}
				}
				tach.AddTime(time.Since(start))
			}

			appendResult(tbl, fmt.Sprintf("pairs: %d * observers: %d", pairs, obs), *notifications, tach.Calc())
		}
	}

	if shouldRender {
		tbl.Render()
	}
	return nil
}
