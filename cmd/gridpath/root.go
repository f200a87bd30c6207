package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

// newRootCmd builds the gridpath command with its own viper instance so
// tests can run it repeatedly.
func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:          "gridpath",
		Short:        "Find a shortest 4-directional path on a grid with A*",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	f := cmd.Flags()
	f.Int(keyRows, defaultSize, "number of rows")
	f.Int(keyCols, defaultSize, "number of columns")
	f.Int(keyCellSize, 1, "cell size in pixels (reported only)")
	f.String(keyStart, "", "start cell as row,col")
	f.String(keyEnd, "", "end cell as row,col")
	f.StringArrayP(keyBarriers, "b", nil, "barrier cell as row,col (repeatable)")
	f.String(keyLogLevel, "warn", "log level: debug, info, warn, error")
	f.Bool(keyMetrics, false, "print gridpath metrics after the run")
	f.Bool(keyTrace, false, "write trace spans to stderr")
	f.Int(keyMaxExpansions, 0, "stop after this many expansions (0 = unlimited)")

	if err := bindConfig(v, f); err != nil {
		panic(err)
	}

	return cmd
}

// run builds the grid, searches it and reports to out; logs and spans go to errOut.
func run(ctx context.Context, cfg config, out, errOut io.Writer) error {
	logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: cfg.LogLevel}))

	if cfg.Trace {
		exp, err := stdouttrace.New(stdouttrace.WithWriter(errOut), stdouttrace.WithPrettyPrint())
		if err != nil {
			return fmt.Errorf("gridpath: trace exporter: %w", err)
		}
		tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp))
		otel.SetTracerProvider(tp)
		defer func() { _ = tp.Shutdown(context.Background()) }()
	}

	g, start, end, err := buildGrid(cfg)
	if err != nil {
		return err
	}
	logger.Info("grid_ready",
		slog.Int("rows", g.Rows()),
		slog.Int("cols", g.Cols()),
		slog.Int("barriers", g.Count(grid.Barrier)),
	)

	steps := 0
	res, err := astar.Search(g, start, end,
		astar.WithContext(ctx),
		astar.WithLogger(logger),
		astar.WithMaxExpansions(cfg.MaxExpansions),
		astar.WithOnStep(func(*grid.Grid) { steps++ }),
	)
	switch {
	case errors.Is(err, astar.ErrNotFound):
		fmt.Fprintf(out, "no path from %v to %v\n", cfg.Start, cfg.End)
	case err != nil:
		return err
	default:
		fmt.Fprintf(out, "path: %s\n", joinCoords(res.Coords()))
		fmt.Fprintf(out, "cost: %d expanded: %d steps: %d\n", res.Cost, res.Expanded, steps)
	}

	if cfg.Metrics {
		if merr := writeMetrics(out); merr != nil {
			return merr
		}
	}
	return err
}

// buildGrid applies barriers first, then endpoints, and refreshes neighbors.
func buildGrid(cfg config) (*grid.Grid, *grid.Cell, *grid.Cell, error) {
	g, err := grid.New(cfg.Rows, cfg.Cols, grid.WithCellSize(cfg.CellSize))
	if err != nil {
		return nil, nil, nil, err
	}
	for _, b := range cfg.Barriers {
		if err := g.Toggle(b.Row, b.Col, grid.Barrier); err != nil {
			return nil, nil, nil, fmt.Errorf("barrier %v: %w", b, err)
		}
	}
	start, err := g.SetStart(cfg.Start.Row, cfg.Start.Col)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("start %v: %w", cfg.Start, err)
	}
	end, err := g.SetEnd(cfg.End.Row, cfg.End.Col)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("end %v: %w", cfg.End, err)
	}
	g.RecomputeNeighbors()

	return g, start, end, nil
}

func joinCoords(cs []grid.Coord) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return strings.Join(parts, " -> ")
}
