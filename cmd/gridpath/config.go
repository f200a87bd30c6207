package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/gridpath/grid"
)

// Configuration keys; flags use the same names, env vars are GRIDPATH_<KEY>
// with dashes as underscores.
const (
	keyRows          = "rows"
	keyCols          = "cols"
	keyCellSize      = "cell-size"
	keyStart         = "start"
	keyEnd           = "end"
	keyBarriers      = "barriers"
	keyLogLevel      = "log-level"
	keyMetrics       = "metrics"
	keyTrace         = "trace"
	keyMaxExpansions = "max-expansions"

	envPrefix   = "GRIDPATH"
	defaultSize = 20
)

// config is the resolved run configuration.
type config struct {
	Rows, Cols    int
	CellSize      int
	Start, End    grid.Coord
	Barriers      []grid.Coord
	LogLevel      slog.Level
	Metrics       bool
	Trace         bool
	MaxExpansions int
}

// bindConfig makes v read GRIDPATH_* environment variables and the flags
// in f, flags taking precedence.
func bindConfig(v *viper.Viper, f *pflag.FlagSet) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(f); err != nil {
		return fmt.Errorf("gridpath: bind flags: %w", err)
	}
	return nil
}

// loadConfig resolves flags, environment and defaults held by v.
func loadConfig(v *viper.Viper) (config, error) {
	cfg := config{
		Rows:          v.GetInt(keyRows),
		Cols:          v.GetInt(keyCols),
		CellSize:      v.GetInt(keyCellSize),
		Metrics:       v.GetBool(keyMetrics),
		Trace:         v.GetBool(keyTrace),
		MaxExpansions: v.GetInt(keyMaxExpansions),
	}

	var err error
	if cfg.Start, err = parseCoord(v.GetString(keyStart)); err != nil {
		return config{}, fmt.Errorf("--%s: %w", keyStart, err)
	}
	if cfg.End, err = parseCoord(v.GetString(keyEnd)); err != nil {
		return config{}, fmt.Errorf("--%s: %w", keyEnd, err)
	}
	if cfg.Barriers, err = parseCoords(v.GetStringSlice(keyBarriers)); err != nil {
		return config{}, fmt.Errorf("--%s: %w", keyBarriers, err)
	}
	if err = cfg.LogLevel.UnmarshalText([]byte(v.GetString(keyLogLevel))); err != nil {
		return config{}, fmt.Errorf("--%s: %w", keyLogLevel, err)
	}

	return cfg, nil
}

// parseCoord parses "row,col".
func parseCoord(s string) (grid.Coord, error) {
	rs, cs, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return grid.Coord{}, fmt.Errorf("coordinate %q: want row,col", s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return grid.Coord{}, fmt.Errorf("coordinate %q: row: %w", s, err)
	}
	c, err := strconv.Atoi(strings.TrimSpace(cs))
	if err != nil {
		return grid.Coord{}, fmt.Errorf("coordinate %q: col: %w", s, err)
	}
	return grid.Coord{Row: r, Col: c}, nil
}

// parseCoords parses each entry; entries may themselves hold several
// space-separated coordinates, as GRIDPATH_BARRIERS does.
func parseCoords(items []string) ([]grid.Coord, error) {
	var out []grid.Coord
	for _, item := range items {
		for _, f := range strings.Fields(item) {
			c, err := parseCoord(f)
			if err != nil {
				return nil, err
			}
			out = append(out, c)
		}
	}
	return out, nil
}
