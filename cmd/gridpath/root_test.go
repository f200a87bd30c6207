package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

// execute runs the root command with args and returns stdout, stderr and the error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCmd_SingleRow(t *testing.T) {
	out, _, err := execute(t, "--rows", "1", "--cols", "3", "--start", "0,0", "--end", "0,2")
	require.NoError(t, err)
	assert.Contains(t, out, "path: 0,0 -> 0,1 -> 0,2")
	assert.Contains(t, out, "cost: 2 expanded: 3 steps: 2")
}

func TestRootCmd_Barriers(t *testing.T) {
	out, _, err := execute(t,
		"--rows", "3", "--cols", "3",
		"--start", "1,0", "--end", "1,2",
		"-b", "1,1",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "path: 1,0 -> 2,0 -> 2,1 -> 2,2 -> 1,2")
}

func TestRootCmd_NotFound(t *testing.T) {
	out, _, err := execute(t,
		"--rows", "3", "--cols", "3",
		"--start", "0,0", "--end", "0,2",
		"--barriers", "0,1", "--barriers", "1,1", "--barriers", "2,1",
	)
	assert.ErrorIs(t, err, astar.ErrNotFound)
	assert.Contains(t, out, "no path from 0,0 to 0,2")
}

func TestRootCmd_Env(t *testing.T) {
	t.Setenv("GRIDPATH_ROWS", "3")
	t.Setenv("GRIDPATH_COLS", "3")
	t.Setenv("GRIDPATH_START", "0,0")
	t.Setenv("GRIDPATH_END", "0,2")
	t.Setenv("GRIDPATH_BARRIERS", "0,1 1,1 2,1")

	out, _, err := execute(t)
	assert.ErrorIs(t, err, astar.ErrNotFound)
	assert.Contains(t, out, "no path")

	out, _, err = execute(t, "--end", "2,0")
	require.NoError(t, err)
	assert.Contains(t, out, "path: 0,0 -> 1,0 -> 2,0")
}

func TestRootCmd_MaxExpansions(t *testing.T) {
	out, _, err := execute(t, "--rows", "5", "--cols", "5", "--start", "0,0", "--end", "4,4", "--max-expansions", "2")
	assert.ErrorIs(t, err, astar.ErrExpansionLimit)
	assert.Contains(t, out, "no path")
}

func TestRootCmd_InvalidInput(t *testing.T) {
	_, _, err := execute(t, "--start", "x", "--end", "1,1")
	assert.Error(t, err)

	_, _, err = execute(t, "--rows", "2", "--cols", "2", "--start", "0,0", "--end", "5,5")
	assert.Error(t, err)

	_, _, err = execute(t, "--rows", "0", "--start", "0,0", "--end", "1,1")
	assert.Error(t, err)

	_, _, err = execute(t, "--rows", "2", "--cols", "2", "--start", "1,1", "--end", "1,1")
	assert.ErrorIs(t, err, grid.ErrInvalidState, "end cannot take the start cell")
}

func TestRootCmd_Metrics(t *testing.T) {
	out, _, err := execute(t, "--rows", "2", "--cols", "2", "--start", "0,0", "--end", "1,1", "--metrics")
	require.NoError(t, err)
	assert.Contains(t, out, `gridpath_search_total{result="found"}`)
	assert.Contains(t, out, "gridpath_search_expanded_cells_count")
	assert.Contains(t, out, "gridpath_search_duration_seconds_sum")
}

func TestRootCmd_Trace(t *testing.T) {
	_, errOut, err := execute(t, "--rows", "2", "--cols", "2", "--start", "0,0", "--end", "0,1", "--trace")
	require.NoError(t, err)
	assert.Contains(t, errOut, "astar.Search")
}

func TestRootCmd_Logging(t *testing.T) {
	_, errOut, err := execute(t, "--rows", "2", "--cols", "2", "--start", "0,0", "--end", "0,1", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, errOut, "grid_ready")
	assert.Contains(t, errOut, "search_done")
}
