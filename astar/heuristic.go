package astar

import "github.com/katalvlaran/gridpath/grid"

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|.
func Manhattan(a, b grid.Coord) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
