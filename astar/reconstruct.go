package astar

import "github.com/katalvlaran/gridpath/grid"

// Reconstruct walks cameFrom backwards from end until it reaches a cell with
// no predecessor (the start) and returns the cells in start→end order,
// end included. Every predecessor except the start is marked Path.
// If end has no predecessor the result is empty.
func Reconstruct(cameFrom map[*grid.Cell]*grid.Cell, end *grid.Cell) []*grid.Cell {
	if _, ok := cameFrom[end]; !ok {
		return nil
	}
	path := []*grid.Cell{end}
	for cur := end; ; {
		prev, ok := cameFrom[cur]
		if !ok {
			break
		}
		if _, more := cameFrom[prev]; more {
			prev.Mark(grid.Path)
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse to get start → end
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
