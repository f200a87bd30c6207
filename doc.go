// Package gridpath computes shortest paths between two marked cells on a
// uniform 2D grid with impassable cells, using A* search and a Manhattan
// heuristic.
//
// Packages:
//
//	grid/         — Cell and Grid: explicit cell states, barrier-aware neighbor
//	                cache, Start/End bookkeeping, connected components
//	astar/        — Manhattan heuristic, the A* engine with a deterministic
//	                (f-score, insertion sequence) tie-break, path reconstruction
//	cmd/gridpath/ — headless CLI that builds a grid from flags or GRIDPATH_*
//	                environment variables and prints the path
//
// Quick example:
//
//	g, _ := grid.New(5, 5)
//	start, _ := g.SetStart(0, 0)
//	end, _ := g.SetEnd(4, 4)
//	_ = g.Toggle(2, 2, grid.Barrier)
//	g.RecomputeNeighbors() // required after barrier edits
//	path, err := astar.FindPath(g, start, end)
//
// Movement is 4-directional with unit cost. Searches are single-threaded and
// must not run concurrently on the same Grid.
package gridpath
