// File: astar/example_test.go
package astar_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

// ExampleFindPath walks a single corridor.
func ExampleFindPath() {
	g, _ := grid.New(1, 3)
	start, _ := g.SetStart(0, 0)
	end, _ := g.SetEnd(0, 2)
	g.RecomputeNeighbors()

	path, err := astar.FindPath(g, start, end)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, c := range path {
		fmt.Print(c, " ")
	}
	fmt.Println()
	// Output:
	// (0,0) (0,1) (0,2)
}

// ExampleSearch routes around two barrier walls.
//
//	S . . . .
//	. # # # .
//	. . . . .
//	. # # # .
//	. . . . E
func ExampleSearch() {
	g, _ := grid.New(5, 5)
	for _, c := range []int{1, 2, 3} {
		_ = g.Toggle(1, c, grid.Barrier)
		_ = g.Toggle(3, c, grid.Barrier)
	}
	start, _ := g.SetStart(0, 0)
	end, _ := g.SetEnd(4, 4)
	g.RecomputeNeighbors()

	res, _ := astar.Search(g, start, end)
	fmt.Println("cost:", res.Cost, "expanded:", res.Expanded)
	fmt.Println(res.Coords())
	// Output:
	// cost: 8 expanded: 19
	// [0,0 1,0 2,0 3,0 4,0 4,1 4,2 4,3 4,4]
}

// ExampleFindPath_notFound shows the NotFound outcome for a sealed end.
func ExampleFindPath_notFound() {
	g, _ := grid.New(3, 3)
	for r := 0; r < 3; r++ {
		_ = g.Toggle(r, 1, grid.Barrier)
	}
	start, _ := g.SetStart(0, 0)
	end, _ := g.SetEnd(0, 2)
	g.RecomputeNeighbors()

	_, err := astar.FindPath(g, start, end)
	fmt.Println(errors.Is(err, astar.ErrNotFound))
	// Output:
	// true
}
