package astar_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

// BenchmarkSearch_100x100 runs corner-to-corner on a seeded 100×100 board
// with ~20% barriers.
func BenchmarkSearch_100x100(b *testing.B) {
	g, _ := grid.New(100, 100)
	rng := rand.New(rand.NewSource(1))
	for _, c := range g.Cells() {
		if rng.Float64() < 0.2 {
			c.Mark(grid.Barrier)
		}
	}
	start, _ := g.SetStart(0, 0)
	end, _ := g.SetEnd(99, 99)
	g.RecomputeNeighbors()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.ClearSearch()
		_, _ = astar.Search(g, start, end)
	}
}
