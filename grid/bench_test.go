package grid_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/grid"
)

// BenchmarkRecomputeNeighbors measures neighbor cache rebuilds on a 200×200 grid.
func BenchmarkRecomputeNeighbors(b *testing.B) {
	g, _ := grid.New(200, 200)
	for r := 0; r < 200; r += 3 {
		_ = g.Toggle(r, r%200, grid.Barrier)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.RecomputeNeighbors()
	}
}

// BenchmarkConnectedComponents measures component analysis on a 200×200 grid.
func BenchmarkConnectedComponents(b *testing.B) {
	g, _ := grid.New(200, 200)
	for r := 0; r < 200; r++ {
		_ = g.Toggle(r, 100, grid.Barrier)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.ConnectedComponents()
	}
}
