package grid

import "fmt"

// RecomputeNeighbors rebuilds every Cell's neighbor list from the current
// barrier states. Call it after any batch of barrier edits and before each
// search; neighbor lists are never refreshed implicitly.
// Complexity: O(R×C).
func (g *Grid) RecomputeNeighbors() {
	for i := range g.cells {
		c := &g.cells[i]
		c.neighbors = g.adjacent(c, c.neighbors[:0])
	}
}

// NeighborsOf returns the cached neighbors of c: the in-bounds, non-barrier
// cells directly below, above, right and left of it, in that order, as of
// the last RecomputeNeighbors. Returns ErrForeignCell if c is not owned by g.
func (g *Grid) NeighborsOf(c *Cell) ([]*Cell, error) {
	if !g.Contains(c) {
		return nil, fmt.Errorf("%w: %v", ErrForeignCell, c)
	}
	return c.neighbors, nil
}

// adjacent appends the live (uncached) passable neighbors of c to dst.
func (g *Grid) adjacent(c *Cell, dst []*Cell) []*Cell {
	for _, d := range neighborOffsets {
		r, col := c.row+d[0], c.col+d[1]
		if !g.InBounds(r, col) {
			continue
		}
		n := &g.cells[g.index(r, col)]
		if n.state == Barrier {
			continue
		}
		dst = append(dst, n)
	}
	return dst
}
