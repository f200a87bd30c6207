package grid

// ConnectedComponents finds every 4-connected region of non-barrier cells,
// reading barrier states directly rather than the neighbor cache.
// Components are returned in row-major order of their first cell; cells
// within a component are listed in BFS discovery order.
//
// Time:   O(R×C).
// Memory: O(R×C) for visited flags and output.
func (g *Grid) ConnectedComponents() [][]*Cell {
	seen := make([]bool, len(g.cells))
	var comps [][]*Cell

	for i := range g.cells {
		if seen[i] || g.cells[i].state == Barrier {
			continue
		}
		comps = append(comps, g.flood(i, seen, -1))
	}
	return comps
}

// Connected reports whether a and b are both non-barrier cells of g joined
// by a 4-connected run of non-barrier cells.
func (g *Grid) Connected(a, b *Cell) bool {
	if !g.Contains(a) || !g.Contains(b) || a.IsBarrier() || b.IsBarrier() {
		return false
	}
	seen := make([]bool, len(g.cells))
	target := g.index(b.row, b.col)
	comp := g.flood(g.index(a.row, a.col), seen, target)
	return len(comp) > 0 && comp[len(comp)-1] == b
}

// flood runs a BFS from index i0 marking seen, and stops early once target
// (if ≥ 0) is dequeued, leaving it as the last element.
func (g *Grid) flood(i0 int, seen []bool, target int) []*Cell {
	queue := []int{i0}
	seen[i0] = true
	var comp []*Cell
	var buf []*Cell

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		comp = append(comp, &g.cells[u])
		if u == target {
			return comp
		}
		buf = g.adjacent(&g.cells[u], buf[:0])
		for _, n := range buf {
			v := g.index(n.row, n.col)
			if !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}
	return comp
}
