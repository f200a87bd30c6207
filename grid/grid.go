package grid

import "fmt"

// neighborOffsets lists (dRow, dCol) in the order neighbors are emitted:
// down, up, right, left.
var neighborOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Grid is a rows×cols board of Cells in row-major storage.
type Grid struct {
	rows, cols int
	cellSize   int
	cells      []Cell
}

// New builds a rows×cols Grid with every Cell Empty.
// Returns ErrEmptyGrid if rows or cols is not positive.
// Complexity: O(R×C) time and memory.
func New(rows, cols int, opts ...Option) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: rows=%d, cols=%d", ErrEmptyGrid, rows, cols)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g := &Grid{
		rows:     rows,
		cols:     cols,
		cellSize: o.CellSize,
		cells:    make([]Cell, rows*cols),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.cells[g.index(r, c)] = Cell{
				row: r,
				col: c,
				x:   r * o.CellSize,
				y:   c * o.CellSize,
			}
		}
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// CellSize returns the pixel size configured at construction.
func (g *Grid) CellSize() int { return g.cellSize }

// InBounds reports whether (row, col) lies within the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns the Cell at (row, col) or ErrOutOfBounds.
func (g *Grid) At(row, col int) (*Cell, error) {
	if !g.InBounds(row, col) {
		return nil, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, row, col, g.rows, g.cols)
	}
	return &g.cells[g.index(row, col)], nil
}

// MustAt is At for coordinates known to be valid; it panics otherwise.
func (g *Grid) MustAt(row, col int) *Cell {
	c, err := g.At(row, col)
	if err != nil {
		panic(err)
	}
	return c
}

// Contains reports whether c is stored in this Grid.
func (g *Grid) Contains(c *Cell) bool {
	if c == nil || !g.InBounds(c.row, c.col) {
		return false
	}
	return &g.cells[g.index(c.row, c.col)] == c
}

// Cells returns every Cell in row-major order.
func (g *Grid) Cells() []*Cell {
	out := make([]*Cell, len(g.cells))
	for i := range g.cells {
		out[i] = &g.cells[i]
	}
	return out
}

// Toggle assigns state to the Cell at (row, col).
// Only Empty, Barrier, Start and End may be assigned; the search flags are
// rejected with ErrInvalidState. Assigning Start or End first resets any
// other Cell holding that state to Empty.
//
// The Start and End cells only accept Empty or their own state: placing a
// Barrier on either, or one endpoint onto the other, fails with
// ErrInvalidState and leaves the grid unchanged.
func (g *Grid) Toggle(row, col int, state State) error {
	c, err := g.At(row, col)
	if err != nil {
		return err
	}
	if held := c.state; (held == Start || held == End) && state != Empty && state != held {
		return fmt.Errorf("%w: %s onto %s cell %v", ErrInvalidState, state, held, c)
	}
	switch state {
	case Empty, Barrier:
		c.state = state
	case Start, End:
		g.clearState(state)
		c.state = state
	default:
		return fmt.Errorf("%w: %s via Toggle", ErrInvalidState, state)
	}

	return nil
}

// SetStart makes (row, col) the only Start cell and returns it.
func (g *Grid) SetStart(row, col int) (*Cell, error) {
	if err := g.Toggle(row, col, Start); err != nil {
		return nil, err
	}
	return g.MustAt(row, col), nil
}

// SetEnd makes (row, col) the only End cell and returns it.
func (g *Grid) SetEnd(row, col int) (*Cell, error) {
	if err := g.Toggle(row, col, End); err != nil {
		return nil, err
	}
	return g.MustAt(row, col), nil
}

// Clear resets (row, col) to Empty. Clearing the Start or End cell
// leaves the grid without one.
func (g *Grid) Clear(row, col int) error {
	return g.Toggle(row, col, Empty)
}

// Start returns the Start cell, or nil when none is set.
func (g *Grid) Start() *Cell { return g.first(Start) }

// End returns the End cell, or nil when none is set.
func (g *Grid) End() *Cell { return g.first(End) }

// Reset returns every Cell to Empty and drops all neighbor lists.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i].state = Empty
		g.cells[i].neighbors = nil
	}
}

// ClearSearch resets Frontier, Visited and Path cells to Empty, keeping
// barriers and endpoints, so the grid can be searched again.
func (g *Grid) ClearSearch() {
	for i := range g.cells {
		if g.cells[i].state.Searched() {
			g.cells[i].state = Empty
		}
	}
}

// Count returns how many cells currently hold state s.
func (g *Grid) Count(s State) int {
	n := 0
	for i := range g.cells {
		if g.cells[i].state == s {
			n++
		}
	}
	return n
}

func (g *Grid) first(s State) *Cell {
	for i := range g.cells {
		if g.cells[i].state == s {
			return &g.cells[i]
		}
	}
	return nil
}

func (g *Grid) clearState(s State) {
	for i := range g.cells {
		if g.cells[i].state == s {
			g.cells[i].state = Empty
		}
	}
}

// index maps (row, col) to a row-major index: row*cols + col.
func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}

// Coordinate converts a row-major index back to (row, col).
func (g *Grid) Coordinate(idx int) (row, col int) {
	return idx / g.cols, idx % g.cols
}
