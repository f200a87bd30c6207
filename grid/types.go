package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates rows or cols is not positive.
	ErrEmptyGrid = errors.New("grid: rows and cols must be positive")
	// ErrOutOfBounds indicates a (row, col) pair outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinates out of bounds")
	// ErrInvalidState indicates a state that cannot be assigned by the caller.
	ErrInvalidState = errors.New("grid: state cannot be assigned")
	// ErrForeignCell indicates a Cell that does not belong to the Grid.
	ErrForeignCell = errors.New("grid: cell does not belong to grid")
)

// State is the traversal state of a Cell.
type State int

const (
	// Empty is a passable, untouched cell.
	Empty State = iota
	// Barrier is impassable.
	Barrier
	// Start marks the search origin.
	Start
	// End marks the search target.
	End
	// Frontier marks a cell discovered by the search and awaiting expansion.
	Frontier
	// Visited marks a cell the search has expanded.
	Visited
	// Path marks a cell on the reconstructed shortest path.
	Path
)

var stateNames = [...]string{
	Empty:    "empty",
	Barrier:  "barrier",
	Start:    "start",
	End:      "end",
	Frontier: "frontier",
	Visited:  "visited",
	Path:     "path",
}

// String returns the lower-case name of s.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return stateNames[s]
}

// Searched reports whether s is a flag written by a search run
// (Frontier, Visited or Path).
func (s State) Searched() bool {
	return s == Frontier || s == Visited || s == Path
}

// Coord is a 0-indexed (row, col) grid position.
type Coord struct {
	Row, Col int
}

// String formats c as "row,col".
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.Row, c.Col)
}

// Cell is a single addressable grid location.
// Row and Col are fixed at construction; State changes over the
// Cell's lifetime. Neighbors are back-references into the owning Grid.
type Cell struct {
	row, col  int
	x, y      int
	state     State
	neighbors []*Cell
}

// Row returns the 0-indexed row.
func (c *Cell) Row() int { return c.row }

// Col returns the 0-indexed column.
func (c *Cell) Col() int { return c.col }

// Coord returns the cell position.
func (c *Cell) Coord() Coord { return Coord{Row: c.row, Col: c.col} }

// X returns the pixel origin along the row axis (Row × cell size).
func (c *Cell) X() int { return c.x }

// Y returns the pixel origin along the column axis (Col × cell size).
func (c *Cell) Y() int { return c.y }

// State returns the current traversal state.
func (c *Cell) State() State { return c.state }

// Mark sets the state without any Grid-level invariant checks.
// Searches use it for the Frontier, Visited and Path render flags;
// callers editing Start/End should go through Grid.Toggle instead.
func (c *Cell) Mark(s State) { c.state = s }

// IsBarrier reports whether the cell is impassable.
func (c *Cell) IsBarrier() bool { return c.state == Barrier }

// Neighbors returns the cached neighbor list computed by the last
// Grid.RecomputeNeighbors call. The slice must not be modified.
func (c *Cell) Neighbors() []*Cell { return c.neighbors }

// String formats the cell as "(row,col)".
func (c *Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.row, c.col)
}

// Options tunes Grid construction.
type Options struct {
	// CellSize is the edge length in pixels used for X/Y origins.
	// It has no effect on search.
	CellSize int
}

// Option configures a Grid.
type Option func(*Options)

// DefaultOptions returns Options with CellSize=1.
func DefaultOptions() Options {
	return Options{CellSize: 1}
}

// WithCellSize sets the pixel size of each cell. Non-positive sizes are ignored.
func WithCellSize(size int) Option {
	return func(o *Options) {
		if size > 0 {
			o.CellSize = size
		}
	}
}
