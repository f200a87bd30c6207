// Package grid models a rectangular board of cells for 4-directional
// pathfinding.
//
// What:
//
//   - Grid owns rows×cols Cells stored in row-major order.
//   - Each Cell carries an explicit State (Empty, Barrier, Start, End,
//     Frontier, Visited, Path) instead of implicit per-color predicates.
//   - Neighbor lists are a derived cache rebuilt by RecomputeNeighbors.
//     Barrier edits invalidate them; call RecomputeNeighbors before a search.
//   - ConnectedComponents and Connected answer reachability over non-barrier
//     cells straight from cell states, independent of the neighbor cache.
//
// Invariants:
//
//   - rows, cols > 0 and every Cell's (Row, Col) matches its storage slot.
//   - At most one Start and one End cell; SetStart/SetEnd and Toggle clear the
//     previous holder before assigning a new one. An endpoint cell can only
//     be cleared, never overwritten by a Barrier or the other endpoint.
//
// Complexity:
//
//   - New, Reset, ClearSearch, RecomputeNeighbors: O(R×C).
//   - At, Toggle, NeighborsOf: O(1).
//   - ConnectedComponents: O(R×C), Memory: O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid: rows or cols is not positive.
//   - ErrOutOfBounds: coordinates outside the grid.
//   - ErrInvalidState: state cannot be assigned through Toggle, or the
//     target cell is the other endpoint.
//   - ErrForeignCell: a Cell that is not owned by this Grid.
//
// Concurrency: a Grid is not safe for concurrent mutation; one owner at a time.
package grid
