// Package astar finds shortest paths on a grid.Grid with A* search and a
// Manhattan-distance heuristic.
//
// Overview:
//
//   - Movement is 4-directional with unit edge cost, so Manhattan distance is
//     admissible and consistent and every returned path is optimal.
//   - The open set is a min-heap keyed by (f-score, insertion sequence).
//     The sequence strictly increases on every insertion, so among equal
//     f-scores the earliest-inserted cell is expanded first and the
//     expansion order is reproducible run to run.
//   - Search marks cells as it goes: discovered cells become Frontier,
//     expanded cells (except start) become Visited, path cells become Path,
//     and the end cell is re-marked End. Start keeps its Start state.
//
// Preconditions:
//
//   - start and end are distinct, non-barrier cells owned by the grid.
//   - Neighbor lists are current: call grid.RecomputeNeighbors after barrier
//     edits. Search never recomputes them.
//
// Options:
//
//   - WithOnStep(fn):       observer called after each expansion.
//   - WithContext(ctx):     cooperative cancellation, checked once per expansion.
//   - WithHeuristic(h):     replace Manhattan.
//   - WithMaxExpansions(n): give up after n expansions (0 = unlimited).
//   - WithLogger(l):        structured logger for run events.
//
// Errors (sentinel):
//
//   - ErrNotFound:       end is unreachable; no partial path is returned.
//   - ErrPrecondition:   invalid grid/start/end; a caller bug.
//   - ErrOptionViolation: an Option was given an invalid value.
//   - ErrExpansionLimit: wraps ErrNotFound when MaxExpansions is hit.
//
// Complexity:
//
//   - Time:  O(E log V) with V, E bounded by grid area.
//   - Space: O(V) for scores, predecessors and the open set.
//
// Each call emits one OpenTelemetry span ("astar.Search") and updates the
// gridpath_search_* Prometheus series in the default registry.
package astar
