package astar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors returned by Search and FindPath.
var (
	// ErrNotFound indicates that end is unreachable from start.
	ErrNotFound = errors.New("astar: no path between start and end")

	// ErrPrecondition indicates invalid input: nil grid, nil or foreign
	// endpoints, start == end, or a barrier endpoint.
	ErrPrecondition = errors.New("astar: precondition violated")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrExpansionLimit indicates MaxExpansions was reached. It is always
	// wrapped together with ErrNotFound.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")
)

// Heuristic estimates the remaining cost between two coordinates.
// It must be non-negative and never overestimate the true distance.
type Heuristic func(a, b grid.Coord) int

// Options holds the tunables of a single search.
type Options struct {
	// Ctx allows cooperative cancellation; checked once per expansion.
	Ctx context.Context

	// OnStep is invoked after every expansion with the grid being searched.
	// It must not mutate the grid.
	OnStep func(g *grid.Grid)

	// Heuristic replaces Manhattan when set.
	Heuristic Heuristic

	// MaxExpansions, if > 0, stops the search after that many expansions.
	MaxExpansions int

	// Logger receives run events.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// Option configures a search via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with:
//   - context.Background()
//   - Manhattan heuristic
//   - no step observer, no expansion limit
//   - slog.Default() tagged component=astar
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnStep:    func(*grid.Grid) {},
		Heuristic: Manhattan,
		Logger:    slog.Default().With(slog.String("component", "astar")),
	}
}

// WithContext sets a context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnStep registers the post-expansion observer. A nil fn is ignored.
func WithOnStep(fn func(g *grid.Grid)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithHeuristic replaces the default Manhattan heuristic.
// A nil heuristic is an ErrOptionViolation.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: heuristic is nil", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// WithMaxExpansions caps the number of expanded cells.
//
//	n > 0:  limit to n expansions
//	n == 0: no limit
//	n < 0:  ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result is the outcome of a successful Search.
//   - Path: cells from start to end inclusive.
//   - Cost: number of edges in Path (len(Path)-1).
//   - Order: cells in the order they were expanded, start first.
//   - Expanded: len(Order).
//   - CameFrom: predecessor map as it stood when end was reached.
type Result struct {
	Path     []*grid.Cell
	Cost     int
	Order    []*grid.Cell
	Expanded int
	CameFrom map[*grid.Cell]*grid.Cell
}

// Coords returns the Path as coordinates.
func (r *Result) Coords() []grid.Coord {
	out := make([]grid.Coord, len(r.Path))
	for i, c := range r.Path {
		out[i] = c.Coord()
	}
	return out
}
