package astar

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gridpath/grid"
)

// FindPath returns the shortest start→end path on g, endpoints included.
// It returns ErrNotFound when end is unreachable and ErrPrecondition for
// invalid input. See Search for the full contract.
func FindPath(g *grid.Grid, start, end *grid.Cell, opts ...Option) ([]*grid.Cell, error) {
	res, err := Search(g, start, end, opts...)
	if err != nil {
		return nil, err
	}
	return res.Path, nil
}

// Search runs A* from start to end over the cached neighbor lists of g.
//
// Validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g, start and end must be non-nil, start and end owned by g (ErrPrecondition).
//  3. start != end and neither is a barrier (ErrPrecondition).
//
// On success the Result carries the path and expansion bookkeeping.
// On failure no partial path is returned: ErrNotFound when the open set is
// exhausted (optionally wrapped with ErrExpansionLimit), or the context
// error when WithContext's ctx is done.
//
// Side effects on g: discovered cells other than end → Frontier, expanded
// cells other than start → Visited, path cells → Path, end → End on success.
func Search(g *grid.Grid, start, end *grid.Cell, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	began := time.Now()

	runID := uuid.NewString()
	ctx, span := tracer.Start(o.Ctx, "astar.Search",
		trace.WithAttributes(attribute.String("run_id", runID)),
	)
	defer span.End()

	err := o.err
	if err == nil {
		err = validate(g, start, end)
	}
	if err != nil {
		observe(0, 0, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, resultLabel(err))
		return nil, err
	}
	span.SetAttributes(
		attribute.String("start", start.Coord().String()),
		attribute.String("end", end.Coord().String()),
		attribute.Int("rows", g.Rows()),
		attribute.Int("cols", g.Cols()),
	)

	logger := o.Logger.With(slog.String("run_id", runID))
	logger.Debug("search_start",
		slog.String("start", start.Coord().String()),
		slog.String("end", end.Coord().String()),
	)

	r := newRunner(g, start, end, o)
	res, err := r.process(ctx)
	observe(len(r.order), time.Since(began), err)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, resultLabel(err))
		logger.Info("search_not_found",
			slog.Int("expanded", len(r.order)),
			slog.String("reason", err.Error()),
		)
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("expanded", res.Expanded),
		attribute.Int("path_len", len(res.Path)),
	)
	span.SetStatus(codes.Ok, "path found")
	logger.Debug("search_done",
		slog.Int("expanded", res.Expanded),
		slog.Int("path_len", len(res.Path)),
		slog.Duration("elapsed", time.Since(began)),
	)
	return res, nil
}

// validate checks the caller contract before any state is touched.
func validate(g *grid.Grid, start, end *grid.Cell) error {
	switch {
	case g == nil:
		return fmt.Errorf("%w: grid is nil", ErrPrecondition)
	case start == nil || end == nil:
		return fmt.Errorf("%w: start and end must be non-nil", ErrPrecondition)
	case !g.Contains(start):
		return fmt.Errorf("%w: start %v not in grid", ErrPrecondition, start)
	case !g.Contains(end):
		return fmt.Errorf("%w: end %v not in grid", ErrPrecondition, end)
	case start == end:
		return fmt.Errorf("%w: start and end are the same cell %v", ErrPrecondition, start)
	case start.IsBarrier() || end.IsBarrier():
		return fmt.Errorf("%w: endpoint is a barrier", ErrPrecondition)
	}
	return nil
}

// entry is an open-set element keyed by (f, seq).
type entry struct {
	cell *grid.Cell
	f    int
	seq  uint64
}

// lessEntry orders by f-score, then by insertion sequence.
func lessEntry(a, b entry) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	return a.seq < b.seq
}

// runner holds the mutable state for a single search.
type runner struct {
	g          *grid.Grid
	start, end *grid.Cell
	target     grid.Coord
	opts       Options

	open     *heap.Heap[entry]
	inOpen   mapset.Set[*grid.Cell]
	cameFrom map[*grid.Cell]*grid.Cell
	gScore   map[*grid.Cell]int
	fScore   map[*grid.Cell]int
	seq      uint64
	order    []*grid.Cell
}

// newRunner seeds the open set with start at key (h(start, end), 0).
func newRunner(g *grid.Grid, start, end *grid.Cell, o Options) *runner {
	r := &runner{
		g:        g,
		start:    start,
		end:      end,
		target:   end.Coord(),
		opts:     o,
		open:     heap.New[entry](lessEntry),
		inOpen:   mapset.New[*grid.Cell](),
		cameFrom: make(map[*grid.Cell]*grid.Cell),
		gScore:   map[*grid.Cell]int{start: 0},
		fScore:   make(map[*grid.Cell]int),
	}
	f := o.Heuristic(start.Coord(), r.target)
	r.fScore[start] = f
	r.open.Push(entry{cell: start, f: f, seq: r.seq})
	r.inOpen.Put(start)

	return r
}

// process is the main A* loop. It pops the lowest (f, seq) entry, stops on
// end, otherwise relaxes neighbors, notifies OnStep and closes the cell.
func (r *runner) process(ctx context.Context) (*Result, error) {
	for r.open.Size() > 0 {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("astar: search interrupted after %d expansions: %w", len(r.order), ctx.Err())
		default:
		}
		if limit := r.opts.MaxExpansions; limit > 0 && len(r.order) >= limit {
			return nil, fmt.Errorf("%w: %w (%d)", ErrNotFound, ErrExpansionLimit, limit)
		}

		e, _ := r.open.Pop()
		current := e.cell
		r.inOpen.Remove(current)
		r.order = append(r.order, current)

		if current == r.end {
			path := Reconstruct(r.cameFrom, r.end)
			current.Mark(grid.End)
			return &Result{
				Path:     path,
				Cost:     len(path) - 1,
				Order:    r.order,
				Expanded: len(r.order),
				CameFrom: r.cameFrom,
			}, nil
		}

		r.relax(current)
		r.opts.OnStep(r.g)

		if current != r.start {
			current.Mark(grid.Visited)
		}
	}

	return nil, ErrNotFound
}

// relax improves each neighbor reachable through current at unit cost and
// pushes neighbors that are not already waiting in the open set.
func (r *runner) relax(current *grid.Cell) {
	tentative := r.gScore[current] + 1
	for _, n := range current.Neighbors() {
		if best, seen := r.gScore[n]; seen && tentative >= best {
			continue
		}
		r.cameFrom[n] = current
		r.gScore[n] = tentative
		f := tentative + r.opts.Heuristic(n.Coord(), r.target)
		r.fScore[n] = f

		if !r.inOpen.Has(n) {
			r.seq++
			r.open.Push(entry{cell: n, f: f, seq: r.seq})
			r.inOpen.Put(n)
			// end keeps its End state
			if n != r.end {
				n.Mark(grid.Frontier)
			}
		}
	}
}
