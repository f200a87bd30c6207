package astar_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/gridpath/astar"
)

// TestSearch_Spans records one span per search with outcome status.
func TestSearch_Spans(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	defer func() { _ = tp.Shutdown(context.Background()) }()

	g := buildGrid(t, 3, 3, rc(0, 1), rc(1, 1), rc(2, 1))
	_, err := astar.Search(g, g.MustAt(0, 0), g.MustAt(2, 0))
	require.NoError(t, err)
	_, err = astar.Search(g, g.MustAt(0, 0), g.MustAt(0, 2))
	require.ErrorIs(t, err, astar.ErrNotFound)
	same := g.MustAt(2, 2)
	_, err = astar.Search(g, same, same)
	require.ErrorIs(t, err, astar.ErrPrecondition)
	_, err = astar.Search(g, g.MustAt(0, 0), g.MustAt(2, 0), astar.WithMaxExpansions(-1))
	require.ErrorIs(t, err, astar.ErrOptionViolation)

	spans := exporter.GetSpans()
	require.Len(t, spans, 4)

	ok, failed := spans[0], spans[1]
	assert.Equal(t, "astar.Search", ok.Name)
	assert.Equal(t, codes.Ok, ok.Status.Code)
	assert.Equal(t, codes.Error, failed.Status.Code)
	assert.NotEmpty(t, failed.Events, "RecordError adds an exception event")

	for _, rejected := range spans[2:] {
		assert.Equal(t, "astar.Search", rejected.Name)
		assert.Equal(t, codes.Error, rejected.Status.Code)
		assert.Equal(t, "precondition", rejected.Status.Description)
		require.NotEmpty(t, rejected.Events)
		assert.Equal(t, "exception", rejected.Events[0].Name)
	}

	attrs := map[string]string{}
	for _, kv := range ok.Attributes {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	assert.Equal(t, "0,0", attrs["start"])
	assert.Equal(t, "2,0", attrs["end"])
	assert.NotEmpty(t, attrs["run_id"])
	assert.Equal(t, "3", attrs["path_len"])
}
