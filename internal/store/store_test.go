package store_test

import (
	"testing"

	"github.com/dominikbraun/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-lazy/internal/store"
	"github.com/askiada/go-lazy/pkg/pipeline/model"
)

func newChain(t *testing.T) (*store.StepStore, []*model.StepInfo) {
	t.Helper()

	steps := []*model.StepInfo{
		model.StartStep,
		model.NewStepInfo(model.MapStepType, 1),
		model.NewStepInfo(model.FilterStepType, 2),
	}

	s := store.NewStepStore()
	for i := len(steps) - 1; i >= 0; i-- {
		require.NoError(t, s.AddVertex(steps[i].Name, steps[i], graph.VertexProperties{}))
	}

	for i := 1; i < len(steps); i++ {
		require.NoError(t, s.AddEdge(steps[i-1].Name, steps[i].Name, graph.Edge[string]{Source: steps[i-1].Name, Target: steps[i].Name}))
	}

	return s, steps
}

func TestStepStoreVertices(t *testing.T) {
	t.Parallel()

	s, steps := newChain(t)

	names, err := s.ListVertices()
	require.NoError(t, err)
	assert.Equal(t, []string{"source", "map-1", "filter-2"}, names)

	count, err := s.VertexCount()
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	step, properties, err := s.Vertex("map-1")
	require.NoError(t, err)
	assert.Same(t, steps[1], step)
	assert.NotNil(t, properties.Attributes)

	_, _, err = s.Vertex("missing")
	require.ErrorIs(t, err, graph.ErrVertexNotFound)

	err = s.AddVertex("source", model.StartStep, graph.VertexProperties{})
	require.ErrorIs(t, err, graph.ErrVertexAlreadyExists)
}

func TestStepStoreUpdateVertex(t *testing.T) {
	t.Parallel()

	s, _ := newChain(t)

	err := s.UpdateVertex("map-1", func(p *graph.VertexProperties) {
		p.Attributes["color"] = "red"
		p.Weight = 2
	})
	require.NoError(t, err)

	_, properties, err := s.Vertex("map-1")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"color": "red"}, properties.Attributes)
	assert.Equal(t, 2, properties.Weight)

	err = s.UpdateVertex("missing")
	require.ErrorIs(t, err, graph.ErrVertexNotFound)
}

func TestStepStoreEdges(t *testing.T) {
	t.Parallel()

	s, _ := newChain(t)

	edges, err := s.ListEdges()
	require.NoError(t, err)
	assert.Len(t, edges, 2)

	edge, err := s.Edge("source", "map-1")
	require.NoError(t, err)
	assert.Equal(t, "map-1", edge.Target)

	_, err = s.Edge("map-1", "source")
	require.ErrorIs(t, err, graph.ErrEdgeNotFound)

	err = s.UpdateEdge("map-1", "source", graph.Edge[string]{})
	require.ErrorIs(t, err, graph.ErrEdgeNotFound)

	edge.Properties.Weight = 4
	require.NoError(t, s.UpdateEdge("source", "map-1", edge))

	edge, err = s.Edge("source", "map-1")
	require.NoError(t, err)
	assert.Equal(t, 4, edge.Properties.Weight)

	err = s.RemoveVertex("map-1")
	require.ErrorIs(t, err, graph.ErrVertexHasEdges)

	require.NoError(t, s.RemoveEdge("source", "map-1"))
	require.NoError(t, s.RemoveEdge("map-1", "filter-2"))
	require.NoError(t, s.RemoveVertex("map-1"))

	err = s.RemoveVertex("map-1")
	require.ErrorIs(t, err, graph.ErrVertexNotFound)
}

func TestStepStoreCreatesCycle(t *testing.T) {
	t.Parallel()

	s, _ := newChain(t)

	tcs := map[string]struct {
		source, target string
		expected       bool
	}{
		"self":     {source: "map-1", target: "map-1", expected: true},
		"backward": {source: "filter-2", target: "source", expected: true},
		"forward":  {source: "source", target: "filter-2", expected: false},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := s.CreatesCycle(tc.source, tc.target)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}

	_, err := s.CreatesCycle("source", "missing")
	require.ErrorIs(t, err, graph.ErrVertexNotFound)
}

func TestStepStoreWithGraph(t *testing.T) {
	t.Parallel()

	s := store.NewStepStore()
	gra := graph.NewWithStore(func(step *model.StepInfo) string { return step.Name },
		graph.Store[string, *model.StepInfo](s), graph.Directed(), graph.PreventCycles())

	first := model.NewStepInfo(model.MapStepType, 1)
	require.NoError(t, gra.AddVertex(model.StartStep))
	require.NoError(t, gra.AddVertex(first))
	require.NoError(t, gra.AddEdge("source", "map-1"))

	err := gra.AddEdge("map-1", "source")
	require.ErrorIs(t, err, graph.ErrEdgeCreatesCycle)

	order, err := graph.TopologicalSort(gra)
	require.NoError(t, err)
	assert.Equal(t, []string{"source", "map-1"}, order)
}
