package store

import (
	"sort"
	"sync"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"

	"github.com/askiada/go-lazy/pkg/pipeline/model"
)

// StepStore is a graph.Store of pipeline steps, keyed by step name.
// On top of graph.Store it lets the drawer update vertex attributes in place.
type StepStore struct {
	lock             sync.RWMutex
	steps            map[string]*model.StepInfo
	vertexProperties map[string]*graph.VertexProperties

	// outEdges and inEdges index the same edges by source and by target.
	outEdges map[string]map[string]graph.Edge[string] // source -> target
	inEdges  map[string]map[string]graph.Edge[string] // target -> source
}

func NewStepStore() *StepStore {
	return &StepStore{
		steps:            make(map[string]*model.StepInfo),
		vertexProperties: make(map[string]*graph.VertexProperties),
		outEdges:         make(map[string]map[string]graph.Edge[string]),
		inEdges:          make(map[string]map[string]graph.Edge[string]),
	}
}

func (s *StepStore) AddVertex(name string, step *model.StepInfo, p graph.VertexProperties) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.steps[name]; ok {
		return graph.ErrVertexAlreadyExists
	}

	if p.Attributes == nil {
		p.Attributes = make(map[string]string)
	}

	s.steps[name] = step
	s.vertexProperties[name] = &p

	return nil
}

// ListVertices returns the step names ordered by step index.
func (s *StepStore) ListVertices() ([]string, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	names := make([]string, 0, len(s.steps))
	for name := range s.steps {
		names = append(names, name)
	}

	sort.Slice(names, func(i, j int) bool {
		return s.steps[names[i]].Index < s.steps[names[j]].Index
	})

	return names, nil
}

func (s *StepStore) VertexCount() (int, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return len(s.steps), nil
}

func (s *StepStore) Vertex(name string) (*model.StepInfo, graph.VertexProperties, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	step, ok := s.steps[name]
	if !ok {
		return nil, graph.VertexProperties{}, graph.ErrVertexNotFound
	}

	return step, *s.vertexProperties[name], nil
}

func (s *StepStore) RemoveVertex(name string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.steps[name]; !ok {
		return graph.ErrVertexNotFound
	}

	if len(s.inEdges[name]) > 0 || len(s.outEdges[name]) > 0 {
		return graph.ErrVertexHasEdges
	}

	delete(s.inEdges, name)
	delete(s.outEdges, name)
	delete(s.steps, name)
	delete(s.vertexProperties, name)

	return nil
}

// UpdateVertex applies options to the properties of the step called name.
func (s *StepStore) UpdateVertex(name string, options ...func(*graph.VertexProperties)) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	properties, ok := s.vertexProperties[name]
	if !ok {
		return errors.Wrapf(graph.ErrVertexNotFound, "unable to update step %s", name)
	}

	for _, opt := range options {
		opt(properties)
	}

	return nil
}

func (s *StepStore) AddEdge(sourceName, targetName string, edge graph.Edge[string]) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.outEdges[sourceName]; !ok {
		s.outEdges[sourceName] = make(map[string]graph.Edge[string])
	}

	s.outEdges[sourceName][targetName] = edge

	if _, ok := s.inEdges[targetName]; !ok {
		s.inEdges[targetName] = make(map[string]graph.Edge[string])
	}

	s.inEdges[targetName][sourceName] = edge

	return nil
}

func (s *StepStore) UpdateEdge(sourceName, targetName string, edge graph.Edge[string]) error {
	if _, err := s.Edge(sourceName, targetName); err != nil {
		return err
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	s.outEdges[sourceName][targetName] = edge
	s.inEdges[targetName][sourceName] = edge

	return nil
}

func (s *StepStore) RemoveEdge(sourceName, targetName string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	delete(s.inEdges[targetName], sourceName)
	delete(s.outEdges[sourceName], targetName)

	return nil
}

func (s *StepStore) Edge(sourceName, targetName string) (graph.Edge[string], error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	edge, ok := s.outEdges[sourceName][targetName]
	if !ok {
		return graph.Edge[string]{}, graph.ErrEdgeNotFound
	}

	return edge, nil
}

func (s *StepStore) ListEdges() ([]graph.Edge[string], error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	res := make([]graph.Edge[string], 0)
	for _, edges := range s.outEdges {
		for _, edge := range edges {
			res = append(res, edge)
		}
	}

	return res, nil
}

// CreatesCycle reports whether an edge from source to target would close a cycle,
// walking the incoming edges of source up to the root.
func (s *StepStore) CreatesCycle(source, target string) (bool, error) {
	if _, _, err := s.Vertex(source); err != nil {
		return false, errors.Wrapf(err, "could not get step %s", source)
	}

	if _, _, err := s.Vertex(target); err != nil {
		return false, errors.Wrapf(err, "could not get step %s", target)
	}

	if source == target {
		return true, nil
	}

	s.lock.RLock()
	defer s.lock.RUnlock()

	stack := []string{source}
	visited := make(map[string]struct{})

	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, ok := visited[curr]; ok {
			continue
		}

		if curr == target {
			return true, nil
		}

		visited[curr] = struct{}{}

		for parent := range s.inEdges[curr] {
			stack = append(stack, parent)
		}
	}

	return false, nil
}

var _ graph.Store[string, *model.StepInfo] = (*StepStore)(nil)
