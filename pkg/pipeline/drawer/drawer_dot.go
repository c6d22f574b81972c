package drawer

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"text/template"
	"time"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint

	"github.com/askiada/go-lazy/internal/store"
	"github.com/askiada/go-lazy/pkg/pipeline/measure"
	"github.com/askiada/go-lazy/pkg/pipeline/model"
)

// DOTDrawer is a drawer that writes the pipeline graph in the Graphviz DOT language.
type DOTDrawer struct {
	graph      graph.Graph[string, *model.StepInfo]
	store      *store.StepStore
	open       func() (io.WriteCloser, error)
	attributes map[string]string
}

// Option configures a DOTDrawer.
type Option func(d *DOTDrawer)

// GraphAttribute sets a graph level attribute, for instance rankdir.
func GraphAttribute(key, value string) Option {
	return func(d *DOTDrawer) {
		d.attributes[key] = value
	}
}

func newDOTDrawer(open func() (io.WriteCloser, error), opts ...Option) *DOTDrawer {
	stepStore := store.NewStepStore()
	drw := &DOTDrawer{
		graph:      graph.NewWithStore(stepHash, graph.Store[string, *model.StepInfo](stepStore), graph.Directed(), graph.PreventCycles()),
		store:      stepStore,
		open:       open,
		attributes: make(map[string]string),
	}

	for _, opt := range opts {
		opt(drw)
	}

	return drw
}

// NewDOTDrawer creates a drawer writing to wrt.
func NewDOTDrawer(wrt io.Writer, opts ...Option) *DOTDrawer {
	return newDOTDrawer(func() (io.WriteCloser, error) {
		return nopCloser{wrt}, nil
	}, opts...)
}

// NewFileDrawer creates a drawer writing to fileName. The file is created by Draw.
func NewFileDrawer(fileName string, opts ...Option) *DOTDrawer {
	return newDOTDrawer(func() (io.WriteCloser, error) {
		file, err := os.Create(fileName)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to create file %s", fileName)
		}

		return file, nil
	}, opts...)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

func stepHash(step *model.StepInfo) string {
	return step.Name
}

var stepShapes = map[model.StepType]string{
	model.RootStepType:    "cylinder",
	model.MapStepType:     "box",
	model.FlatMapStepType: "box3d",
	model.FilterStepType:  "invtrapezium",
}

// AddStep adds a step to the pipeline graph.
func (d *DOTDrawer) AddStep(step *model.StepInfo) error {
	err := d.graph.AddVertex(step, graph.VertexAttribute("shape", stepShapes[step.Type]))
	if err != nil {
		return errors.Wrapf(err, "unable to add step %s", step.Name)
	}

	return nil
}

// AddLink adds a link between parent and child steps.
func (d *DOTDrawer) AddLink(parentName, childName string) error {
	err := d.graph.AddEdge(parentName, childName)
	if err != nil {
		return errors.Wrapf(err, "unable to add edge from %s to %s", parentName, childName)
	}

	return nil
}

const maxRGB = 240

// AddMeasure labels every drawn step with its average duration and number of calls,
// and colours it from blue (fastest) to red (slowest).
func (d *DOTDrawer) AddMeasure(msr measure.Measure) error {
	names, err := d.store.ListVertices()
	if err != nil {
		return errors.Wrap(err, "unable to list steps")
	}

	metrics := make(map[string]measure.Metric, len(names))
	var minAvg, maxAvg time.Duration

	for _, name := range names {
		mt := msr.GetMetric(name)
		if mt == nil {
			continue
		}

		metrics[name] = mt

		avg := mt.AVGDuration()
		if avg == 0 {
			continue
		}

		if minAvg == 0 || avg < minAvg {
			minAvg = avg
		}

		if avg > maxAvg {
			maxAvg = avg
		}
	}

	if len(metrics) == 0 {
		return ErrNoMetrics
	}

	for name, mt := range metrics {
		label := strconv.FormatInt(mt.Calls(), 10) + " calls"

		avg := mt.AVGDuration()
		if avg > 0 {
			label = avg.String() + ", " + label
		}

		if total := mt.GetTotalDuration(); total > 0 {
			label += fmt.Sprintf(", end: %s (%d outputs)", total, mt.Outputs())
		}

		colour := ""
		if avg > 0 {
			colour, err = durationColour(avg, minAvg, maxAvg)
			if err != nil {
				return err
			}
		}

		err = d.store.UpdateVertex(name, func(properties *graph.VertexProperties) {
			properties.Attributes["xlabel"] = label
			if colour != "" {
				properties.Attributes["color"] = colour
			}
		})
		if err != nil {
			return errors.Wrap(err, "unable to update metrics")
		}
	}

	return nil
}

func durationColour(curr, minValue, maxValue time.Duration) (string, error) {
	fraction := 1.0
	if maxValue > minValue {
		fraction = float64(curr-minValue) / float64(maxValue-minValue)
	}

	red := maxRGB * fraction
	blue := maxRGB - red

	colour, err := colors.RGB(uint8(red), 0, uint8(blue)) //nolint
	if err != nil {
		return "", errors.Wrap(err, "unable to get colour")
	}

	return colour.ToHEX().String(), nil
}

// Draw writes the pipeline graph.
func (d *DOTDrawer) Draw() error {
	wrt, err := d.open()
	if err != nil {
		return err
	}

	err = dot(d.graph, wrt, d.attributes)
	if err != nil {
		_ = wrt.Close()

		return errors.Wrap(err, "unable to draw pipeline")
	}

	return errors.Wrap(wrt.Close(), "unable to close pipeline graph")
}

//nolint:lll //this is a template
const dotTemplate = `strict {{.GraphType}} {
{{range $k, $v := .Attributes}}	{{$k}}="{{$v}}";
{{end}}{{range $s := .Statements}}	"{{.Source}}" {{if .Target}}{{$.EdgeOperator}} "{{.Target}}" [ {{range $k, $v := .EdgeAttributes}}{{$k}}="{{$v}}", {{end}}weight={{.EdgeWeight}} ]{{else}}[ {{range $k, $v := .HTMLAttributes}}{{$k}}={{$v}}, {{end}}{{range $k, $v := .SourceAttributes}}{{$k}}="{{$v}}", {{end}}weight={{.SourceWeight}} ]{{end}};
{{end}}}
`

type description struct {
	GraphType    string
	Attributes   map[string]string
	EdgeOperator string
	Statements   []statement
}

type statement struct {
	Source           string
	Target           string
	SourceAttributes map[string]string
	HTMLAttributes   map[string]string
	EdgeAttributes   map[string]string
	SourceWeight     int
	EdgeWeight       int
}

func dot(gra graph.Graph[string, *model.StepInfo], wrt io.Writer, attributes map[string]string) error {
	desc, err := generateDOT(gra, attributes)
	if err != nil {
		return fmt.Errorf("failed to generate DOT description: %w", err)
	}

	return renderDOT(wrt, desc)
}

// generateDOT lists the steps in topological order so that the output is stable.
func generateDOT(gra graph.Graph[string, *model.StepInfo], attributes map[string]string) (description, error) {
	desc := description{
		GraphType:    "graph",
		Attributes:   attributes,
		EdgeOperator: "--",
		Statements:   make([]statement, 0),
	}

	if gra.Traits().IsDirected {
		desc.GraphType = "digraph"
		desc.EdgeOperator = "->"
	}

	adjacencyMap, err := gra.AdjacencyMap()
	if err != nil {
		return desc, errors.Wrap(err, "unable to get adjacency map")
	}

	order, err := graph.StableTopologicalSort(gra, func(a, b string) bool { return a < b })
	if err != nil {
		return desc, errors.Wrap(err, "unable to sort steps")
	}

	for _, vertex := range order {
		_, sourceProperties, err := gra.VertexWithProperties(vertex)
		if err != nil {
			return desc, errors.Wrap(err, "unable to get vertex properties")
		}

		sourceAttributes := make(map[string]string, len(sourceProperties.Attributes))
		htmlAttributes := make(map[string]string)

		for key, value := range sourceProperties.Attributes {
			if key == "xlabel" {
				htmlAttributes["label"] = fmt.Sprintf(`<%s <BR /> <FONT POINT-SIZE="12">%s</FONT>>`, vertex, value)

				continue
			}

			sourceAttributes[key] = value
		}

		desc.Statements = append(desc.Statements, statement{
			Source:           vertex,
			SourceWeight:     sourceProperties.Weight,
			SourceAttributes: sourceAttributes,
			HTMLAttributes:   htmlAttributes,
		})

		targets := make([]string, 0, len(adjacencyMap[vertex]))
		for target := range adjacencyMap[vertex] {
			targets = append(targets, target)
		}

		sort.Strings(targets)

		for _, target := range targets {
			edge := adjacencyMap[vertex][target]
			desc.Statements = append(desc.Statements, statement{
				Source:         vertex,
				Target:         target,
				EdgeWeight:     edge.Properties.Weight,
				EdgeAttributes: edge.Properties.Attributes,
			})
		}
	}

	return desc, nil
}

func renderDOT(wrt io.Writer, desc description) error {
	tpl, err := template.New("dotTemplate").Parse(dotTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	err = tpl.Execute(wrt, desc)
	if err != nil {
		return errors.Wrap(err, "unable to execute template")
	}

	return nil
}

var _ Drawer = (*DOTDrawer)(nil)
