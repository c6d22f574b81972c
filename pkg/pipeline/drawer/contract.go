package drawer

import (
	"github.com/askiada/go-lazy/pkg/pipeline/measure"
	"github.com/askiada/go-lazy/pkg/pipeline/model"
)

// Drawer is an interface that defines the methods for drawing a pipeline.
type Drawer interface {
	// AddStep adds a step to the pipeline drawer.
	AddStep(step *model.StepInfo) error
	// AddLink adds a link between parent and child steps.
	AddLink(parentStepName, childStepName string) error
	// AddMeasure annotates the steps with their metrics.
	AddMeasure(measure measure.Measure) error
	// Draw writes the pipeline graph.
	Draw() error
}
