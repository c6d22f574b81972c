package drawer

import (
	"github.com/pkg/errors"

	"github.com/askiada/go-lazy/pkg/pipeline/measure"
	"github.com/askiada/go-lazy/pkg/pipeline/model"
)

// DrawPipeline draws the steps of a pipeline, as returned by its Steps method, each one linked to the next.
// When msr is not nil the steps are annotated with their metrics.
func DrawPipeline(drw Drawer, steps []*model.StepInfo, msr measure.Measure) error {
	if len(steps) == 0 {
		return ErrNoSteps
	}

	for i, step := range steps {
		err := drw.AddStep(step)
		if err != nil {
			return err
		}

		if i == 0 {
			continue
		}

		err = drw.AddLink(steps[i-1].Name, step.Name)
		if err != nil {
			return err
		}
	}

	if msr != nil {
		err := drw.AddMeasure(msr)
		if err != nil {
			return errors.Wrap(err, "unable to add measure")
		}
	}

	err := drw.Draw()
	if err != nil {
		return errors.Wrap(err, "unable to draw pipeline")
	}

	return nil
}
