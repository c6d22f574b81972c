package measure

import (
	"time"

	"github.com/askiada/go-lazy/pkg/pipeline/model"
)

type pipelineMeasure struct {
	Measure
}

func (pm *pipelineMeasure) PrepareStep(_, step *model.StepInfo) {
	pm.AddMetric(step.Name)
}

func (pm *pipelineMeasure) OnStepOutput(step *model.StepInfo, computationDuration time.Duration) {
	pm.AddMetric(step.Name).AddDuration(computationDuration)
}

func (pm *pipelineMeasure) Finish(lastStep *model.StepInfo, total int, totalDuration time.Duration) {
	pm.AddMetric(lastStep.Name).SetTotal(total, totalDuration)
}

// PipelineMeasure returns an option recording in measure how many times each step runs and how long it takes.
func PipelineMeasure(measure Measure) model.PipelineOption {
	measure.AddMetric(model.StartStep.Name)

	return &pipelineMeasure{measure}
}
