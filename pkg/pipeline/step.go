package pipeline

import (
	"time"

	"github.com/askiada/go-lazy/pkg/pipeline/model"
)

// trace is the immutable list of steps applied by a pipeline, linked from the last step to the root.
// Appending a step never modifies the parent, so every pipeline version keeps its own view.
type trace struct {
	parent *trace
	step   *model.StepInfo
}

var rootTrace = &trace{step: model.StartStep}

func (tr *trace) orRoot() *trace {
	if tr == nil {
		return rootTrace
	}

	return tr
}

func (tr *trace) last() *model.StepInfo {
	return tr.orRoot().step
}

func (tr *trace) next(typ model.StepType) *trace {
	parent := tr.orRoot()

	return &trace{
		parent: parent,
		step:   model.NewStepInfo(typ, parent.step.Index+1),
	}
}

// steps returns a copy of the trace, root first.
func (tr *trace) steps() []*model.StepInfo {
	curr := tr.orRoot()
	steps := make([]*model.StepInfo, curr.step.Index+1)

	for ; curr != nil; curr = curr.parent {
		step := *curr.step
		steps[step.Index] = &step
	}

	return steps
}

type options []model.PipelineOption

func (o options) prepareStep(parentStep, step *model.StepInfo) {
	for _, opt := range o {
		opt.PrepareStep(parentStep, step)
	}
}

func (o options) finish(lastStep *model.StepInfo, total int, startTime time.Time) {
	if len(o) == 0 {
		return
	}

	totalDuration := time.Since(startTime)
	for _, opt := range o {
		opt.Finish(lastStep, total, totalDuration)
	}
}

// observe decorates fn so that every call is reported to the options.
// Without options fn is returned untouched.
func observe[I, O any](opts options, step *model.StepInfo, fn func(I) O) func(I) O {
	if len(opts) == 0 {
		return fn
	}

	return func(in I) O {
		startFn := time.Now()
		out := fn(in)
		endFn := time.Since(startFn)

		for _, opt := range opts {
			opt.OnStepOutput(step, endFn)
		}

		return out
	}
}
