package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-lazy/pkg/pipeline/model"
)

func TestTraceNext(t *testing.T) {
	t.Parallel()

	first := rootTrace.next(model.MapStepType)
	second := first.next(model.FilterStepType)
	branch := first.next(model.FlatMapStepType)

	assert.Same(t, rootTrace, first.parent)
	assert.Same(t, first, second.parent)
	assert.Same(t, first, branch.parent)
	assert.Equal(t, "filter-2", second.step.Name)
	assert.Equal(t, "flatmap-2", branch.step.Name)
	assert.Equal(t, "map-1", first.step.Name)
}

func TestTraceNil(t *testing.T) {
	t.Parallel()

	var tr *trace

	assert.Same(t, model.StartStep, tr.last())

	next := tr.next(model.MapStepType)
	assert.Same(t, rootTrace, next.parent)
	assert.Equal(t, 1, next.step.Index)

	steps := tr.steps()
	require.Len(t, steps, 1)
	assert.Equal(t, *model.StartStep, *steps[0])
}

type durationOption struct {
	durations []time.Duration
}

func (d *durationOption) PrepareStep(_, _ *model.StepInfo) {}

func (d *durationOption) OnStepOutput(_ *model.StepInfo, computationDuration time.Duration) {
	d.durations = append(d.durations, computationDuration)
}

func (d *durationOption) Finish(_ *model.StepInfo, _ int, _ time.Duration) {}

func TestObserve(t *testing.T) {
	t.Parallel()

	opt := &durationOption{}
	step := model.NewStepInfo(model.MapStepType, 1)

	slow := observe(options{opt}, step, func(n int) int {
		time.Sleep(time.Millisecond)

		return n + 1
	})

	assert.Equal(t, 2, slow(1))
	require.Len(t, opt.durations, 1)
	assert.GreaterOrEqual(t, opt.durations[0], time.Millisecond)
}

func TestObserveWithoutOptions(t *testing.T) {
	t.Parallel()

	calls := 0
	fn := observe(nil, model.StartStep, func(n int) int {
		calls++

		return n
	})

	assert.Equal(t, 3, fn(3))
	assert.Equal(t, 1, calls)
}

func TestFinishWithoutOptions(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		options(nil).finish(model.StartStep, 0, time.Now())
	})
}
