package pipeline_test

import (
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/askiada/go-lazy/pkg/pipeline/model"
)

func counted[I, O any](calls *atomic.Int64, fn func(I) O) func(I) O {
	return func(in I) O {
		calls.Add(1)

		return fn(in)
	}
}

func double(n int) int { return n * 2 }

func inc(n int) int { return n + 1 }

func isEven(n int) bool { return n%2 == 0 }

func itoa(n int) string { return strconv.Itoa(n) }

// twice returns [n, n*10].
func twice(n int) []int { return []int{n, n * 10} }

func createInput(total int) []int {
	res := make([]int, total)
	for i := range total {
		res[i] = i
	}

	return res
}

type finishEvent struct {
	lastStep string
	total    int
}

// recordingOption keeps every hook call.
type recordingOption struct {
	mu       sync.Mutex
	prepared []string
	outputs  map[string]int
	finished []finishEvent
}

func newRecordingOption() *recordingOption {
	return &recordingOption{outputs: make(map[string]int)}
}

func (r *recordingOption) PrepareStep(parentStep, step *model.StepInfo) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prepared = append(r.prepared, parentStep.Name+"->"+step.Name)
}

func (r *recordingOption) OnStepOutput(step *model.StepInfo, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outputs[step.Name]++
}

func (r *recordingOption) Finish(lastStep *model.StepInfo, total int, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finished = append(r.finished, finishEvent{lastStep: lastStep.Name, total: total})
}

var _ model.PipelineOption = (*recordingOption)(nil)
