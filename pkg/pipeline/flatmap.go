package pipeline

import (
	"iter"
	"slices"
	"time"

	"github.com/askiada/go-lazy/pkg/pipeline/model"
)

// kleisli maps an element to a sequence of results, pushed one by one to yield.
// It returns false as soon as yield does, so the consumer can stop the pass early.
type kleisli[T, R any] func(elem T, yield func(R) bool) bool

// FlatMapPipeline is a lazy pipeline over a source of T where every element expands into zero or more R.
//
// Like MapPipeline it is an immutable value. The sub-sequences produced by each step are never collected:
// every result is pushed straight to the next step, and only Force allocates.
type FlatMapPipeline[T, R any] struct {
	source []T
	fn     kleisli[T, R]
	trace  *trace
	opts   options
}

// FromFlat creates a pipeline where each element of source yields itself once.
func FromFlat[T any](source []T, opts ...model.PipelineOption) FlatMapPipeline[T, T] {
	return FlatMapPipeline[T, T]{
		source: source,
		fn:     unit[T],
		trace:  rootTrace,
		opts:   opts,
	}
}

func unit[T any](elem T, yield func(T) bool) bool {
	return yield(elem)
}

// bind composes fn with f: every result of fn goes through f and the sub-sequences are concatenated in order.
func bind[T, R, R2 any](fn kleisli[T, R], f func(R) iter.Seq[R2]) kleisli[T, R2] {
	return func(elem T, yield func(R2) bool) bool {
		return fn(elem, func(r R) bool {
			for out := range f(r) {
				if !yield(out) {
					return false
				}
			}

			return true
		})
	}
}

func flatMap[T, R, R2 any](p FlatMapPipeline[T, R], typ model.StepType, f func(R) iter.Seq[R2]) FlatMapPipeline[T, R2] {
	tr := p.trace.next(typ)
	p.opts.prepareStep(p.trace.last(), tr.step)

	return FlatMapPipeline[T, R2]{
		source: p.source,
		fn:     bind(p.fn, observe(p.opts, tr.step, f)),
		trace:  tr,
		opts:   p.opts,
	}
}

func flatMapSlice[T, R, R2 any](p FlatMapPipeline[T, R], typ model.StepType, f func(R) []R2) FlatMapPipeline[T, R2] {
	return flatMap(p, typ, func(r R) iter.Seq[R2] {
		return slices.Values(f(r))
	})
}

// FlatMapSeq returns a pipeline where every output of p is expanded by f.
// The sequences returned by f are consumed in order and never stored.
func FlatMapSeq[T, R, R2 any](p FlatMapPipeline[T, R], f func(R) iter.Seq[R2]) FlatMapPipeline[T, R2] {
	return flatMap(p, model.FlatMapStepType, f)
}

// FlatMap returns a pipeline where every output of p is replaced by the elements of f(output).
//
// For a source [t1, t2] where p yields [a, b] for t1 and [c] for t2, the result is f(a) ++ f(b) ++ f(c).
// An empty slice contributes nothing.
func FlatMap[T, R, R2 any](p FlatMapPipeline[T, R], f func(R) []R2) FlatMapPipeline[T, R2] {
	return flatMapSlice(p, model.FlatMapStepType, f)
}

// MapFlat returns a pipeline applying f to every output of p.
// It is FlatMap with f lifted to return a one-element slice.
func MapFlat[T, R, R2 any](p FlatMapPipeline[T, R], f func(R) R2) FlatMapPipeline[T, R2] {
	return flatMapSlice(p, model.MapStepType, func(r R) []R2 {
		return []R2{f(r)}
	})
}

// Filter returns a pipeline keeping the outputs of p for which keep returns true.
func Filter[T, R any](p FlatMapPipeline[T, R], keep func(R) bool) FlatMapPipeline[T, R] {
	return flatMapSlice(p, model.FilterStepType, func(r R) []R {
		if keep(r) {
			return []R{r}
		}

		return nil
	})
}

// Force runs the composed function over the source and concatenates every sub-sequence, in source order.
// The result is never nil.
func (p FlatMapPipeline[T, R]) Force() []R {
	startTime := time.Now()

	res := make([]R, 0, len(p.source))
	collect := func(out R) bool {
		res = append(res, out)

		return true
	}

	for _, elem := range p.source {
		p.fn(elem, collect)
	}

	p.opts.finish(p.trace.last(), len(res), startTime)

	return res
}

// All returns an iterator over the results.
// Stopping the iteration stops the pass: no further element or sub-sequence is computed.
func (p FlatMapPipeline[T, R]) All() iter.Seq[R] {
	return func(yield func(R) bool) {
		for _, elem := range p.source {
			if !p.fn(elem, yield) {
				return
			}
		}
	}
}

// First returns the first result of p, computing only what is needed to find it.
func First[T, R any](p FlatMapPipeline[T, R]) (R, bool) {
	for out := range p.All() {
		return out, true
	}

	var zero R

	return zero, false
}

// Steps returns the steps applied by p, starting with the source.
func (p FlatMapPipeline[T, R]) Steps() []*model.StepInfo {
	return p.trace.steps()
}
