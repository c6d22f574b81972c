package pipeline

import (
	"iter"
	"time"

	"github.com/askiada/go-lazy/pkg/pipeline/model"
)

// MapPipeline is a lazy pipeline over a source of T whose elements are turned into R by a single composed function.
//
// A MapPipeline is an immutable value. Map returns a new pipeline and leaves the receiver untouched,
// so every intermediate pipeline can be forced on its own.
type MapPipeline[T, R any] struct {
	source []T
	fn     func(T) R
	trace  *trace
	opts   options
}

// From creates a pipeline applying the identity function to source.
// source is shared with every pipeline derived from the result and must not be modified while they are in use.
func From[T any](source []T, opts ...model.PipelineOption) MapPipeline[T, T] {
	return MapPipeline[T, T]{
		source: source,
		fn:     identity[T],
		trace:  rootTrace,
		opts:   opts,
	}
}

func identity[T any](elem T) T {
	return elem
}

func compose[A, B, C any](first func(A) B, second func(B) C) func(A) C {
	return func(a A) C {
		return second(first(a))
	}
}

// Map returns a pipeline applying f to the output of p.
// Nothing is computed until Force is called.
func Map[T, R, R2 any](p MapPipeline[T, R], f func(R) R2) MapPipeline[T, R2] {
	tr := p.trace.next(model.MapStepType)
	p.opts.prepareStep(p.trace.last(), tr.step)

	return MapPipeline[T, R2]{
		source: p.source,
		fn:     compose(p.fn, observe(p.opts, tr.step, f)),
		trace:  tr,
		opts:   p.opts,
	}
}

// Force applies the composed function to every element of the source, in order.
// The result has the same length as the source. It is never nil.
func (p MapPipeline[T, R]) Force() []R {
	startTime := time.Now()

	res := make([]R, len(p.source))
	for i, elem := range p.source {
		res[i] = p.fn(elem)
	}

	p.opts.finish(p.trace.last(), len(res), startTime)

	return res
}

// All returns an iterator over the results.
// Elements are transformed one at a time, only when the consumer asks for them.
func (p MapPipeline[T, R]) All() iter.Seq[R] {
	return func(yield func(R) bool) {
		for _, elem := range p.source {
			if !yield(p.fn(elem)) {
				return
			}
		}
	}
}

// Flat turns p into a FlatMapPipeline where each element yields a single result.
func (p MapPipeline[T, R]) Flat() FlatMapPipeline[T, R] {
	fn := p.fn

	return FlatMapPipeline[T, R]{
		source: p.source,
		fn: func(elem T, yield func(R) bool) bool {
			return yield(fn(elem))
		},
		trace: p.trace,
		opts:  p.opts,
	}
}

// Steps returns the steps applied by p, starting with the source.
func (p MapPipeline[T, R]) Steps() []*model.StepInfo {
	return p.trace.steps()
}
