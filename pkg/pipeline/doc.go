// Package pipeline provides lazy pipelines for transforming ordered collections.
//
// A pipeline wraps a source slice and a single composed function. Each call to Map, FlatMap or Filter returns a
// new pipeline whose function is the composition of the previous one and the new step. The source is not touched
// until Force is called, which applies the composed function to every element in one pass. A chain of any length
// therefore costs one pass over the source, instead of one pass per step.
//
// Two kinds of pipelines are available. MapPipeline maps each element to exactly one result. FlatMapPipeline maps
// each element to a sequence of results and concatenates them in source order; Map and Filter are expressed with
// FlatMap on that kind.
//
//	names := pipeline.Map(pipeline.From(people), func(p Person) string { return p.FirstName })
//	upper := pipeline.Map(names, strings.ToUpper)
//	res := upper.Force()
//
//	evens := pipeline.Filter(pipeline.FromFlat([]int{1, 2, 3, 4}), func(n int) bool { return n%2 == 0 })
//	res := evens.Force() // [2 4]
//
// Pipelines are immutable values and may be shared and forced from several goroutines. Forcing has no side effect
// other than allocating the result and notifying the options given to From or FromFlat.
//
// Options observe a pipeline without changing its results. The measure, drawer and logger sub-packages use them to
// count calls per step, draw the steps as a graph and log progress.
package pipeline
