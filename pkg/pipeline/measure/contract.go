package measure

import "time"

// Measure holds the metrics of the steps of a pipeline, by step name.
type Measure interface {
	AddMetric(name string) Metric
	GetMetric(name string) Metric
	AllMetrics() map[string]Metric
}

// Metric accumulates what happened to a single step.
type Metric interface {
	// AddDuration records one call of the step function.
	AddDuration(elapsed time.Duration)
	// Calls returns how many times the step function ran.
	Calls() int64
	AVGDuration() time.Duration
	// SetTotal records the outcome of a force ending with this step.
	SetTotal(outputs int, totalDuration time.Duration)
	GetTotalDuration() time.Duration
	Outputs() int
}
