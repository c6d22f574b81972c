package measure

import (
	"sync"
	"time"
)

type DefaultMetric struct {
	mu            sync.Mutex
	stepElapsed   time.Duration
	total         int64
	totalDuration time.Duration
	outputs       int
}

func (mt *DefaultMetric) AddDuration(elapsed time.Duration) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.total++
	mt.stepElapsed += elapsed
}

func (mt *DefaultMetric) Calls() int64 {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.total
}

func (mt *DefaultMetric) AVGDuration() time.Duration {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	if mt.total == 0 {
		return time.Duration(0)
	}

	return round(time.Duration(float64(mt.stepElapsed) / float64(mt.total)))
}

func (mt *DefaultMetric) SetTotal(outputs int, totalDuration time.Duration) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.outputs = outputs
	mt.totalDuration = totalDuration
}

func (mt *DefaultMetric) GetTotalDuration() time.Duration {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.totalDuration
}

func (mt *DefaultMetric) Outputs() int {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.outputs
}

// round keeps three significant digits at most, coarser units first.
func round(d time.Duration) time.Duration {
	switch {
	case d > time.Hour:
		d = d.Round(time.Minute)
	case d > time.Minute:
		d = d.Round(time.Second)
	case d > time.Second:
		d = d.Round(time.Millisecond)
	case d > time.Millisecond:
		d = d.Round(time.Microsecond)
	}

	return d
}

var _ Metric = (*DefaultMetric)(nil)
