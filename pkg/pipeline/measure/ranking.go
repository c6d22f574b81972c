package measure

import (
	"sort"
	"time"
)

// StepCost summarises the metric of one step.
type StepCost struct {
	StepName string
	Calls    int64
	Average  time.Duration
}

// Ranking returns the steps of m, slowest average first.
// Steps that never ran are last.
func Ranking(m Measure) []StepCost {
	all := m.AllMetrics()

	costs := make([]StepCost, 0, len(all))
	for name, mt := range all {
		costs = append(costs, StepCost{
			StepName: name,
			Calls:    mt.Calls(),
			Average:  mt.AVGDuration(),
		})
	}

	sort.Slice(costs, func(i, j int) bool {
		if costs[i].Average != costs[j].Average {
			return costs[i].Average > costs[j].Average
		}

		return costs[i].StepName < costs[j].StepName
	})

	return costs
}
