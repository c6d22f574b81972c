package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/askiada/go-lazy/pkg/pipeline"
)

func TestMapSlice(t *testing.T) {
	t.Parallel()

	input := []int{1, 2, 3}

	assert.Equal(t, []string{"1", "2", "3"}, pipeline.MapSlice(input, itoa))
	assert.Equal(t, []int{}, pipeline.MapSlice([]int(nil), double))
	assert.Equal(t, []int{1, 2, 3}, input)
}

func TestFlatMapSlice(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{1, 10, 2, 20}, pipeline.FlatMapSlice([]int{1, 2}, twice))
	assert.Equal(t, []int{}, pipeline.FlatMapSlice([]int{1, 2}, func(int) []int { return nil }))
}

func TestEagerChainMatchesLazy(t *testing.T) {
	t.Parallel()

	input := createInput(12)

	eager := pipeline.MapSlice(pipeline.MapSlice(pipeline.MapSlice(input, double), inc), itoa)
	lazy := pipeline.Map(pipeline.Map(pipeline.Map(pipeline.From(input), double), inc), itoa).Force()

	assert.Equal(t, lazy, eager)
}
