package model

import "strconv"

// StepType identifies the kind of transformation a step applies.
type StepType string

const (
	RootStepType    StepType = "source"
	MapStepType     StepType = "map"
	FlatMapStepType StepType = "flatmap"
	FilterStepType  StepType = "filter"
)

// StepInfo describes one transformation of a lazy pipeline.
type StepInfo struct {
	Type  StepType
	Name  string
	Index int
}

// StartStep is the root of every pipeline. It applies the identity function.
var StartStep = &StepInfo{Type: RootStepType, Name: string(RootStepType)}

// NewStepInfo returns the descriptor of the index-th step of a pipeline.
func NewStepInfo(typ StepType, index int) *StepInfo {
	return &StepInfo{
		Type:  typ,
		Name:  string(typ) + "-" + strconv.Itoa(index),
		Index: index,
	}
}
