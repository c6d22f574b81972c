package model

import "time"

// PipelineOption defines the interface for pipeline options.
// Hooks observe a pipeline, they never change what it produces.
type PipelineOption interface {
	pipelineStepOption
	pipelineForceOption
}

// pipelineStepOption defines the interface for step options at the pipeline level.
type pipelineStepOption interface {
	// PrepareStep runs when a step is appended to a pipeline.
	PrepareStep(parentStep, step *StepInfo)
	// OnStepOutput runs everytime the function of a step returns.
	OnStepOutput(step *StepInfo, computationDuration time.Duration)
}

// pipelineForceOption defines the interface for force options at the pipeline level.
type pipelineForceOption interface {
	// Finish runs after a pipeline has been forced.
	Finish(lastStep *StepInfo, total int, totalDuration time.Duration)
}
