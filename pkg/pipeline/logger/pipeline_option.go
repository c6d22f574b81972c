package logger

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/askiada/go-lazy/pkg/pipeline/model"
)

const (
	FieldStep       = "step"
	FieldParentStep = "parent_step"
	FieldStepType   = "step_type"
	FieldOutputs    = "outputs"
	FieldDuration   = "duration"
)

type pipelineLogger struct {
	logger zerolog.Logger
}

func (pl *pipelineLogger) PrepareStep(parentStep, step *model.StepInfo) {
	pl.logger.Debug().
		Str(FieldParentStep, parentStep.Name).
		Str(FieldStep, step.Name).
		Str(FieldStepType, string(step.Type)).
		Msg("step added")
}

func (pl *pipelineLogger) OnStepOutput(step *model.StepInfo, computationDuration time.Duration) {
	pl.logger.Trace().
		Str(FieldStep, step.Name).
		Dur(FieldDuration, computationDuration).
		Msg("step output")
}

func (pl *pipelineLogger) Finish(lastStep *model.StepInfo, total int, totalDuration time.Duration) {
	pl.logger.Info().
		Str(FieldStep, lastStep.Name).
		Int(FieldOutputs, total).
		Dur(FieldDuration, totalDuration).
		Msg("pipeline forced")
}

// PipelineLogger returns an option writing to logger.
func PipelineLogger(logger zerolog.Logger) model.PipelineOption {
	return &pipelineLogger{logger: logger.With().Str("component", "pipeline").Logger()}
}
