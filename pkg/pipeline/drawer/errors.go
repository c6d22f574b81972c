package drawer

import "github.com/pkg/errors"

var (
	ErrNoSteps   = errors.New("pipeline must have at least one step")
	ErrNoMetrics = errors.New("measure has no metric for the drawn steps")
)
