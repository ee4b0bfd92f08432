package usecase

import (
	"context"
	"time"

	"github.com/runoshun/willflow/internal/domain"
)

// StartExecutionInput contains the input for the StartExecution use case.
type StartExecutionInput struct{}

// StartExecutionOutput contains the budget at the moment planning ended.
type StartExecutionOutput struct {
	Budget domain.Budget
}

// StartExecution ends planning for the day.
type StartExecution struct {
	ports StatePorts
}

// NewStartExecution creates a new StartExecution use case.
func NewStartExecution(ports StatePorts) *StartExecution {
	return &StartExecution{ports: ports}
}

// Execute switches the phase to execution. It fails with
// domain.ErrInvalidTransition when the day is already executing.
func (uc *StartExecution) Execute(_ context.Context, _ StartExecutionInput) (*StartExecutionOutput, error) {
	state, _, err := uc.ports.mutate(func(s *domain.AppState, _ time.Time) (domain.StatePatch, error) {
		return domain.StartExecution(s)
	})
	if err != nil {
		return nil, err
	}

	b := state.Budget()
	uc.ports.logger().Info("day", "execution started")
	return &StartExecutionOutput{Budget: b}, nil
}
