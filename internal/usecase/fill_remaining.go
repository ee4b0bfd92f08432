package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/runoshun/willflow/internal/domain"
)

// FillRemainingInput contains the input for the FillRemaining use case.
type FillRemainingInput struct{}

// FillRemainingOutput contains the filler task, if one was added.
type FillRemainingOutput struct {
	Filler *domain.Task // nil when nothing was left to fill
	Budget domain.Budget
}

// FillRemaining adds a filler task that spends the remaining budget.
type FillRemaining struct {
	ports StatePorts
}

// NewFillRemaining creates a new FillRemaining use case.
func NewFillRemaining(ports StatePorts) *FillRemaining {
	return &FillRemaining{ports: ports}
}

// Execute adds the filler when the remaining budget is positive.
func (uc *FillRemaining) Execute(_ context.Context, _ FillRemainingInput) (*FillRemainingOutput, error) {
	state, applied, err := uc.ports.mutate(func(s *domain.AppState, _ time.Time) (domain.StatePatch, error) {
		return domain.FillRemaining(s, uc.ports.IDs), nil
	})
	if err != nil {
		return nil, fmt.Errorf("fill remaining: %w", err)
	}

	out := &FillRemainingOutput{Budget: state.Budget()}
	if applied.TodayTasks != nil {
		filler := state.TodayTasks[len(state.TodayTasks)-1]
		out.Filler = &filler
		uc.ports.logger().Info("day", fmt.Sprintf("filled remaining %d", filler.Cost))
	}
	return out, nil
}
