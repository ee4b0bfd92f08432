package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/runoshun/willflow/internal/domain"
)

// CloseDayInput contains the input for the CloseDay use case.
type CloseDayInput struct{}

// CloseDayOutput contains the closed day's record and the new capacity.
// Fields are ordered to minimize memory padding.
type CloseDayOutput struct {
	Injected    []domain.Task // Fixed-day instances due in the new day
	Record      domain.DayRecord
	OldBaseMax  int
	NewBaseMax  int
	CarriedOver int // Incomplete tasks moved to the backlog
}

// CloseDay ends the current day and opens a new one.
type CloseDay struct {
	ports StatePorts
	rules domain.Rules
}

// NewCloseDay creates a new CloseDay use case.
func NewCloseDay(ports StatePorts, rules domain.Rules) *CloseDay {
	return &CloseDay{ports: ports, rules: rules}
}

// Execute archives the day, adjusts capacity, carries incomplete tasks to
// the backlog and resets to planning. It works from either phase.
func (uc *CloseDay) Execute(_ context.Context, _ CloseDayInput) (*CloseDayOutput, error) {
	var record domain.DayRecord
	var oldBaseMax, backlogBefore int
	state, _, err := uc.ports.mutate(func(s *domain.AppState, now time.Time) (domain.StatePatch, error) {
		oldBaseMax = s.BaseMax
		backlogBefore = len(s.Backlog)
		p, rec := domain.CloseDay(s, uc.rules, now)
		record = rec
		return p, nil
	})
	if err != nil {
		return nil, fmt.Errorf("close day: %w", err)
	}

	out := &CloseDayOutput{
		Record:      record,
		OldBaseMax:  oldBaseMax,
		NewBaseMax:  state.BaseMax,
		CarriedOver: len(state.Backlog) - backlogBefore,
		Injected:    state.TodayTasks,
	}
	uc.ports.logger().Info("rollover", fmt.Sprintf(
		"closed %s: balance %d, capacity %d -> %d, %d carried over",
		record.Date, record.FinalBalance, oldBaseMax, out.NewBaseMax, out.CarriedOver))
	return out, nil
}
