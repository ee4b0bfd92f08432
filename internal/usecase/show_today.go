// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/runoshun/willflow/internal/domain"
	"github.com/runoshun/willflow/internal/usecase/shared"
)

// ShowTodayInput contains the input for the ShowToday use case.
type ShowTodayInput struct{}

// ShowTodayOutput contains everything the today view shows.
// Fields are ordered to minimize memory padding.
type ShowTodayOutput struct {
	State     *domain.AppState
	Recovered error                 // Non-nil when the stored snapshot was unreadable
	Progress  []domain.PlanProgress // Frequency plans with their period counts
	Injected  []domain.Task         // Instances added by this view
	Today     string
	Budget    domain.Budget
	Stale     bool // The open day started before today
}

// ShowToday loads today's state and injects due fixed-day plans.
type ShowToday struct {
	repo   domain.StateRepository
	ids    domain.IDGenerator
	clock  domain.Clock
	logger domain.Logger
}

// NewShowToday creates a new ShowToday use case.
func NewShowToday(repo domain.StateRepository, ids domain.IDGenerator, clock domain.Clock, logger domain.Logger) *ShowToday {
	return &ShowToday{repo: repo, ids: ids, clock: clock, logger: logger}
}

// Execute loads the snapshot. Opening the view is an evaluation point for
// auto-injection, so due instances are added and saved here.
func (uc *ShowToday) Execute(_ context.Context, _ ShowTodayInput) (*ShowTodayOutput, error) {
	now := uc.clock.Now()

	res, err := uc.repo.Load()
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}

	state, applied, err := shared.Mutate(uc.repo, uc.ids, now, func(s *domain.AppState, now time.Time) (domain.StatePatch, error) {
		return domain.InjectScheduled(s, uc.ids, now), nil
	})
	if err != nil {
		return nil, fmt.Errorf("inject scheduled tasks: %w", err)
	}
	var injected []domain.Task
	if applied.TodayTasks != nil {
		injected = newTasks(res.State.TodayTasks, state.TodayTasks)
		for _, t := range injected {
			uc.logger.Info("schedule", fmt.Sprintf("injected %q from plan %s", t.Title, t.SourceID))
		}
	}

	today := domain.FormatDate(now)
	return &ShowTodayOutput{
		State:     state,
		Recovered: res.Recovered,
		Budget:    state.Budget(),
		Progress:  domain.FrequencyProgress(state, now),
		Injected:  injected,
		Today:     today,
		Stale:     state.LastActiveDate != "" && state.LastActiveDate < today,
	}, nil
}

// newTasks returns the tasks of after whose ids are not in before.
func newTasks(before, after []domain.Task) []domain.Task {
	seen := make(map[string]bool, len(before))
	for _, t := range before {
		seen[t.ID] = true
	}
	var out []domain.Task
	for _, t := range after {
		if !seen[t.ID] {
			out = append(out, t)
		}
	}
	return out
}
