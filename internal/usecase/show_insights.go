package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/willflow/internal/domain"
)

// ShowInsightsInput contains the input for the ShowInsights use case.
type ShowInsightsInput struct {
	Days int // Heatmap span; defaults to domain.HeatmapDays
}

// ShowInsightsOutput contains the read-only analytics.
// Fields are ordered to minimize memory padding.
type ShowInsightsOutput struct {
	TopTask      string
	Heatmap      []domain.HeatCell
	Stats        domain.HistoryStats
	BaseMax      int
	TopTaskCount int
	HasTopTask   bool
}

// ShowInsights summarizes the closed-day history.
type ShowInsights struct {
	repo  domain.StateRepository
	clock domain.Clock
}

// NewShowInsights creates a new ShowInsights use case.
func NewShowInsights(repo domain.StateRepository, clock domain.Clock) *ShowInsights {
	return &ShowInsights{repo: repo, clock: clock}
}

// Execute computes the heatmap, top task and aggregates.
func (uc *ShowInsights) Execute(_ context.Context, in ShowInsightsInput) (*ShowInsightsOutput, error) {
	res, err := uc.repo.Load()
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	days := in.Days
	if days <= 0 {
		days = domain.HeatmapDays
	}

	s := res.State
	top, count, ok := domain.TopTask(s.History)
	return &ShowInsightsOutput{
		BaseMax:      s.BaseMax,
		Heatmap:      domain.Heatmap(s.History, uc.clock.Now(), days),
		TopTask:      top,
		TopTaskCount: count,
		HasTopTask:   ok,
		Stats:        domain.Stats(s.History),
	}, nil
}
