package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/willflow/internal/domain"
)

// ShowHistoryInput contains the parameters for the diary stream.
type ShowHistoryInput struct {
	Limit int // 0 shows every record
}

// ShowHistoryOutput contains closed days, newest first.
type ShowHistoryOutput struct {
	Records []domain.DayRecord
	Total   int
}

// ShowHistory lists closed days for the diary stream.
type ShowHistory struct {
	repo domain.StateRepository
}

// NewShowHistory creates a new ShowHistory use case.
func NewShowHistory(repo domain.StateRepository) *ShowHistory {
	return &ShowHistory{repo: repo}
}

// Execute returns the timeline.
func (uc *ShowHistory) Execute(_ context.Context, in ShowHistoryInput) (*ShowHistoryOutput, error) {
	res, err := uc.repo.Load()
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	records := domain.Timeline(res.State.History)
	total := len(records)
	if in.Limit > 0 && len(records) > in.Limit {
		records = records[:in.Limit]
	}
	return &ShowHistoryOutput{Records: records, Total: total}, nil
}
