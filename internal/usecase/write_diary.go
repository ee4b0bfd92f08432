package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/runoshun/willflow/internal/domain"
)

// WriteDiaryInput contains the new diary text.
type WriteDiaryInput struct {
	Text   string
	Append bool // Add Text as a new line instead of replacing the diary
}

// WriteDiaryOutput contains the diary and its effect on the pool.
type WriteDiaryOutput struct {
	Diary      string
	Adjustment int
	Budget     domain.Budget
}

// WriteDiary replaces today's diary and recomputes the adjustment.
type WriteDiary struct {
	ports StatePorts
}

// NewWriteDiary creates a new WriteDiary use case.
func NewWriteDiary(ports StatePorts) *WriteDiary {
	return &WriteDiary{ports: ports}
}

// Execute writes the diary.
func (uc *WriteDiary) Execute(_ context.Context, in WriteDiaryInput) (*WriteDiaryOutput, error) {
	state, _, err := uc.ports.mutate(func(s *domain.AppState, _ time.Time) (domain.StatePatch, error) {
		text := in.Text
		if in.Append && s.DiaryContent != "" {
			text = s.DiaryContent + "\n" + in.Text
		}
		return domain.WriteDiary(text), nil
	})
	if err != nil {
		return nil, fmt.Errorf("write diary: %w", err)
	}

	uc.ports.logger().Info("diary", fmt.Sprintf("adjustment %+d", state.DiaryAdjustment))
	return &WriteDiaryOutput{
		Diary:      state.DiaryContent,
		Adjustment: state.DiaryAdjustment,
		Budget:     state.Budget(),
	}, nil
}
