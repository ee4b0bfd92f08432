package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/runoshun/willflow/internal/domain"
	"github.com/runoshun/willflow/internal/usecase/shared"
)

// EditTaskInput contains the parameters for editing a today task.
// Only non-nil fields are updated.
type EditTaskInput struct {
	Cost    *int    // New cost (nil = no change)
	Note    *string // New note (nil = no change)
	TaskRef string  // Task id or unique id prefix (required)
}

// EditTaskOutput contains the edited task.
type EditTaskOutput struct {
	Task   domain.Task
	Budget domain.Budget
}

// EditTask is the use case for changing the cost or note of a today task.
type EditTask struct {
	ports StatePorts
}

// NewEditTask creates a new EditTask use case.
func NewEditTask(ports StatePorts) *EditTask {
	return &EditTask{ports: ports}
}

// Execute applies the requested edits as one change.
func (uc *EditTask) Execute(_ context.Context, in EditTaskInput) (*EditTaskOutput, error) {
	if in.Cost == nil && in.Note == nil {
		return nil, domain.ErrNoFieldsToUpdate
	}

	var id string
	state, _, err := uc.ports.mutate(func(s *domain.AppState, _ time.Time) (domain.StatePatch, error) {
		var err error
		if id, err = shared.ResolveTask(s.TodayTasks, in.TaskRef, domain.ErrTaskNotFound); err != nil {
			return domain.StatePatch{}, err
		}
		var patch domain.StatePatch
		if in.Cost != nil {
			p, err := domain.EditTaskCost(s, id, *in.Cost)
			if err != nil {
				return domain.StatePatch{}, err
			}
			s.Apply(p)
			patch = patch.Merge(p)
		}
		if in.Note != nil {
			p, err := domain.EditTaskNote(s, id, *in.Note)
			if err != nil {
				return domain.StatePatch{}, err
			}
			patch = patch.Merge(p)
		}
		return patch, nil
	})
	if err != nil {
		return nil, err
	}

	task := state.TodayTasks[indexOf(state.TodayTasks, id)]
	uc.ports.logger().Info("day", fmt.Sprintf("edited %q (cost %d)", task.Title, task.Cost))
	return &EditTaskOutput{Task: task, Budget: state.Budget()}, nil
}
