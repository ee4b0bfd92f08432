package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/runoshun/willflow/internal/domain"
	"github.com/runoshun/willflow/internal/usecase/shared"
)

// ToggleTaskInput contains the parameters for toggling completion.
type ToggleTaskInput struct {
	TaskRef string // Task id or unique id prefix
}

// ToggleTaskOutput contains the toggled task and the new budget.
type ToggleTaskOutput struct {
	Task   domain.Task
	Budget domain.Budget
}

// ToggleTask flips the completion flag of a today task.
type ToggleTask struct {
	ports StatePorts
}

// NewToggleTask creates a new ToggleTask use case.
func NewToggleTask(ports StatePorts) *ToggleTask {
	return &ToggleTask{ports: ports}
}

// Execute toggles the task. The phase is not enforced here; callers only
// offer completion during execution.
func (uc *ToggleTask) Execute(_ context.Context, in ToggleTaskInput) (*ToggleTaskOutput, error) {
	var id string
	state, _, err := uc.ports.mutate(func(s *domain.AppState, _ time.Time) (domain.StatePatch, error) {
		var err error
		if id, err = shared.ResolveTask(s.TodayTasks, in.TaskRef, domain.ErrTaskNotFound); err != nil {
			return domain.StatePatch{}, err
		}
		return domain.ToggleTask(s, id)
	})
	if err != nil {
		return nil, err
	}

	task := state.TodayTasks[indexOf(state.TodayTasks, id)]
	uc.ports.logger().Info("day", fmt.Sprintf("%q completed=%t", task.Title, task.Completed))
	return &ToggleTaskOutput{Task: task, Budget: state.Budget()}, nil
}

func indexOf(tasks []domain.Task, id string) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}
