package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/runoshun/willflow/internal/domain"
	"github.com/runoshun/willflow/internal/usecase/shared"
)

// RemoveTaskInput contains the parameters for removing a today task.
type RemoveTaskInput struct {
	TaskRef string // Task id or unique id prefix
}

// RemoveTaskOutput contains the removed task.
type RemoveTaskOutput struct {
	Task   domain.Task
	Budget domain.Budget
}

// RemoveTask deletes a task from today.
type RemoveTask struct {
	ports StatePorts
}

// NewRemoveTask creates a new RemoveTask use case.
func NewRemoveTask(ports StatePorts) *RemoveTask {
	return &RemoveTask{ports: ports}
}

// Execute removes the task.
func (uc *RemoveTask) Execute(_ context.Context, in RemoveTaskInput) (*RemoveTaskOutput, error) {
	var removed domain.Task
	state, _, err := uc.ports.mutate(func(s *domain.AppState, _ time.Time) (domain.StatePatch, error) {
		id, err := shared.ResolveTask(s.TodayTasks, in.TaskRef, domain.ErrTaskNotFound)
		if err != nil {
			return domain.StatePatch{}, err
		}
		removed = s.TodayTasks[indexOf(s.TodayTasks, id)]
		return domain.RemoveTask(s, id)
	})
	if err != nil {
		return nil, err
	}

	uc.ports.logger().Info("day", fmt.Sprintf("removed %q", removed.Title))
	return &RemoveTaskOutput{Task: removed, Budget: state.Budget()}, nil
}
