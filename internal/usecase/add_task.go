package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/runoshun/willflow/internal/domain"
)

// AddTaskInput contains the parameters for adding a task to today.
type AddTaskInput struct {
	Text string // Quick-add text, e.g. "阅读 30"
}

// AddTaskOutput contains the result of adding a task.
type AddTaskOutput struct {
	Task   *domain.Task // nil when the input had no title
	Budget domain.Budget
}

// AddTask is the use case for adding a normal task to today.
type AddTask struct {
	ports StatePorts
	parse domain.QuickAdd
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(ports StatePorts, defaultCost int) *AddTask {
	return &AddTask{ports: ports, parse: domain.HomeQuickAdd(defaultCost)}
}

// Execute parses the text and appends the task. Input without a title is
// ignored and reported with a nil Task.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	state, applied, err := uc.ports.mutate(func(s *domain.AppState, _ time.Time) (domain.StatePatch, error) {
		return domain.AddTask(s, uc.ports.IDs, uc.parse, in.Text), nil
	})
	if err != nil {
		return nil, fmt.Errorf("add task: %w", err)
	}

	out := &AddTaskOutput{Budget: state.Budget()}
	if applied.TodayTasks != nil {
		task := state.TodayTasks[len(state.TodayTasks)-1]
		out.Task = &task
		uc.ports.logger().Info("day", fmt.Sprintf("added %q (%d)", task.Title, task.Cost))
	}
	return out, nil
}
