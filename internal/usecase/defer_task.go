package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/runoshun/willflow/internal/domain"
	"github.com/runoshun/willflow/internal/usecase/shared"
)

// DeferTaskInput contains the parameters for deferring a scheduled instance.
type DeferTaskInput struct {
	TaskRef string // Task id or unique id prefix
}

// DeferTaskOutput contains the backlog item created by the deferral.
type DeferTaskOutput struct {
	Item domain.Task
}

// DeferTask moves a scheduled instance from today to the backlog.
type DeferTask struct {
	ports StatePorts
}

// NewDeferTask creates a new DeferTask use case.
func NewDeferTask(ports StatePorts) *DeferTask {
	return &DeferTask{ports: ports}
}

// Execute defers the task. Only scheduled instances can be deferred, and
// only while planning.
func (uc *DeferTask) Execute(_ context.Context, in DeferTaskInput) (*DeferTaskOutput, error) {
	state, _, err := uc.ports.mutate(func(s *domain.AppState, now time.Time) (domain.StatePatch, error) {
		id, err := shared.ResolveTask(s.TodayTasks, in.TaskRef, domain.ErrTaskNotFound)
		if err != nil {
			return domain.StatePatch{}, err
		}
		return domain.DeferTask(s, uc.ports.IDs, id, now)
	})
	if err != nil {
		return nil, err
	}

	item := state.Backlog[len(state.Backlog)-1]
	uc.ports.logger().Info("day", fmt.Sprintf("deferred to backlog as %q", item.Title))
	return &DeferTaskOutput{Item: item}, nil
}
