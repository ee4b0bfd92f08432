package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/runoshun/willflow/internal/domain"
	"github.com/runoshun/willflow/internal/usecase/shared"
)

// SavePlanInput contains a plan to create or update.
type SavePlanInput struct {
	Config  domain.ScheduleConfig
	PlanRef string // Empty creates a new plan; otherwise id or unique id prefix
	Title   string
	Note    string
	Cost    int
}

// SavePlanOutput contains the saved plan and any instance injected because of it.
type SavePlanOutput struct {
	Injected []domain.Task
	Plan     domain.ScheduledTask
	Created  bool
}

// SavePlan creates or edits a scheduled plan.
type SavePlan struct {
	ports StatePorts
}

// NewSavePlan creates a new SavePlan use case.
func NewSavePlan(ports StatePorts) *SavePlan {
	return &SavePlan{ports: ports}
}

// Execute validates and saves the plan. A fixed-day plan due today is
// injected right away while planning.
func (uc *SavePlan) Execute(_ context.Context, in SavePlanInput) (*SavePlanOutput, error) {
	var plan domain.ScheduledTask
	var before []domain.Task
	state, _, err := uc.ports.mutate(func(s *domain.AppState, now time.Time) (domain.StatePatch, error) {
		draft := domain.PlanDraft{
			Config: in.Config,
			Title:  in.Title,
			Note:   in.Note,
			Cost:   in.Cost,
		}
		if in.PlanRef != "" {
			id, err := shared.ResolvePlan(s.ScheduledTasks, in.PlanRef)
			if err != nil {
				return domain.StatePatch{}, err
			}
			draft.ID = id
		}
		before = s.TodayTasks
		p, saved, err := domain.SavePlan(s, uc.ports.IDs, draft, now)
		plan = saved
		return p, err
	})
	if err != nil {
		return nil, err
	}

	created := in.PlanRef == ""
	verb := "updated"
	if created {
		verb = "created"
	}
	uc.ports.logger().Info("library", fmt.Sprintf("%s plan %q (%s)", verb, plan.Title, plan.Mode()))
	return &SavePlanOutput{
		Plan:     plan,
		Created:  created,
		Injected: newTasks(before, state.TodayTasks),
	}, nil
}

// DeletePlanInput contains the plan to delete.
type DeletePlanInput struct {
	PlanRef string // Plan id or unique id prefix
}

// DeletePlanOutput contains the deleted plan.
type DeletePlanOutput struct {
	Plan domain.ScheduledTask
}

// DeletePlan removes a scheduled plan. Instances already in today are kept.
type DeletePlan struct {
	ports StatePorts
}

// NewDeletePlan creates a new DeletePlan use case.
func NewDeletePlan(ports StatePorts) *DeletePlan {
	return &DeletePlan{ports: ports}
}

// Execute deletes the plan.
func (uc *DeletePlan) Execute(_ context.Context, in DeletePlanInput) (*DeletePlanOutput, error) {
	var plan domain.ScheduledTask
	_, _, err := uc.ports.mutate(func(s *domain.AppState, _ time.Time) (domain.StatePatch, error) {
		id, err := shared.ResolvePlan(s.ScheduledTasks, in.PlanRef)
		if err != nil {
			return domain.StatePatch{}, err
		}
		plan, _ = s.FindPlan(id)
		return domain.DeletePlan(s, id)
	})
	if err != nil {
		return nil, err
	}

	uc.ports.logger().Info("library", fmt.Sprintf("deleted plan %q", plan.Title))
	return &DeletePlanOutput{Plan: plan}, nil
}

// AddPlanInstanceInput contains the plan to materialize.
type AddPlanInstanceInput struct {
	PlanRef string // Plan id or unique id prefix
}

// AddPlanInstanceOutput contains the added instance and the plan's progress.
type AddPlanInstanceOutput struct {
	Progress *domain.PlanProgress // nil for fixed-day plans
	Task     domain.Task
}

// AddPlanInstance adds one instance of a plan to today by hand.
type AddPlanInstance struct {
	ports StatePorts
}

// NewAddPlanInstance creates a new AddPlanInstance use case.
func NewAddPlanInstance(ports StatePorts) *AddPlanInstance {
	return &AddPlanInstance{ports: ports}
}

// Execute adds the instance. A satisfied frequency target does not block it.
func (uc *AddPlanInstance) Execute(_ context.Context, in AddPlanInstanceInput) (*AddPlanInstanceOutput, error) {
	state, _, err := uc.ports.mutate(func(s *domain.AppState, _ time.Time) (domain.StatePatch, error) {
		id, err := shared.ResolvePlan(s.ScheduledTasks, in.PlanRef)
		if err != nil {
			return domain.StatePatch{}, err
		}
		return domain.AddScheduledInstance(s, uc.ports.IDs, id)
	})
	if err != nil {
		return nil, err
	}

	task := state.TodayTasks[len(state.TodayTasks)-1]
	out := &AddPlanInstanceOutput{Task: task}
	for _, p := range domain.FrequencyProgress(state, uc.ports.Clock.Now()) {
		if p.Plan.ID == task.SourceID {
			out.Progress = &p
			break
		}
	}
	uc.ports.logger().Info("schedule", fmt.Sprintf("added instance of %q", task.Title))
	return out, nil
}

// ShowLibraryInput contains the input for the ShowLibrary use case.
type ShowLibraryInput struct{}

// ShowLibraryOutput contains every library list.
type ShowLibraryOutput struct {
	Templates []domain.Task
	Backlog   []domain.Task
	Plans     []domain.ScheduledTask
	Progress  []domain.PlanProgress
}

// ShowLibrary lists templates, backlog and plans.
type ShowLibrary struct {
	repo  domain.StateRepository
	clock domain.Clock
}

// NewShowLibrary creates a new ShowLibrary use case.
func NewShowLibrary(repo domain.StateRepository, clock domain.Clock) *ShowLibrary {
	return &ShowLibrary{repo: repo, clock: clock}
}

// Execute reads the library.
func (uc *ShowLibrary) Execute(_ context.Context, _ ShowLibraryInput) (*ShowLibraryOutput, error) {
	res, err := uc.repo.Load()
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	s := res.State
	return &ShowLibraryOutput{
		Templates: s.Templates,
		Backlog:   s.Backlog,
		Plans:     s.ScheduledTasks,
		Progress:  domain.FrequencyProgress(s, uc.clock.Now()),
	}, nil
}
