package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/willflow/internal/domain"
)

func TestSavePlan_Execute_CreateInjectsWhenDue(t *testing.T) {
	// Setup
	p := newTestPorts(mondayState())
	uc := NewSavePlan(p.StatePorts)

	// Execute
	out, err := uc.Execute(context.Background(), SavePlanInput{
		Title:  "  Gym  ",
		Cost:   20,
		Config: domain.SpecificDays{Days: []time.Weekday{time.Friday, time.Monday, time.Monday}},
	})

	// Assert
	require.NoError(t, err)
	assert.True(t, out.Created)
	assert.Equal(t, "id-1", out.Plan.ID)
	assert.Equal(t, "Gym", out.Plan.Title)
	assert.Equal(t, domain.SpecificDays{Days: []time.Weekday{time.Monday, time.Friday}}, out.Plan.Config)
	require.Len(t, out.Injected, 1)
	assert.Equal(t, "id-2", out.Injected[0].ID)
	assert.Equal(t, "id-1", out.Injected[0].SourceID)
	assert.Equal(t, 1, p.repo.Saves)
}

func TestSavePlan_Execute_NotDueIsNotInjected(t *testing.T) {
	p := newTestPorts(mondayState())
	uc := NewSavePlan(p.StatePorts)

	out, err := uc.Execute(context.Background(), SavePlanInput{
		Title:  "Yoga",
		Cost:   10,
		Config: domain.WeeklyFrequency{Target: 3},
	})

	require.NoError(t, err)
	assert.Empty(t, out.Injected)
	assert.Empty(t, p.repo.State.TodayTasks)
}

func TestSavePlan_Execute_EditKeepsCreated(t *testing.T) {
	// Setup
	created := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	state := mondayState()
	plan := gymPlan(time.Tuesday)
	plan.Created = created
	state.ScheduledTasks = []domain.ScheduledTask{plan}
	p := newTestPorts(state)
	uc := NewSavePlan(p.StatePorts)

	// Execute
	out, err := uc.Execute(context.Background(), SavePlanInput{
		PlanRef: "plan-g",
		Title:   "Gym (heavy)",
		Cost:    30,
		Config:  domain.SpecificDays{Days: []time.Weekday{time.Tuesday}},
	})

	// Assert
	require.NoError(t, err)
	assert.False(t, out.Created)
	assert.Equal(t, "plan-gym", out.Plan.ID)
	assert.True(t, created.Equal(out.Plan.Created))
	require.Len(t, p.repo.State.ScheduledTasks, 1)
	assert.Equal(t, "Gym (heavy)", p.repo.State.ScheduledTasks[0].Title)
	assert.Equal(t, 30, p.repo.State.ScheduledTasks[0].Cost)
}

func TestSavePlan_Execute_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		input   SavePlanInput
		wantErr error
	}{
		{name: "empty title", input: SavePlanInput{Title: " ", Config: domain.WeeklyFrequency{Target: 1}}, wantErr: domain.ErrEmptyTitle},
		{name: "negative cost", input: SavePlanInput{Title: "x", Cost: -1, Config: domain.WeeklyFrequency{Target: 1}}, wantErr: domain.ErrInvalidCost},
		{name: "zero target", input: SavePlanInput{Title: "x", Config: domain.MonthlyFrequency{Target: 0}}, wantErr: domain.ErrInvalidSchedule},
		{name: "missing config", input: SavePlanInput{Title: "x"}, wantErr: domain.ErrInvalidSchedule},
		{name: "unknown plan", input: SavePlanInput{PlanRef: "nope", Title: "x", Config: domain.WeeklyFrequency{Target: 1}}, wantErr: domain.ErrPlanNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPorts(mondayState())
			_, err := NewSavePlan(p.StatePorts).Execute(context.Background(), tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 0, p.repo.Saves)
		})
	}
}

func TestDeletePlan_Execute_KeepsInstances(t *testing.T) {
	state := mondayState()
	plan := gymPlan(time.Monday)
	state.ScheduledTasks = []domain.ScheduledTask{plan}
	state.TodayTasks = []domain.Task{plan.Instance("inst-1")}
	p := newTestPorts(state)
	uc := NewDeletePlan(p.StatePorts)

	out, err := uc.Execute(context.Background(), DeletePlanInput{PlanRef: "plan-gym"})

	require.NoError(t, err)
	assert.Equal(t, "Gym", out.Plan.Title)
	assert.Empty(t, p.repo.State.ScheduledTasks)
	assert.Len(t, p.repo.State.TodayTasks, 1)

	_, err = uc.Execute(context.Background(), DeletePlanInput{PlanRef: "plan-gym"})
	assert.ErrorIs(t, err, domain.ErrPlanNotFound)
}

func TestAddPlanInstance_Execute(t *testing.T) {
	// Setup
	state := mondayState()
	state.ScheduledTasks = []domain.ScheduledTask{
		{ID: "plan-yoga", Title: "Yoga", Cost: 10, Config: domain.WeeklyFrequency{Target: 1}},
	}
	state.History = []domain.DayRecord{
		{Date: "2024-03-01", CompletedTaskTitles: []string{"Yoga"}},
	}
	p := newTestPorts(state)
	uc := NewAddPlanInstance(p.StatePorts)

	// Execute: the target is already met, adding is still allowed
	out, err := uc.Execute(context.Background(), AddPlanInstanceInput{PlanRef: "plan-yoga"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Yoga", out.Task.Title)
	assert.Equal(t, domain.TaskScheduled, out.Task.Type)
	assert.Equal(t, "plan-yoga", out.Task.SourceID)
	require.NotNil(t, out.Progress)
	assert.Equal(t, 1, out.Progress.Count)
	assert.True(t, out.Progress.Satisfied)
}

func TestAddPlanInstance_Execute_FixedDayHasNoProgress(t *testing.T) {
	state := mondayState()
	state.ScheduledTasks = []domain.ScheduledTask{gymPlan(time.Sunday)}
	p := newTestPorts(state)

	out, err := NewAddPlanInstance(p.StatePorts).Execute(context.Background(), AddPlanInstanceInput{PlanRef: "plan-gym"})

	require.NoError(t, err)
	assert.Nil(t, out.Progress)
	assert.Equal(t, "Gym", out.Task.Title)
}
