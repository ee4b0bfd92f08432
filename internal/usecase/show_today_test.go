package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/willflow/internal/domain"
	"github.com/runoshun/willflow/internal/testutil"
)

func newShowToday(p testPorts) *ShowToday {
	return NewShowToday(p.Repo, p.IDs, p.Clock, p.Logger)
}

func TestShowToday_Execute_InjectsDuePlans(t *testing.T) {
	// Setup
	state := mondayState()
	state.ScheduledTasks = []domain.ScheduledTask{
		gymPlan(time.Monday, time.Thursday),
		{ID: "plan-swim", Title: "Swim", Cost: 15, Config: domain.SpecificDays{Days: []time.Weekday{time.Tuesday}}},
		{ID: "plan-yoga", Title: "Yoga", Cost: 10, Config: domain.WeeklyFrequency{Target: 3}},
	}
	p := newTestPorts(state)
	uc := newShowToday(p)

	// Execute
	out, err := uc.Execute(context.Background(), ShowTodayInput{})

	// Assert
	require.NoError(t, err)
	require.Len(t, out.Injected, 1)
	assert.Equal(t, "Gym", out.Injected[0].Title)
	assert.Equal(t, "plan-gym", out.Injected[0].SourceID)
	assert.Equal(t, domain.TaskScheduled, out.Injected[0].Type)
	assert.Equal(t, 80, out.Budget.Remaining)
	assert.Equal(t, "2024-03-04", out.Today)
	assert.False(t, out.Stale)
	require.Len(t, out.Progress, 1)
	assert.Equal(t, "Yoga", out.Progress[0].Plan.Title)
	assert.Equal(t, 1, p.repo.Saves)
	assert.True(t, p.logger.Contains("INFO", `injected "Gym"`))

	// A second view finds the instance and writes nothing.
	out, err = uc.Execute(context.Background(), ShowTodayInput{})
	require.NoError(t, err)
	assert.Empty(t, out.Injected)
	assert.Len(t, out.State.TodayTasks, 1)
	assert.Equal(t, 1, p.repo.Saves)
}

func TestShowToday_Execute_NoInjectionDuringExecution(t *testing.T) {
	state := mondayState()
	state.Phase = domain.PhaseExecution
	state.ScheduledTasks = []domain.ScheduledTask{gymPlan(time.Monday)}
	p := newTestPorts(state)

	out, err := newShowToday(p).Execute(context.Background(), ShowTodayInput{})

	require.NoError(t, err)
	assert.Empty(t, out.Injected)
	assert.Equal(t, 0, p.repo.Saves)
}

func TestShowToday_Execute_Stale(t *testing.T) {
	state := domain.NewDefaultState("2024-03-01")
	p := newTestPorts(state)

	out, err := newShowToday(p).Execute(context.Background(), ShowTodayInput{})

	require.NoError(t, err)
	assert.True(t, out.Stale)
	assert.Equal(t, "2024-03-01", out.State.LastActiveDate)
}

func TestShowToday_Execute_ReportsRecovery(t *testing.T) {
	p := newTestPorts(mondayState())
	p.repo.Recovered = errors.New("bad json")

	out, err := newShowToday(p).Execute(context.Background(), ShowTodayInput{})

	require.NoError(t, err)
	assert.EqualError(t, out.Recovered, "bad json")
}

func TestShowToday_Execute_LoadError(t *testing.T) {
	repo := testutil.NewMockStateRepository(mondayState())
	repo.LoadErr = errors.New("disk gone")
	uc := NewShowToday(repo, &testutil.SeqIDGenerator{}, &testutil.MockClock{NowTime: monday}, domain.NopLogger{})

	_, err := uc.Execute(context.Background(), ShowTodayInput{})

	assert.ErrorContains(t, err, "disk gone")
}
