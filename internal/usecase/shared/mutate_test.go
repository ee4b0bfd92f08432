package shared

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/willflow/internal/domain"
	"github.com/runoshun/willflow/internal/testutil"
)

// monday is 2024-03-04.
var monday = time.Date(2024, 3, 4, 9, 0, 0, 0, time.Local)

func TestMutate_AppliesAndSaves(t *testing.T) {
	repo := testutil.NewMockStateRepository(domain.NewDefaultState("2024-03-04"))

	state, applied, err := Mutate(repo, &testutil.SeqIDGenerator{}, monday, func(s *domain.AppState, _ time.Time) (domain.StatePatch, error) {
		return domain.WriteDiary("good sleep 10"), nil
	})

	require.NoError(t, err)
	assert.Equal(t, 10, state.DiaryAdjustment)
	assert.NotNil(t, applied.DiaryContent)
	assert.Equal(t, 1, repo.Saves)
	assert.Equal(t, "good sleep 10", repo.State.DiaryContent)
}

func TestMutate_EmptyPatchDoesNotSave(t *testing.T) {
	repo := testutil.NewMockStateRepository(domain.NewDefaultState("2024-03-04"))

	_, applied, err := Mutate(repo, &testutil.SeqIDGenerator{}, monday, func(*domain.AppState, time.Time) (domain.StatePatch, error) {
		return domain.StatePatch{}, nil
	})

	require.NoError(t, err)
	assert.True(t, applied.IsEmpty())
	assert.Equal(t, 0, repo.Saves)
}

func TestMutate_ErrorDoesNotSave(t *testing.T) {
	repo := testutil.NewMockStateRepository(domain.NewDefaultState("2024-03-04"))
	boom := errors.New("boom")

	_, _, err := Mutate(repo, &testutil.SeqIDGenerator{}, monday, func(*domain.AppState, time.Time) (domain.StatePatch, error) {
		return domain.WriteDiary("x"), boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, repo.Saves)
	assert.Equal(t, "", repo.State.DiaryContent)
}

func TestMutate_InjectsAfterScheduleChange(t *testing.T) {
	repo := testutil.NewMockStateRepository(domain.NewDefaultState("2024-03-04"))
	ids := &testutil.SeqIDGenerator{}

	state, applied, err := Mutate(repo, ids, monday, func(s *domain.AppState, now time.Time) (domain.StatePatch, error) {
		p, _, err := domain.SavePlan(s, ids, domain.PlanDraft{
			Title:  "Gym",
			Cost:   20,
			Config: domain.SpecificDays{Days: []time.Weekday{time.Monday}},
		}, now)
		return p, err
	})

	require.NoError(t, err)
	require.Len(t, state.TodayTasks, 1)
	assert.Equal(t, domain.TaskScheduled, state.TodayTasks[0].Type)
	assert.Equal(t, "id-1", state.TodayTasks[0].SourceID)
	assert.NotNil(t, applied.TodayTasks)
	assert.NotNil(t, applied.ScheduledTasks)
}

func TestMutate_NoInjectionForOtherPatches(t *testing.T) {
	initial := domain.NewDefaultState("2024-03-04")
	initial.ScheduledTasks = []domain.ScheduledTask{
		{ID: "gym", Title: "Gym", Config: domain.SpecificDays{Days: []time.Weekday{time.Monday}}},
	}
	repo := testutil.NewMockStateRepository(initial)

	state, _, err := Mutate(repo, &testutil.SeqIDGenerator{}, monday, func(*domain.AppState, time.Time) (domain.StatePatch, error) {
		return domain.WriteDiary("calm"), nil
	})

	require.NoError(t, err)
	assert.Empty(t, state.TodayTasks)
}
