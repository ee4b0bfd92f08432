package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/willflow/internal/domain"
)

func TestParseWeekdays(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []time.Weekday
		wantErr bool
	}{
		{name: "short names", input: "mon,wed,fri", want: []time.Weekday{time.Monday, time.Wednesday, time.Friday}},
		{name: "full names and spaces", input: "Sunday, saturday", want: []time.Weekday{time.Sunday, time.Saturday}},
		{name: "indexes", input: "0,6", want: []time.Weekday{time.Sunday, time.Saturday}},
		{name: "unknown name", input: "mon,funday", wantErr: true},
		{name: "index out of range", input: "7", wantErr: true},
		{name: "empty", input: " , ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseWeekdays(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidSchedule)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlanAddCommand(t *testing.T) {
	t.Run("fixed days due today are injected", func(t *testing.T) {
		c, repo := newTestContainer(t, mondayState())

		out, _, err := run(newPlanCommand(c), "add", "Gym", "--cost", "20", "--days", "wed,mon")

		require.NoError(t, err)
		assert.Contains(t, out, `Created plan id-1 "Gym" (20, every Mon,Wed)`)
		assert.Contains(t, out, "Added from plan: Gym")
		require.Len(t, repo.State.ScheduledTasks, 1)
		assert.Equal(t, domain.SpecificDays{Days: []time.Weekday{time.Monday, time.Wednesday}}, repo.State.ScheduledTasks[0].Config)
		require.Len(t, repo.State.TodayTasks, 1)
		assert.Equal(t, "id-1", repo.State.TodayTasks[0].SourceID)
	})

	t.Run("weekly frequency", func(t *testing.T) {
		c, repo := newTestContainer(t, mondayState())

		_, _, err := run(newPlanCommand(c), "add", "--title", "Yoga", "--weekly", "3", "--note", "mat")

		require.NoError(t, err)
		require.Len(t, repo.State.ScheduledTasks, 1)
		plan := repo.State.ScheduledTasks[0]
		assert.Equal(t, domain.WeeklyFrequency{Target: 3}, plan.Config)
		assert.Equal(t, domain.LibraryDefaultCost, plan.Cost)
		assert.Equal(t, "mat", plan.Note)
		assert.Empty(t, repo.State.TodayTasks)
	})

	t.Run("schedule required", func(t *testing.T) {
		c, repo := newTestContainer(t, mondayState())

		_, _, err := run(newPlanCommand(c), "add", "Gym")

		assert.ErrorContains(t, err, "--days, --weekly or --monthly")
		assert.Empty(t, repo.State.ScheduledTasks)
	})

	t.Run("schedule flags are exclusive", func(t *testing.T) {
		c, _ := newTestContainer(t, mondayState())

		_, _, err := run(newPlanCommand(c), "add", "Gym", "--days", "mon", "--weekly", "2")

		assert.Error(t, err)
	})

	t.Run("invalid target", func(t *testing.T) {
		c, _ := newTestContainer(t, mondayState())

		_, _, err := run(newPlanCommand(c), "add", "Gym", "--monthly", "0")

		assert.ErrorIs(t, err, domain.ErrInvalidSchedule)
	})
}

func TestPlanEditCommand(t *testing.T) {
	t.Run("keeps values not given", func(t *testing.T) {
		c, repo := newTestContainer(t, libraryState())

		out, _, err := run(newPlanCommand(c), "edit", "plan-y", "--cost", "25")

		require.NoError(t, err)
		assert.Contains(t, out, `Updated plan plan-yog "Yoga" (25, 3x per week)`)
		plan := repo.State.ScheduledTasks[1]
		assert.Equal(t, "Yoga", plan.Title)
		assert.Equal(t, 25, plan.Cost)
		assert.Equal(t, domain.WeeklyFrequency{Target: 3}, plan.Config)
	})

	t.Run("switch to fixed days", func(t *testing.T) {
		c, repo := newTestContainer(t, libraryState())

		out, _, err := run(newPlanCommand(c), "edit", "plan-gym", "--days", "mon")

		require.NoError(t, err)
		assert.Contains(t, out, "Added from plan: Gym")
		assert.Len(t, repo.State.TodayTasks, 1)
	})

	t.Run("ambiguous", func(t *testing.T) {
		c, _ := newTestContainer(t, libraryState())

		_, _, err := run(newPlanCommand(c), "edit", "plan-", "--cost", "1")

		assert.ErrorIs(t, err, domain.ErrAmbiguousID)
	})
}

func TestPlanRmListUseCommands(t *testing.T) {
	c, repo := newTestContainer(t, libraryState())

	out, _, err := run(newPlanCommand(c), "use", "plan-yoga")
	require.NoError(t, err)
	assert.Contains(t, out, `"Yoga" (15) to today`)
	assert.Contains(t, out, "Progress: 0/3 this week")

	out, _, err = run(newPlanCommand(c), "list")
	require.NoError(t, err)
	assert.Contains(t, out, "PROGRESS")
	assert.Contains(t, out, "every Tue")

	out, _, err = run(newPlanCommand(c), "rm", "plan-yoga")
	require.NoError(t, err)
	assert.Contains(t, out, `Deleted plan "Yoga"`)
	require.Len(t, repo.State.ScheduledTasks, 1)
	assert.Len(t, repo.State.TodayTasks, 1, "instances already in today are kept")

	_, _, err = run(newPlanCommand(c), "rm", "plan-yoga")
	assert.ErrorIs(t, err, domain.ErrPlanNotFound)
}
