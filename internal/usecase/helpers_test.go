package usecase

import (
	"time"

	"github.com/runoshun/willflow/internal/domain"
	"github.com/runoshun/willflow/internal/testutil"
)

var monday = time.Date(2024, 3, 4, 8, 30, 0, 0, time.Local)

type testPorts struct {
	StatePorts
	repo   *testutil.MockStateRepository
	logger *testutil.RecordingLogger
	clock  *testutil.MockClock
}

func newTestPorts(state *domain.AppState) testPorts {
	repo := testutil.NewMockStateRepository(state)
	logger := &testutil.RecordingLogger{}
	clock := &testutil.MockClock{NowTime: monday}
	return testPorts{
		StatePorts: StatePorts{
			Repo:   repo,
			IDs:    &testutil.SeqIDGenerator{},
			Clock:  clock,
			Logger: logger,
		},
		repo:   repo,
		logger: logger,
		clock:  clock,
	}
}

func mondayState() *domain.AppState {
	return domain.NewDefaultState(domain.FormatDate(monday))
}

func gymPlan(days ...time.Weekday) domain.ScheduledTask {
	return domain.ScheduledTask{
		ID:     "plan-gym",
		Title:  "Gym",
		Cost:   20,
		Config: domain.SpecificDays{Days: days},
	}
}
