package jsonstore

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/runoshun/willflow/internal/domain"
	"github.com/runoshun/willflow/internal/testutil"
)

var testNow = time.Date(2024, 3, 4, 9, 0, 0, 0, time.Local)

func newTestStore(t *testing.T) (*Store, *testutil.RecordingLogger) {
	t.Helper()
	logger := &testutil.RecordingLogger{}
	path := filepath.Join(t.TempDir(), "state.json")
	return New(path, &testutil.MockClock{NowTime: testNow}, logger), logger
}

func TestStore_LoadMissingReturnsDefaults(t *testing.T) {
	store, _ := newTestStore(t)

	res, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if res.Recovered != nil {
		t.Errorf("Recovered = %v, want nil for a missing file", res.Recovered)
	}
	if res.State.BaseMax != domain.DefaultBaseMax {
		t.Errorf("BaseMax = %d, want %d", res.State.BaseMax, domain.DefaultBaseMax)
	}
	if res.State.LastActiveDate != "2024-03-04" {
		t.Errorf("LastActiveDate = %q, want 2024-03-04", res.State.LastActiveDate)
	}
	if _, err := os.Stat(store.Path()); !os.IsNotExist(err) {
		t.Errorf("Load() must not create the state file, stat err = %v", err)
	}
}

func TestStore_SaveAndLoad(t *testing.T) {
	store, _ := newTestStore(t)

	state := domain.NewDefaultState("2024-03-03")
	state.BaseMax = 70
	state.DiaryContent = "ok 5"
	state.DiaryAdjustment = 5
	state.Phase = domain.PhaseExecution
	state.TodayTasks = []domain.Task{{ID: "a", Title: "Read", Cost: 10, Type: domain.TaskNormal, Completed: true}}
	state.ScheduledTasks = []domain.ScheduledTask{
		{ID: "p", Title: "Gym", Cost: 20, Config: domain.SpecificDays{Days: []time.Weekday{time.Monday}}},
	}
	state.History = []domain.DayRecord{{Date: "2024-03-02", CompletedTaskTitles: []string{"Read"}, BaseMax: 80, FinalBalance: 10}}

	if err := store.Save(state); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	res, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	got := res.State
	if got.BaseMax != 70 || got.Phase != domain.PhaseExecution || got.DiaryAdjustment != 5 {
		t.Errorf("scalar fields = %d %s %d, want 70 EXECUTION 5", got.BaseMax, got.Phase, got.DiaryAdjustment)
	}
	if got.LastActiveDate != "2024-03-03" {
		t.Errorf("LastActiveDate = %q, want stored value", got.LastActiveDate)
	}
	if len(got.TodayTasks) != 1 || !got.TodayTasks[0].Completed {
		t.Errorf("TodayTasks = %+v", got.TodayTasks)
	}
	if len(got.ScheduledTasks) != 1 || got.ScheduledTasks[0].Mode() != domain.ModeSpecificDays {
		t.Errorf("ScheduledTasks = %+v", got.ScheduledTasks)
	}
	if len(got.History) != 1 || got.History[0].FinalBalance != 10 {
		t.Errorf("History = %+v", got.History)
	}

	if _, err := os.Stat(store.Path() + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file left behind")
	}
}

func TestStore_LoadPartialDocumentMergesDefaults(t *testing.T) {
	store, _ := newTestStore(t)
	doc := `{"baseMax": 60, "history": [], "templates": [{"id":"x","title":"Walk","cost":5,"type":"template"}], "phase": "WEIRD"}`
	if err := os.WriteFile(store.Path(), []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	res, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	got := res.State
	if got.BaseMax != 60 {
		t.Errorf("BaseMax = %d, want 60", got.BaseMax)
	}
	if got.Settings.BottomNavOffset {
		t.Errorf("Settings.BottomNavOffset = true, want default false")
	}
	if len(got.Templates) != 1 || got.Templates[0].Title != "Walk" {
		t.Errorf("Templates = %+v, want stored list", got.Templates)
	}
	if len(got.Backlog) != 1 || got.Backlog[0].ID != "b1" {
		t.Errorf("Backlog = %+v, want default seed", got.Backlog)
	}
	if got.Phase != domain.PhasePlanning {
		t.Errorf("Phase = %q, want PLANNING", got.Phase)
	}
	if got.TodayTasks == nil || got.ScheduledTasks == nil {
		t.Errorf("collections must not be nil")
	}
}

func TestStore_LoadCorruptRecovers(t *testing.T) {
	store, logger := newTestStore(t)
	if err := os.WriteFile(store.Path(), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	res, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if res.Recovered == nil {
		t.Errorf("Recovered = nil, want parse error")
	}
	if res.State.BaseMax != domain.DefaultBaseMax || len(res.State.Templates) != 2 {
		t.Errorf("State = %+v, want defaults", res.State)
	}
	if !logger.Contains("WARN", "unreadable") {
		t.Errorf("expected a warning, got %v", logger.Entries())
	}
}

func TestStore_Update(t *testing.T) {
	store, _ := newTestStore(t)

	got, err := store.Update(func(s *domain.AppState) (bool, error) {
		s.BaseMax = 90
		return true, nil
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if got.BaseMax != 90 {
		t.Errorf("BaseMax = %d, want 90", got.BaseMax)
	}

	res, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if res.State.BaseMax != 90 {
		t.Errorf("persisted BaseMax = %d, want 90", res.State.BaseMax)
	}
}

func TestStore_UpdateUnchangedDoesNotWrite(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Update(func(s *domain.AppState) (bool, error) {
		s.BaseMax = 1
		return false, nil
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if _, err := os.Stat(store.Path()); !os.IsNotExist(err) {
		t.Errorf("state file written for an unchanged update")
	}
}

func TestStore_UpdateErrorDoesNotWrite(t *testing.T) {
	store, _ := newTestStore(t)
	if err := store.Save(domain.NewDefaultState("2024-03-04")); err != nil {
		t.Fatal(err)
	}
	wantErr := errors.New("boom")

	_, err := store.Update(func(s *domain.AppState) (bool, error) {
		s.BaseMax = 1
		return true, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("Update() error = %v, want %v", err, wantErr)
	}

	res, _ := store.Load()
	if res.State.BaseMax != domain.DefaultBaseMax {
		t.Errorf("BaseMax = %d, want unchanged", res.State.BaseMax)
	}
}

func TestStore_UpdateQuarantinesCorruptFile(t *testing.T) {
	store, _ := newTestStore(t)
	if err := os.WriteFile(store.Path(), []byte("[1,2"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := store.Update(func(s *domain.AppState) (bool, error) {
		s.DiaryContent = "fresh start"
		return true, nil
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	bad, err := os.ReadFile(store.Path() + ".bad")
	if err != nil {
		t.Fatalf("quarantined file missing: %v", err)
	}
	if string(bad) != "[1,2" {
		t.Errorf("quarantined content = %q", bad)
	}
	content, _ := os.ReadFile(store.Path())
	if !strings.Contains(string(content), "fresh start") {
		t.Errorf("new state not written: %s", content)
	}
}

func TestDecode_NullDocument(t *testing.T) {
	state, err := Decode([]byte("null"), "2024-03-04")
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if state.BaseMax != domain.DefaultBaseMax {
		t.Errorf("BaseMax = %d, want default", state.BaseMax)
	}
}

func TestDecode_NullListsStayEmpty(t *testing.T) {
	state, err := Decode([]byte(`{"baseMax": 80, "templates": null, "backlog": null}`), "2024-03-04")
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if state.Templates == nil || len(state.Templates) != 0 {
		t.Errorf("Templates = %+v, want empty list", state.Templates)
	}
	if state.Backlog == nil || len(state.Backlog) != 0 {
		t.Errorf("Backlog = %+v, want empty list", state.Backlog)
	}
	if state.BaseMax != 80 {
		t.Errorf("BaseMax = %d, want 80", state.BaseMax)
	}
}

func TestDecode_AbsentListsKeepSeeds(t *testing.T) {
	state, err := Decode([]byte(`{"baseMax": 80, "backlog": null}`), "2024-03-04")
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(state.Templates) != len(domain.NewDefaultState("2024-03-04").Templates) {
		t.Errorf("Templates = %+v, want default seed", state.Templates)
	}
	if len(state.Backlog) != 0 {
		t.Errorf("Backlog = %+v, want empty list", state.Backlog)
	}
}
