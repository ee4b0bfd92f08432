package domain

import "time"

// Phase is the stage of the day cycle.
type Phase string

const (
	PhasePlanning  Phase = "PLANNING"  // Free editing, budget may be exceeded
	PhaseExecution Phase = "EXECUTION" // Completion toggling only
)

// Display returns a human-readable representation of the phase.
func (p Phase) Display() string {
	switch p {
	case PhasePlanning:
		return "Planning"
	case PhaseExecution:
		return "Execution"
	default:
		return string(p)
	}
}

// IsValid returns true if the phase is a known value.
func (p Phase) IsValid() bool {
	return p == PhasePlanning || p == PhaseExecution
}

// DateLayout is the calendar-day format used for lastActiveDate and records.
const DateLayout = "2006-01-02"

// FormatDate formats t as a calendar day in t's location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a calendar day in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, loc)
}

// DaysBetween returns the number of calendar days from a to b.
// Both dates are truncated to midnight in their own location first.
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	da := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	db := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}

// Settings holds presentation preferences that travel with the snapshot.
type Settings struct {
	BottomNavOffset bool `json:"bottomNavOffset"`
}

// AppState is the full snapshot of one user's willpower budget.
// Fields are ordered to minimize memory padding.
type AppState struct {
	LastActiveDate  string          `json:"lastActiveDate"`
	DiaryContent    string          `json:"diaryContent"`
	Phase           Phase           `json:"phase"`
	TodayTasks      []Task          `json:"todayTasks"`
	Templates       []Task          `json:"templates"`
	Backlog         []Task          `json:"backlog"`
	ScheduledTasks  []ScheduledTask `json:"scheduledTasks"`
	History         []DayRecord     `json:"history"`
	BaseMax         int             `json:"baseMax"`
	DiaryAdjustment int             `json:"diaryAdjustment"`
	Settings        Settings        `json:"settings"`
}

// DefaultBaseMax is the capacity of a fresh snapshot.
const DefaultBaseMax = 100

// NewDefaultState returns the snapshot used when nothing is stored yet.
// Every call returns freshly allocated slices.
func NewDefaultState(today string) *AppState {
	return &AppState{
		BaseMax:        DefaultBaseMax,
		Settings:       Settings{BottomNavOffset: false},
		LastActiveDate: today,
		TodayTasks:     []Task{},
		Templates: []Task{
			{ID: "t1", Title: "晨间阅读", Cost: 10, Type: TaskTemplate},
			{ID: "t2", Title: "深蹲 50 次", Cost: 15, Type: TaskTemplate},
		},
		Backlog: []Task{
			{ID: "b1", Title: "整理桌面", Cost: 5, Type: TaskBacklog},
		},
		ScheduledTasks: []ScheduledTask{},
		Phase:          PhasePlanning,
		History:        []DayRecord{},
	}
}

// Normalize replaces nil collections with empty ones and an unknown phase
// with planning, so decoded snapshots can be used without nil checks.
func (s *AppState) Normalize() {
	if s.TodayTasks == nil {
		s.TodayTasks = []Task{}
	}
	if s.Templates == nil {
		s.Templates = []Task{}
	}
	if s.Backlog == nil {
		s.Backlog = []Task{}
	}
	if s.ScheduledTasks == nil {
		s.ScheduledTasks = []ScheduledTask{}
	}
	if s.History == nil {
		s.History = []DayRecord{}
	}
	if !s.Phase.IsValid() {
		s.Phase = PhasePlanning
	}
}

// PoolMax returns the effective capacity for today.
func (s *AppState) PoolMax() int {
	return s.BaseMax + s.DiaryAdjustment
}

// Budget returns the budget figures for the current phase and tasks.
func (s *AppState) Budget() Budget {
	return CalculateBudget(s.Phase, s.PoolMax(), s.TodayTasks)
}

// FindPlan returns the scheduled plan with the given id.
func (s *AppState) FindPlan(id string) (ScheduledTask, bool) {
	for _, p := range s.ScheduledTasks {
		if p.ID == id {
			return p, true
		}
	}
	return ScheduledTask{}, false
}

// StatePatch is a partial AppState. Nil fields are left untouched by Apply.
type StatePatch struct {
	BaseMax         *int
	Settings        *Settings
	LastActiveDate  *string
	DiaryContent    *string
	DiaryAdjustment *int
	TodayTasks      *[]Task
	Templates       *[]Task
	Backlog         *[]Task
	ScheduledTasks  *[]ScheduledTask
	Phase           *Phase
	History         *[]DayRecord
}

// IsEmpty returns true if the patch changes nothing.
func (p StatePatch) IsEmpty() bool {
	return p.BaseMax == nil && p.Settings == nil && p.LastActiveDate == nil &&
		p.DiaryContent == nil && p.DiaryAdjustment == nil && p.TodayTasks == nil &&
		p.Templates == nil && p.Backlog == nil && p.ScheduledTasks == nil &&
		p.Phase == nil && p.History == nil
}

// TouchesSchedule returns true if the patch changes the phase or the plan list.
// Auto-injection is re-evaluated only after such patches.
func (p StatePatch) TouchesSchedule() bool {
	return p.Phase != nil || p.ScheduledTasks != nil
}

// Merge returns p with every non-nil field of other laid over it.
func (p StatePatch) Merge(other StatePatch) StatePatch {
	if other.BaseMax != nil {
		p.BaseMax = other.BaseMax
	}
	if other.Settings != nil {
		p.Settings = other.Settings
	}
	if other.LastActiveDate != nil {
		p.LastActiveDate = other.LastActiveDate
	}
	if other.DiaryContent != nil {
		p.DiaryContent = other.DiaryContent
	}
	if other.DiaryAdjustment != nil {
		p.DiaryAdjustment = other.DiaryAdjustment
	}
	if other.TodayTasks != nil {
		p.TodayTasks = other.TodayTasks
	}
	if other.Templates != nil {
		p.Templates = other.Templates
	}
	if other.Backlog != nil {
		p.Backlog = other.Backlog
	}
	if other.ScheduledTasks != nil {
		p.ScheduledTasks = other.ScheduledTasks
	}
	if other.Phase != nil {
		p.Phase = other.Phase
	}
	if other.History != nil {
		p.History = other.History
	}
	return p
}

// Apply writes every non-nil field of the patch into the state.
func (s *AppState) Apply(p StatePatch) {
	if p.BaseMax != nil {
		s.BaseMax = *p.BaseMax
	}
	if p.Settings != nil {
		s.Settings = *p.Settings
	}
	if p.LastActiveDate != nil {
		s.LastActiveDate = *p.LastActiveDate
	}
	if p.DiaryContent != nil {
		s.DiaryContent = *p.DiaryContent
	}
	if p.DiaryAdjustment != nil {
		s.DiaryAdjustment = *p.DiaryAdjustment
	}
	if p.TodayTasks != nil {
		s.TodayTasks = *p.TodayTasks
	}
	if p.Templates != nil {
		s.Templates = *p.Templates
	}
	if p.Backlog != nil {
		s.Backlog = *p.Backlog
	}
	if p.ScheduledTasks != nil {
		s.ScheduledTasks = *p.ScheduledTasks
	}
	if p.Phase != nil {
		s.Phase = *p.Phase
	}
	if p.History != nil {
		s.History = *p.History
	}
}

func ptr[T any](v T) *T {
	return &v
}
