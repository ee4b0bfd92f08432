// Package domain contains the willpower budget entities and the pure
// operations that evolve them.
package domain

// TaskType determines how a task behaves across the day cycle.
type TaskType string

const (
	TaskNormal    TaskType = "normal"    // Added for today only
	TaskTemplate  TaskType = "template"  // Reusable library entry
	TaskBacklog   TaskType = "backlog"   // Deferred or left over, waiting for promotion
	TaskFiller    TaskType = "filler"    // Soaks up the remaining budget
	TaskScheduled TaskType = "scheduled" // Instance of a ScheduledTask
)

// IsValid returns true if the type is a known value.
func (t TaskType) IsValid() bool {
	switch t {
	case TaskNormal, TaskTemplate, TaskBacklog, TaskFiller, TaskScheduled:
		return true
	default:
		return false
	}
}

// Display returns a human-readable representation of the type.
func (t TaskType) Display() string {
	switch t {
	case TaskNormal:
		return "Normal"
	case TaskTemplate:
		return "Template"
	case TaskBacklog:
		return "Backlog"
	case TaskFiller:
		return "Filler"
	case TaskScheduled:
		return "Scheduled"
	default:
		return string(t)
	}
}

// Capabilities are the type-dependent behaviors of a task.
type Capabilities struct {
	Deferrable           bool // Can be swiped to the backlog while planning
	CountsTowardTitles   bool // Recorded in DayRecord.CompletedTaskTitles
	CarriesOver          bool // Moved to the backlog when left incomplete at close
	RemovableInExecution bool // Can be trashed after planning ends
}

var capabilities = map[TaskType]Capabilities{
	TaskNormal:    {CountsTowardTitles: true, CarriesOver: true, RemovableInExecution: true},
	TaskTemplate:  {CountsTowardTitles: true, CarriesOver: true, RemovableInExecution: true},
	TaskBacklog:   {CountsTowardTitles: true, CarriesOver: true, RemovableInExecution: true},
	TaskFiller:    {RemovableInExecution: true},
	TaskScheduled: {Deferrable: true, CountsTowardTitles: true},
}

// Capabilities returns the behaviors derived from the task type.
// Unknown types behave like normal tasks.
func (t TaskType) Capabilities() Capabilities {
	if c, ok := capabilities[t]; ok {
		return c
	}
	return capabilities[TaskNormal]
}

// Task is a unit of work that costs willpower points.
// Fields are ordered to minimize memory padding.
type Task struct {
	ID        string   `json:"id"`                 // Unique, immutable after creation
	Title     string   `json:"title"`              // Free text
	Type      TaskType `json:"type"`               // Lifecycle rules
	Note      string   `json:"note,omitempty"`     // Optional free text
	SourceID  string   `json:"sourceId,omitempty"` // ScheduledTask this instance came from
	Cost      int      `json:"cost"`               // WP consumed
	Completed bool     `json:"completed"`          // Meaningful during execution
}

// Capabilities returns the behaviors derived from the task type.
func (t Task) Capabilities() Capabilities {
	return t.Type.Capabilities()
}

// FromPlan returns true if the task is an instance of the given plan.
func (t Task) FromPlan(planID string) bool {
	return t.SourceID != "" && t.SourceID == planID
}

// IDGenerator produces fresh task and plan identifiers.
type IDGenerator interface {
	NewID() string
}

// findTask returns the index of the task with the given id, or -1.
func findTask(tasks []Task, id string) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// without returns a copy of tasks with index i removed.
func without(tasks []Task, i int) []Task {
	out := make([]Task, 0, len(tasks)-1)
	out = append(out, tasks[:i]...)
	return append(out, tasks[i+1:]...)
}

// appended returns a copy of tasks with extra appended.
func appended(tasks []Task, extra ...Task) []Task {
	out := make([]Task, 0, len(tasks)+len(extra))
	out = append(out, tasks...)
	return append(out, extra...)
}
