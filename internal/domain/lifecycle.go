package domain

import "time"

// FillerTitle is the title of the task created by FillRemaining.
const FillerTitle = "自由探索 / 休息"

// AddTask appends a normal task parsed from quick-add input.
// Input whose title is empty after parsing produces an empty patch.
func AddTask(s *AppState, ids IDGenerator, q QuickAdd, input string) StatePatch {
	title, cost := q.Parse(input)
	if title == "" {
		return StatePatch{}
	}
	task := Task{
		ID:    ids.NewID(),
		Title: title,
		Cost:  cost,
		Type:  TaskNormal,
	}
	return StatePatch{TodayTasks: ptr(appended(s.TodayTasks, task))}
}

// ToggleTask flips the completion flag of a today task.
// The phase is not checked; only execution shows the toggle by convention.
func ToggleTask(s *AppState, id string) (StatePatch, error) {
	i := findTask(s.TodayTasks, id)
	if i < 0 {
		return StatePatch{}, ErrTaskNotFound
	}
	tasks := appended(s.TodayTasks)
	tasks[i].Completed = !tasks[i].Completed
	return StatePatch{TodayTasks: &tasks}, nil
}

// RemoveTask deletes a task from today.
func RemoveTask(s *AppState, id string) (StatePatch, error) {
	i := findTask(s.TodayTasks, id)
	if i < 0 {
		return StatePatch{}, ErrTaskNotFound
	}
	return StatePatch{TodayTasks: ptr(without(s.TodayTasks, i))}, nil
}

// DeferTask moves a scheduled instance to the backlog while planning.
// The backlog copy gets a fresh id and a title stamped with today's date,
// e.g. "(推迟) Gym - 11-28".
func DeferTask(s *AppState, ids IDGenerator, id string, today time.Time) (StatePatch, error) {
	i := findTask(s.TodayTasks, id)
	if i < 0 {
		return StatePatch{}, ErrTaskNotFound
	}
	task := s.TodayTasks[i]
	if s.Phase != PhasePlanning || !task.Capabilities().Deferrable {
		return StatePatch{}, ErrNotDeferrable
	}
	item := task
	item.ID = ids.NewID()
	item.Title = "(推迟) " + task.Title + " - " + today.Format("01-02")
	item.Type = TaskBacklog
	item.Completed = false
	return StatePatch{
		TodayTasks: ptr(without(s.TodayTasks, i)),
		Backlog:    ptr(appended(s.Backlog, item)),
	}, nil
}

// FillRemaining appends a filler task that spends exactly what is left.
// Nothing happens when the remaining budget is zero or overdrawn.
func FillRemaining(s *AppState, ids IDGenerator) StatePatch {
	remaining := s.Budget().Remaining
	if remaining <= 0 {
		return StatePatch{}
	}
	filler := Task{
		ID:    ids.NewID(),
		Title: FillerTitle,
		Cost:  remaining,
		Type:  TaskFiller,
	}
	return StatePatch{TodayTasks: ptr(appended(s.TodayTasks, filler))}
}

// CopyFromLibrary appends a fresh copy of a template to today.
// The template itself stays in the library.
func CopyFromLibrary(s *AppState, ids IDGenerator, templateID string) (StatePatch, error) {
	i := findTask(s.Templates, templateID)
	if i < 0 {
		return StatePatch{}, ErrLibraryNotFound
	}
	task := s.Templates[i]
	task.ID = ids.NewID()
	task.Completed = false
	task.Type = TaskNormal
	return StatePatch{TodayTasks: ptr(appended(s.TodayTasks, task))}, nil
}

// PromoteBacklog moves a backlog item into today as a normal task.
func PromoteBacklog(s *AppState, ids IDGenerator, backlogID string) (StatePatch, error) {
	i := findTask(s.Backlog, backlogID)
	if i < 0 {
		return StatePatch{}, ErrLibraryNotFound
	}
	task := s.Backlog[i]
	task.ID = ids.NewID()
	task.Completed = false
	task.Type = TaskNormal
	return StatePatch{
		Backlog:    ptr(without(s.Backlog, i)),
		TodayTasks: ptr(appended(s.TodayTasks, task)),
	}, nil
}

// AddScheduledInstance materializes one occurrence of a plan by hand.
// Frequency plans are added this way; reaching the target does not block it.
func AddScheduledInstance(s *AppState, ids IDGenerator, planID string) (StatePatch, error) {
	plan, ok := s.FindPlan(planID)
	if !ok {
		return StatePatch{}, ErrPlanNotFound
	}
	return StatePatch{TodayTasks: ptr(appended(s.TodayTasks, plan.Instance(ids.NewID())))}, nil
}

// EditTaskCost changes the cost of a today task.
func EditTaskCost(s *AppState, id string, cost int) (StatePatch, error) {
	if cost < 0 {
		return StatePatch{}, ErrInvalidCost
	}
	i := findTask(s.TodayTasks, id)
	if i < 0 {
		return StatePatch{}, ErrTaskNotFound
	}
	tasks := appended(s.TodayTasks)
	tasks[i].Cost = cost
	return StatePatch{TodayTasks: &tasks}, nil
}

// EditTaskNote replaces the note of a today task.
func EditTaskNote(s *AppState, id, note string) (StatePatch, error) {
	i := findTask(s.TodayTasks, id)
	if i < 0 {
		return StatePatch{}, ErrTaskNotFound
	}
	tasks := appended(s.TodayTasks)
	tasks[i].Note = note
	return StatePatch{TodayTasks: &tasks}, nil
}

// UpdateSettings replaces the presentation settings.
func UpdateSettings(settings Settings) StatePatch {
	return StatePatch{Settings: &settings}
}
