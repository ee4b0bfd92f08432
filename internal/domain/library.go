package domain

import (
	"strings"
	"time"
)

// LibraryKind selects one of the simple library lists.
type LibraryKind string

const (
	LibraryTemplates LibraryKind = "template"
	LibraryBacklog   LibraryKind = "backlog"
)

// IsValid returns true if the kind is a known list.
func (k LibraryKind) IsValid() bool {
	return k == LibraryTemplates || k == LibraryBacklog
}

func (k LibraryKind) taskType() TaskType {
	if k == LibraryTemplates {
		return TaskTemplate
	}
	return TaskBacklog
}

// Items returns the list for the kind.
func (s *AppState) Items(kind LibraryKind) []Task {
	if kind == LibraryTemplates {
		return s.Templates
	}
	return s.Backlog
}

func libraryPatch(kind LibraryKind, items []Task) StatePatch {
	if kind == LibraryTemplates {
		return StatePatch{Templates: &items}
	}
	return StatePatch{Backlog: &items}
}

// AddLibraryItem appends a template or backlog entry parsed from input.
// Input without a title produces an empty patch.
func AddLibraryItem(s *AppState, ids IDGenerator, kind LibraryKind, q QuickAdd, input string) (StatePatch, error) {
	if !kind.IsValid() {
		return StatePatch{}, ErrUnknownLibrary
	}
	title, cost := q.Parse(input)
	if title == "" {
		return StatePatch{}, nil
	}
	item := Task{
		ID:    ids.NewID(),
		Title: title,
		Cost:  cost,
		Type:  kind.taskType(),
	}
	return libraryPatch(kind, appended(s.Items(kind), item)), nil
}

// RemoveLibraryItem deletes a template or backlog entry.
func RemoveLibraryItem(s *AppState, kind LibraryKind, id string) (StatePatch, error) {
	if !kind.IsValid() {
		return StatePatch{}, ErrUnknownLibrary
	}
	items := s.Items(kind)
	i := findTask(items, id)
	if i < 0 {
		return StatePatch{}, ErrLibraryNotFound
	}
	return libraryPatch(kind, without(items, i)), nil
}

// PlanDraft is the editable part of a ScheduledTask.
type PlanDraft struct {
	Config ScheduleConfig
	ID     string // Empty creates a new plan
	Title  string
	Note   string
	Cost   int
}

// SavePlan creates a plan, or replaces the plan with the draft's id.
// Fixed days are sorted and deduplicated before saving.
func SavePlan(s *AppState, ids IDGenerator, d PlanDraft, now time.Time) (StatePatch, ScheduledTask, error) {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		return StatePatch{}, ScheduledTask{}, ErrEmptyTitle
	}
	if d.Cost < 0 {
		return StatePatch{}, ScheduledTask{}, ErrInvalidCost
	}
	if d.Config == nil {
		return StatePatch{}, ScheduledTask{}, ErrInvalidSchedule
	}
	if err := d.Config.Validate(); err != nil {
		return StatePatch{}, ScheduledTask{}, err
	}
	config := d.Config
	if days, ok := config.(SpecificDays); ok {
		config = days.normalized()
	}
	plan := ScheduledTask{
		ID:      d.ID,
		Title:   title,
		Cost:    d.Cost,
		Note:    d.Note,
		Created: now,
		Config:  config,
	}

	plans := make([]ScheduledTask, 0, len(s.ScheduledTasks)+1)
	if plan.ID == "" {
		plan.ID = ids.NewID()
		plans = append(plans, s.ScheduledTasks...)
		plans = append(plans, plan)
		return StatePatch{ScheduledTasks: &plans}, plan, nil
	}

	found := false
	for _, p := range s.ScheduledTasks {
		if p.ID == plan.ID {
			plan.Created = p.Created
			p = plan
			found = true
		}
		plans = append(plans, p)
	}
	if !found {
		return StatePatch{}, ScheduledTask{}, ErrPlanNotFound
	}
	return StatePatch{ScheduledTasks: &plans}, plan, nil
}

// DeletePlan removes a plan. Instances already in today are kept.
func DeletePlan(s *AppState, id string) (StatePatch, error) {
	plans := make([]ScheduledTask, 0, len(s.ScheduledTasks))
	for _, p := range s.ScheduledTasks {
		if p.ID != id {
			plans = append(plans, p)
		}
	}
	if len(plans) == len(s.ScheduledTasks) {
		return StatePatch{}, ErrPlanNotFound
	}
	return StatePatch{ScheduledTasks: &plans}, nil
}
