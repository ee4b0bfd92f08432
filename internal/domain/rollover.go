package domain

import (
	"slices"
	"time"
)

// Rules are the tunable constants of the day cycle.
type Rules struct {
	CapacityFloor int // baseMax never shrinks below this
	CapacityStep  int // Shrink applied after an under-spent day
}

// DefaultRules returns the standard floor of 40 and step of 10.
func DefaultRules() Rules {
	return Rules{CapacityFloor: 40, CapacityStep: 10}
}

// StartExecution ends planning. Nothing but the phase changes.
func StartExecution(s *AppState) (StatePatch, error) {
	if s.Phase != PhasePlanning {
		return StatePatch{}, ErrInvalidTransition
	}
	return StatePatch{Phase: ptr(PhaseExecution)}, nil
}

// CloseDay ends the current day from either phase and returns the patch
// together with the record it appends.
//
// The balance is the pool minus what was completed. A positive balance
// shrinks baseMax by one step (not below the floor); spending exactly the
// pool or more leaves it alone. The record carries the values from before
// the reset. Incomplete tasks that carry over go to the backlog; incomplete
// filler and scheduled instances are dropped. CloseDay never fails.
func CloseDay(s *AppState, rules Rules, today time.Time) (StatePatch, DayRecord) {
	budget := CalculateBudget(PhaseExecution, s.PoolMax(), s.TodayTasks)
	finalBalance := budget.PoolMax - budget.Completed

	titles := []string{}
	var planIDs []string
	completed := 0
	backlog := appended(s.Backlog)
	for _, t := range s.TodayTasks {
		caps := t.Capabilities()
		if t.Completed {
			completed++
			if caps.CountsTowardTitles {
				titles = append(titles, t.Title)
			}
			if t.SourceID != "" && !slices.Contains(planIDs, t.SourceID) {
				planIDs = append(planIDs, t.SourceID)
			}
			continue
		}
		if caps.CarriesOver {
			t.Type = TaskBacklog
			backlog = append(backlog, t)
		}
	}

	baseMax := s.BaseMax
	if finalBalance > 0 {
		baseMax = max(rules.CapacityFloor, s.BaseMax-rules.CapacityStep)
	}

	record := DayRecord{
		Date:                s.LastActiveDate,
		Diary:               s.DiaryContent,
		BaseMax:             s.BaseMax,
		FinalBalance:        finalBalance,
		Awakening:           finalBalance < 0,
		TasksCompleted:      completed,
		TotalCostConsumed:   budget.Completed,
		CompletedTaskTitles: titles,
		CompletedPlanIDs:    planIDs,
	}

	history := make([]DayRecord, 0, len(s.History)+1)
	history = append(history, s.History...)
	history = append(history, record)

	return StatePatch{
		BaseMax:         ptr(baseMax),
		LastActiveDate:  ptr(FormatDate(today)),
		DiaryContent:    ptr(""),
		DiaryAdjustment: ptr(0),
		TodayTasks:      ptr([]Task{}),
		Backlog:         &backlog,
		Phase:           ptr(PhasePlanning),
		History:         &history,
	}, record
}
