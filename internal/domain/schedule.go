package domain

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"
)

// ScheduleMode names a ScheduleConfig variant on the wire.
type ScheduleMode string

const (
	ModeSpecificDays     ScheduleMode = "specific_days"
	ModeWeeklyFrequency  ScheduleMode = "weekly_frequency"
	ModeMonthlyFrequency ScheduleMode = "monthly_frequency"
)

// Display returns a human-readable representation of the mode.
func (m ScheduleMode) Display() string {
	switch m {
	case ModeSpecificDays:
		return "Fixed days"
	case ModeWeeklyFrequency:
		return "Weekly"
	case ModeMonthlyFrequency:
		return "Monthly"
	default:
		return string(m)
	}
}

// ScheduleConfig is one of SpecificDays, WeeklyFrequency or MonthlyFrequency.
type ScheduleConfig interface {
	Mode() ScheduleMode
	Validate() error
}

// SpecificDays injects an instance on each listed weekday.
type SpecificDays struct {
	Days []time.Weekday
}

// WeeklyFrequency targets a completion count in the trailing week.
type WeeklyFrequency struct {
	Target int
}

// MonthlyFrequency targets a completion count in the calendar month.
type MonthlyFrequency struct {
	Target int
}

func (SpecificDays) Mode() ScheduleMode     { return ModeSpecificDays }
func (WeeklyFrequency) Mode() ScheduleMode  { return ModeWeeklyFrequency }
func (MonthlyFrequency) Mode() ScheduleMode { return ModeMonthlyFrequency }

// Validate checks that every day is a weekday index.
func (c SpecificDays) Validate() error {
	for _, d := range c.Days {
		if d < time.Sunday || d > time.Saturday {
			return fmt.Errorf("%w: weekday %d out of range 0-6", ErrInvalidSchedule, d)
		}
	}
	return nil
}

// Validate checks that the target is positive.
func (c WeeklyFrequency) Validate() error {
	if c.Target < 1 {
		return fmt.Errorf("%w: weekly target must be at least 1", ErrInvalidSchedule)
	}
	return nil
}

// Validate checks that the target is positive.
func (c MonthlyFrequency) Validate() error {
	if c.Target < 1 {
		return fmt.Errorf("%w: monthly target must be at least 1", ErrInvalidSchedule)
	}
	return nil
}

// Includes returns true if the weekday is scheduled.
func (c SpecificDays) Includes(d time.Weekday) bool {
	return slices.Contains(c.Days, d)
}

// normalized returns the days sorted with duplicates removed.
func (c SpecificDays) normalized() SpecificDays {
	days := slices.Clone(c.Days)
	slices.Sort(days)
	return SpecificDays{Days: slices.Compact(days)}
}

// ScheduledTask is a recurring-task definition. It never changes during the
// day cycle; only library management creates, edits or deletes it.
// Fields are ordered to minimize memory padding.
type ScheduledTask struct {
	Created time.Time
	Config  ScheduleConfig // nil when the stored mode is unknown; such plans are inert
	ID      string
	Title   string
	Note    string
	Cost    int
}

// Mode returns the config variant, or "" when the config is missing.
func (p ScheduledTask) Mode() ScheduleMode {
	if p.Config == nil {
		return ""
	}
	return p.Config.Mode()
}

// Target returns the frequency target, defaulting to 1.
func (p ScheduledTask) Target() int {
	var n int
	switch c := p.Config.(type) {
	case WeeklyFrequency:
		n = c.Target
	case MonthlyFrequency:
		n = c.Target
	}
	if n < 1 {
		return 1
	}
	return n
}

// Instance materializes one occurrence of the plan for today.
func (p ScheduledTask) Instance(id string) Task {
	return Task{
		ID:       id,
		Title:    p.Title,
		Cost:     p.Cost,
		Type:     TaskScheduled,
		Note:     p.Note,
		SourceID: p.ID,
	}
}

// scheduleConfigJSON is the wire form shared with older snapshots:
// {"mode": "...", "days": [...]} or {"mode": "...", "targetCount": n}.
type scheduleConfigJSON struct {
	Mode        ScheduleMode `json:"mode"`
	Days        []int        `json:"days,omitempty"`
	TargetCount *int         `json:"targetCount,omitempty"`
}

type scheduledTaskJSON struct {
	ID      string             `json:"id"`
	Title   string             `json:"title"`
	Cost    int                `json:"cost"`
	Note    string             `json:"note"`
	Created string             `json:"created"`
	Config  scheduleConfigJSON `json:"config"`
}

// MarshalJSON encodes the config as a mode tag plus its single payload field.
func (p ScheduledTask) MarshalJSON() ([]byte, error) {
	out := scheduledTaskJSON{
		ID:      p.ID,
		Title:   p.Title,
		Cost:    p.Cost,
		Note:    p.Note,
		Created: p.Created.UTC().Format(time.RFC3339Nano),
	}
	switch c := p.Config.(type) {
	case SpecificDays:
		out.Config.Mode = ModeSpecificDays
		out.Config.Days = make([]int, len(c.Days))
		for i, d := range c.Days {
			out.Config.Days[i] = int(d)
		}
	case WeeklyFrequency:
		out.Config.Mode = ModeWeeklyFrequency
		out.Config.TargetCount = ptr(c.Target)
	case MonthlyFrequency:
		out.Config.Mode = ModeMonthlyFrequency
		out.Config.TargetCount = ptr(c.Target)
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the tagged config. An unknown mode leaves Config nil
// instead of failing, so one odd plan cannot invalidate a whole snapshot.
func (p *ScheduledTask) UnmarshalJSON(data []byte) error {
	var in scheduledTaskJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*p = ScheduledTask{
		ID:    in.ID,
		Title: in.Title,
		Cost:  in.Cost,
		Note:  in.Note,
	}
	// A malformed timestamp only loses the creation time.
	if created, err := time.Parse(time.RFC3339Nano, in.Created); err == nil {
		p.Created = created
	}
	target := 0
	if in.Config.TargetCount != nil {
		target = *in.Config.TargetCount
	}
	switch in.Config.Mode {
	case ModeSpecificDays:
		days := make([]time.Weekday, len(in.Config.Days))
		for i, d := range in.Config.Days {
			days[i] = time.Weekday(d)
		}
		p.Config = SpecificDays{Days: days}
	case ModeWeeklyFrequency:
		p.Config = WeeklyFrequency{Target: target}
	case ModeMonthlyFrequency:
		p.Config = MonthlyFrequency{Target: target}
	}
	return nil
}

// InjectScheduled adds today's instance of every fixed-day plan scheduled
// for today's weekday that has no instance in todayTasks yet. It only runs
// while planning and is idempotent: a second call finds the instances.
func InjectScheduled(s *AppState, ids IDGenerator, today time.Time) StatePatch {
	if s.Phase != PhasePlanning {
		return StatePatch{}
	}
	weekday := today.Weekday()
	var add []Task
	for _, plan := range s.ScheduledTasks {
		days, ok := plan.Config.(SpecificDays)
		if !ok || !days.Includes(weekday) {
			continue
		}
		exists := slices.ContainsFunc(s.TodayTasks, func(t Task) bool {
			return t.FromPlan(plan.ID)
		})
		if !exists {
			add = append(add, plan.Instance(ids.NewID()))
		}
	}
	if len(add) == 0 {
		return StatePatch{}
	}
	return StatePatch{TodayTasks: ptr(appended(s.TodayTasks, add...))}
}

// Period is the window a frequency plan is counted over.
type Period string

const (
	PeriodWeek  Period = "week"  // Trailing seven calendar days including today
	PeriodMonth Period = "month" // Calendar month of now
)

// PeriodFor returns the counting window for a plan's config.
func PeriodFor(c ScheduleConfig) Period {
	if _, ok := c.(MonthlyFrequency); ok {
		return PeriodMonth
	}
	return PeriodWeek
}

// inPeriod reports whether a record date falls in the window around now.
func inPeriod(date time.Time, now time.Time, period Period) bool {
	if period == PeriodMonth {
		return date.Year() == now.Year() && date.Month() == now.Month()
	}
	diff := DaysBetween(date, now)
	if diff < 0 {
		diff = -diff
	}
	return diff <= 6
}

// CountCompletions counts how often a plan was done in the period around now.
//
// History records match by the plan's current title, or by plan id on
// records that carry CompletedPlanIDs. Renaming a plan therefore orphans
// its title-only history. Today's completed instances are added on top.
func CountCompletions(s *AppState, planID string, period Period, now time.Time) int {
	count := 0
	if plan, ok := s.FindPlan(planID); ok {
		for _, rec := range s.History {
			date, err := ParseDate(rec.Date, now.Location())
			if err != nil || !inPeriod(date, now, period) {
				continue
			}
			if slices.Contains(rec.CompletedPlanIDs, plan.ID) || slices.Contains(rec.CompletedTaskTitles, plan.Title) {
				count++
			}
		}
	}
	for _, t := range s.TodayTasks {
		if t.Completed && t.FromPlan(planID) {
			count++
		}
	}
	return count
}

// PlanProgress is the count/target display of a frequency plan.
type PlanProgress struct {
	Plan      ScheduledTask
	Count     int
	Target    int
	Satisfied bool // Count reached Target; manual re-adding is still allowed
}

// FrequencyProgress returns progress for every frequency plan, in list order.
func FrequencyProgress(s *AppState, now time.Time) []PlanProgress {
	var out []PlanProgress
	for _, plan := range s.ScheduledTasks {
		switch plan.Config.(type) {
		case WeeklyFrequency, MonthlyFrequency:
		default:
			continue
		}
		count := CountCompletions(s, plan.ID, PeriodFor(plan.Config), now)
		target := plan.Target()
		out = append(out, PlanProgress{
			Plan:      plan,
			Count:     count,
			Target:    target,
			Satisfied: count >= target,
		})
	}
	return out
}
