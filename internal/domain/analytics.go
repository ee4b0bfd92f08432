package domain

import (
	"math"
	"time"
)

// HeatLevel classifies one calendar day of history.
type HeatLevel int

const (
	HeatNoData         HeatLevel = iota // No record for the day
	HeatAwakening                       // Spent more than the pool
	HeatSurplus                         // Budget left over
	HeatPerfect                         // Spent exactly the pool
	HeatPerfectBoosted                  // Exact, with a positive diary adjustment
	HeatPerfectReduced                  // Exact, with a negative diary adjustment
)

// Display returns a human-readable representation of the level.
func (h HeatLevel) Display() string {
	switch h {
	case HeatAwakening:
		return "Awakening"
	case HeatSurplus:
		return "Remaining"
	case HeatPerfect:
		return "Perfect"
	case HeatPerfectBoosted:
		return "Perfect (+)"
	case HeatPerfectReduced:
		return "Perfect (-)"
	default:
		return "No data"
	}
}

// HeatCell is one day of the heatmap.
type HeatCell struct {
	Record *DayRecord // nil when Level is HeatNoData
	Date   string
	Level  HeatLevel
}

// HeatmapDays is the span of the awareness heatmap.
const HeatmapDays = 30

// ClassifyRecord returns the heat level of a closed day. The diary
// adjustment is re-derived from the stored diary text.
func ClassifyRecord(r DayRecord) HeatLevel {
	switch {
	case r.Awakening:
		return HeatAwakening
	case r.FinalBalance > 0:
		return HeatSurplus
	}
	adj := ParseDiary(r.Diary)
	switch {
	case adj > 0:
		return HeatPerfectBoosted
	case adj < 0:
		return HeatPerfectReduced
	default:
		return HeatPerfect
	}
}

// Heatmap classifies the trailing days ending today, oldest first.
// When several records share a date, the last one wins.
func Heatmap(history []DayRecord, today time.Time, days int) []HeatCell {
	byDate := make(map[string]int, len(history))
	for i, r := range history {
		byDate[r.Date] = i
	}
	cells := make([]HeatCell, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := FormatDate(today.AddDate(0, 0, -i))
		cell := HeatCell{Date: date, Level: HeatNoData}
		if idx, ok := byDate[date]; ok {
			rec := history[idx]
			cell.Record = &rec
			cell.Level = ClassifyRecord(rec)
		}
		cells = append(cells, cell)
	}
	return cells
}

// TopTask returns the most frequently completed title. Ties go to the
// title encountered first when scanning history in order.
func TopTask(history []DayRecord) (string, int, bool) {
	counts := make(map[string]int)
	var order []string
	for _, r := range history {
		for _, title := range r.CompletedTaskTitles {
			if _, seen := counts[title]; !seen {
				order = append(order, title)
			}
			counts[title]++
		}
	}
	best, bestCount := "", 0
	for _, title := range order {
		if counts[title] > bestCount {
			best, bestCount = title, counts[title]
		}
	}
	return best, bestCount, bestCount > 0
}

// HistoryStats are aggregates over the whole history.
type HistoryStats struct {
	Days               int
	AwakeningDays      int
	MeanTasksCompleted int // Rounded half away from zero; 0 without history
}

// Stats aggregates the history.
func Stats(history []DayRecord) HistoryStats {
	st := HistoryStats{Days: len(history)}
	total := 0
	for _, r := range history {
		if r.Awakening {
			st.AwakeningDays++
		}
		total += r.TasksCompleted
	}
	if len(history) > 0 {
		st.MeanTasksCompleted = int(math.Round(float64(total) / float64(len(history))))
	}
	return st
}

// Timeline returns the history newest first, for the diary stream.
func Timeline(history []DayRecord) []DayRecord {
	out := make([]DayRecord, len(history))
	for i, r := range history {
		out[len(history)-1-i] = r
	}
	return out
}
