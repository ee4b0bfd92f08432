package tui

import (
	"fmt"
	"strings"

	"github.com/runoshun/willflow/internal/domain"
)

// BarWidth is the default width of the budget bar in cells.
const BarWidth = 30

// ShortID returns the first eight characters of an id for display.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// RenderBudgetBar draws the remaining budget as a bar followed by the
// numbers, e.g. "██████░░░░ 60/100 WP". An overdrawn pool is drawn as a
// full red bar with the negative remainder.
func RenderBudgetBar(b domain.Budget, width int, s Styles) string {
	if width <= 0 {
		width = BarWidth
	}
	label := fmt.Sprintf(" %d/%d WP", b.Remaining, b.PoolMax)
	if b.Overdraft() {
		return s.BarOverdraft.Render(strings.Repeat("█", width)) +
			s.Overdraft.Render(label+" overdraft")
	}
	filled := int(b.Ratio()*float64(width) + 0.5)
	return s.BarFilled.Render(strings.Repeat("█", filled)) +
		s.BarEmpty.Render(strings.Repeat("░", width-filled)) +
		s.Remaining.Render(label)
}

// RenderTaskLine draws one today task: checkbox, short id, title, cost and type.
func RenderTaskLine(t domain.Task, s Styles) string {
	title := s.TaskNormal.Render(t.Title)
	if t.Completed {
		title = s.TaskDone.Render(t.Title)
	}
	line := fmt.Sprintf("%s %s %s %s",
		TaskIcon(t),
		s.TaskID.Render(ShortID(t.ID)),
		title,
		s.TaskCost.Render(fmt.Sprintf("%d", t.Cost)),
	)
	if t.Type != domain.TaskNormal {
		line += " " + s.TaskType.Render("["+t.Type.Display()+"]")
	}
	if t.Note != "" {
		line += " " + s.TaskNote.Render("- "+t.Note)
	}
	return line
}

// RenderHeatmap draws the cells as one row of glyphs, oldest first,
// followed by a legend.
func RenderHeatmap(cells []domain.HeatCell, s Styles) string {
	var row strings.Builder
	for _, c := range cells {
		row.WriteString(s.HeatStyle(c.Level).Render(HeatIcon(c.Level)))
	}
	var legend []string
	for _, level := range []domain.HeatLevel{
		domain.HeatAwakening,
		domain.HeatSurplus,
		domain.HeatPerfect,
		domain.HeatPerfectBoosted,
		domain.HeatPerfectReduced,
		domain.HeatNoData,
	} {
		legend = append(legend, s.HeatStyle(level).Render(HeatIcon(level))+" "+level.Display())
	}
	return row.String() + "\n" + strings.Join(legend, "  ")
}
