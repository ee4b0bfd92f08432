package tui

import (
	"strings"
	"testing"

	"github.com/runoshun/willflow/internal/domain"
)

func TestStyles_HeatStyle(t *testing.T) {
	styles := DefaultStyles()

	for _, level := range []domain.HeatLevel{
		domain.HeatNoData,
		domain.HeatAwakening,
		domain.HeatSurplus,
		domain.HeatPerfect,
		domain.HeatPerfectBoosted,
		domain.HeatPerfectReduced,
		domain.HeatLevel(99),
	} {
		t.Run(level.Display(), func(t *testing.T) {
			// HeatStyle should not panic for any level
			rendered := styles.HeatStyle(level).Render(HeatIcon(level))
			if rendered == "" {
				t.Errorf("HeatStyle(%v).Render() returned empty string", level)
			}
		})
	}
}

func TestHeatIcon(t *testing.T) {
	tests := []struct {
		level domain.HeatLevel
		want  string
	}{
		{domain.HeatNoData, "·"},
		{domain.HeatAwakening, "▲"},
		{domain.HeatSurplus, "○"},
		{domain.HeatPerfect, "●"},
		{domain.HeatPerfectBoosted, "◆"},
		{domain.HeatPerfectReduced, "◇"},
	}

	for _, tt := range tests {
		t.Run(tt.level.Display(), func(t *testing.T) {
			if got := HeatIcon(tt.level); got != tt.want {
				t.Errorf("HeatIcon(%v) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestRenderBudgetBar(t *testing.T) {
	styles := DefaultStyles()

	got := RenderBudgetBar(domain.Budget{PoolMax: 100, Remaining: 50}, 10, styles)
	if !strings.Contains(got, "50/100 WP") {
		t.Errorf("RenderBudgetBar() = %q, want numbers", got)
	}
	if strings.Count(got, "█") != 5 || strings.Count(got, "░") != 5 {
		t.Errorf("RenderBudgetBar() = %q, want half filled", got)
	}

	got = RenderBudgetBar(domain.Budget{PoolMax: 100, Remaining: -20}, 10, styles)
	if !strings.Contains(got, "-20/100 WP overdraft") {
		t.Errorf("RenderBudgetBar() = %q, want overdraft", got)
	}
}

func TestRenderTaskLine(t *testing.T) {
	styles := DefaultStyles()
	task := domain.Task{ID: "0123456789abcdef", Title: "Gym", Cost: 20, Type: domain.TaskScheduled, Note: "legs", Completed: true}

	got := RenderTaskLine(task, styles)

	for _, want := range []string{"✓", "01234567", "Gym", "20", "[Scheduled]", "- legs"} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderTaskLine() = %q, missing %q", got, want)
		}
	}
	if strings.Contains(got, "89abcdef") {
		t.Errorf("RenderTaskLine() = %q, want shortened id", got)
	}
}

func TestRenderHeatmap(t *testing.T) {
	cells := []domain.HeatCell{
		{Date: "2024-03-01", Level: domain.HeatAwakening},
		{Date: "2024-03-02", Level: domain.HeatNoData},
		{Date: "2024-03-03", Level: domain.HeatPerfect},
	}

	got := RenderHeatmap(cells, DefaultStyles())

	first := strings.SplitN(got, "\n", 2)[0]
	if !strings.Contains(first, "▲") || !strings.Contains(first, "·") || !strings.Contains(first, "●") {
		t.Errorf("RenderHeatmap() first line = %q", first)
	}
	if !strings.Contains(got, "Awakening") || !strings.Contains(got, "No data") {
		t.Errorf("RenderHeatmap() = %q, want legend", got)
	}
}
