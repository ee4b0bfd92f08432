package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/willflow/internal/domain"
)

// Colors defines the color palette shared by the board and the CLI views.
var Colors = struct {
	// Base colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color

	// Title/text colors
	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color

	// Heatmap colors
	Awakening lipgloss.Color
	Surplus   lipgloss.Color
	Perfect   lipgloss.Color
	Boosted   lipgloss.Color
	Reduced   lipgloss.Color
	NoData    lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Secondary: lipgloss.Color("#A29BFE"), // Lavender
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red
	Success:   lipgloss.Color("#00B894"), // Green
	Warning:   lipgloss.Color("#FDCB6E"), // Yellow

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)

	Awakening: lipgloss.Color("#D63031"), // Red
	Surplus:   lipgloss.Color("#74B9FF"), // Light blue
	Perfect:   lipgloss.Color("#00B894"), // Green
	Boosted:   lipgloss.Color("#55EFC4"), // Mint
	Reduced:   lipgloss.Color("#FDCB6E"), // Yellow
	NoData:    lipgloss.Color("#636E72"), // Gray
}

// Styles contains all the lipgloss styles.
type Styles struct {
	// Header
	Header     lipgloss.Style
	HeaderText lipgloss.Style

	// Budget bar
	BarFilled    lipgloss.Style
	BarEmpty     lipgloss.Style
	BarOverdraft lipgloss.Style
	Remaining    lipgloss.Style
	Overdraft    lipgloss.Style

	// Task list
	TaskNormal    lipgloss.Style
	TaskSelected  lipgloss.Style
	TaskID        lipgloss.Style
	TaskDone      lipgloss.Style
	TaskCost      lipgloss.Style
	TaskType      lipgloss.Style
	TaskNote      lipgloss.Style
	CursorNormal  lipgloss.Style
	CursorActive  lipgloss.Style
	PhasePlanning lipgloss.Style
	PhaseExecute  lipgloss.Style

	// Heatmap cells
	HeatNoData    lipgloss.Style
	HeatAwakening lipgloss.Style
	HeatSurplus   lipgloss.Style
	HeatPerfect   lipgloss.Style
	HeatBoosted   lipgloss.Style
	HeatReduced   lipgloss.Style

	// Footer
	Footer    lipgloss.Style
	FooterKey lipgloss.Style

	// Input
	Input       lipgloss.Style
	InputPrompt lipgloss.Style

	// Messages
	ErrorMsg lipgloss.Style
	WarnMsg  lipgloss.Style
	Muted    lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		HeaderText: lipgloss.NewStyle().
			Bold(true),

		BarFilled: lipgloss.NewStyle().
			Foreground(Colors.Success),

		BarEmpty: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		BarOverdraft: lipgloss.NewStyle().
			Foreground(Colors.Error),

		Remaining: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Success),

		Overdraft: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Error),

		TaskNormal: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		TaskSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.TitleSelected),

		TaskID: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		TaskDone: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Strikethrough(true),

		TaskCost: lipgloss.NewStyle().
			Foreground(Colors.Secondary).
			Bold(true),

		TaskType: lipgloss.NewStyle().
			Foreground(Colors.Secondary).
			Italic(true),

		TaskNote: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		CursorNormal: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		CursorActive: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		PhasePlanning: lipgloss.NewStyle().
			Foreground(Colors.Warning).
			Bold(true),

		PhaseExecute: lipgloss.NewStyle().
			Foreground(Colors.Success).
			Bold(true),

		HeatNoData:    lipgloss.NewStyle().Foreground(Colors.NoData),
		HeatAwakening: lipgloss.NewStyle().Foreground(Colors.Awakening),
		HeatSurplus:   lipgloss.NewStyle().Foreground(Colors.Surplus),
		HeatPerfect:   lipgloss.NewStyle().Foreground(Colors.Perfect),
		HeatBoosted:   lipgloss.NewStyle().Foreground(Colors.Boosted),
		HeatReduced:   lipgloss.NewStyle().Foreground(Colors.Reduced),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		FooterKey: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		Input: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary),

		InputPrompt: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),

		WarnMsg: lipgloss.NewStyle().
			Foreground(Colors.Warning),

		Muted: lipgloss.NewStyle().
			Foreground(Colors.Muted),
	}
}

// PhaseStyle returns the style for a phase badge.
func (s Styles) PhaseStyle(phase domain.Phase) lipgloss.Style {
	if phase == domain.PhaseExecution {
		return s.PhaseExecute
	}
	return s.PhasePlanning
}

// HeatStyle returns the style for a heatmap cell.
func (s Styles) HeatStyle(level domain.HeatLevel) lipgloss.Style {
	switch level {
	case domain.HeatAwakening:
		return s.HeatAwakening
	case domain.HeatSurplus:
		return s.HeatSurplus
	case domain.HeatPerfect:
		return s.HeatPerfect
	case domain.HeatPerfectBoosted:
		return s.HeatBoosted
	case domain.HeatPerfectReduced:
		return s.HeatReduced
	default:
		return s.HeatNoData
	}
}

// HeatIcon returns the glyph drawn for a heatmap cell.
func HeatIcon(level domain.HeatLevel) string {
	switch level {
	case domain.HeatAwakening:
		return "▲"
	case domain.HeatSurplus:
		return "○"
	case domain.HeatPerfect:
		return "●"
	case domain.HeatPerfectBoosted:
		return "◆"
	case domain.HeatPerfectReduced:
		return "◇"
	default:
		return "·"
	}
}

// TaskIcon returns the checkbox drawn before a task.
func TaskIcon(t domain.Task) string {
	if t.Completed {
		return "✓"
	}
	return "○"
}
