package tui

import (
	"fmt"
	"strings"

	"github.com/runoshun/willflow/internal/domain"
)

// View renders the TUI.
func (m *Model) View() string {
	if m.today == nil {
		if m.err != nil {
			return m.styles.ErrorMsg.Render("Error: "+m.err.Error()) + "\n"
		}
		return "Loading..."
	}
	if m.mode == ModeHelp {
		return m.viewHelp()
	}
	return m.viewMain()
}

func (m *Model) viewMain() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(m.styles.ErrorMsg.Render("Error: "+m.err.Error()) + "\n\n")
	}

	b.WriteString(m.viewTaskList())
	b.WriteString(m.viewPlans())

	switch m.mode {
	case ModeAdd, ModeDiary:
		b.WriteString("\n")
		b.WriteString(m.styles.Input.Render(m.input.View()))
		b.WriteString("\n")
	case ModeConfirm:
		b.WriteString("\n")
		b.WriteString(m.styles.WarnMsg.Render(fmt.Sprintf("Really %s? (y/N)", m.confirmAction)))
		b.WriteString("\n")
	case ModeNormal, ModeHelp:
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())

	if m.today.State.Settings.BottomNavOffset {
		b.WriteString("\n\n")
	}

	return b.String()
}

func (m *Model) viewHeader() string {
	state := m.today.State
	title := m.styles.Header.Render("willflow " + state.LastActiveDate)
	phase := m.styles.PhaseStyle(state.Phase).Render("[" + state.Phase.Display() + "]")

	width := BarWidth
	if m.width > 0 && m.width-20 < width {
		width = max(m.width-20, 10)
	}

	lines := []string{
		title + "  " + phase,
		RenderBudgetBar(m.today.Budget, width, m.styles),
	}
	if state.DiaryAdjustment != 0 {
		lines = append(lines, m.styles.Muted.Render(fmt.Sprintf("diary %+d", state.DiaryAdjustment)))
	}
	if m.today.Stale {
		lines = append(lines, m.styles.WarnMsg.Render("This day is still open from "+state.LastActiveDate+"; press N to close it"))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) viewTaskList() string {
	tasks := m.tasks()
	if len(tasks) == 0 {
		return m.styles.Muted.Render("No tasks yet. Press a to add one.") + "\n"
	}

	var b strings.Builder
	for i, t := range tasks {
		cursor := m.styles.CursorNormal.Render("  ")
		if i == m.cursor {
			cursor = m.styles.CursorActive.Render("> ")
		}
		b.WriteString(cursor + RenderTaskLine(t, m.styles) + "\n")
	}
	return b.String()
}

func (m *Model) viewPlans() string {
	if len(m.today.Progress) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n" + m.styles.HeaderText.Render("Plans") + "\n")
	for _, p := range m.today.Progress {
		mark := "○"
		if p.Satisfied {
			mark = "✓"
		}
		b.WriteString(fmt.Sprintf("  %s %s %d/%d this %s\n", mark, p.Plan.Title, p.Count, p.Target, domain.PeriodFor(p.Plan.Config)))
	}
	return b.String()
}

func (m *Model) viewFooter() string {
	if m.info != "" {
		return m.styles.Footer.Render(m.info) + "\n" + m.help.View(m.keys)
	}
	return m.help.View(m.keys)
}

func (m *Model) viewHelp() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Keys") + "\n\n")
	for _, group := range m.keys.FullHelp() {
		for _, k := range group {
			h := k.Help()
			b.WriteString(fmt.Sprintf("  %s  %s\n", m.styles.FooterKey.Render(fmt.Sprintf("%-6s", h.Key)), h.Desc))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Footer.Render("Press any key to close"))
	return b.String()
}
