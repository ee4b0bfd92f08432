package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/willflow/internal/domain"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = msg.Width - 12
		return m, nil

	case MsgLoaded:
		m.today = msg.Today
		m.clampCursor()
		return m, nil

	case MsgChanged:
		m.err = nil
		m.info = msg.Info
		return m, m.load()

	case MsgError:
		m.err = msg.Err
		m.info = ""
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		return m, nil
	}

	// Keep the input cursor blinking
	if m.mode.IsInputMode() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits, even while typing
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeAdd, ModeDiary:
		return m.handleInputMode(msg)
	case ModeConfirm:
		return m.handleConfirmMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	case ModeNormal:
		return m.handleNormalMode(msg)
	}
	return m, nil
}

func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.tasks())-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.err = nil
		return m, m.load()

	case key.Matches(msg, m.keys.Toggle):
		if t := m.SelectedTask(); t != nil {
			return m, m.toggleTask(t.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Remove):
		t := m.SelectedTask()
		if t == nil {
			return m, nil
		}
		if m.Phase() == domain.PhaseExecution && !t.Capabilities().RemovableInExecution {
			m.info = fmt.Sprintf("%s is scheduled and stays until the day closes", t.Title)
			return m, nil
		}
		m.enterConfirm(ConfirmRemove)
		return m, nil

	case key.Matches(msg, m.keys.Defer):
		if t := m.SelectedTask(); t != nil {
			return m, m.deferTask(t.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Fill):
		return m, m.fill()

	case key.Matches(msg, m.keys.Add):
		if m.Phase() != domain.PhasePlanning {
			m.info = "Tasks can only be added while planning"
			return m, nil
		}
		return m, m.enterInput(ModeAdd, "title and cost, e.g. 阅读 30")

	case key.Matches(msg, m.keys.Diary):
		cmd := m.enterInput(ModeDiary, "numbers adjust today's pool, e.g. tired -10")
		if m.today != nil {
			m.input.SetValue(m.today.State.DiaryContent)
			m.input.CursorEnd()
		}
		return m, cmd

	case key.Matches(msg, m.keys.Start):
		if m.Phase() == domain.PhasePlanning {
			m.enterConfirm(ConfirmStart)
		}
		return m, nil

	case key.Matches(msg, m.keys.NewDay):
		m.enterConfirm(ConfirmNewDay)
		return m, nil
	}

	return m, nil
}

func (m *Model) enterInput(mode Mode, placeholder string) tea.Cmd {
	m.mode = mode
	m.input.Reset()
	m.input.Placeholder = placeholder
	m.input.Prompt = m.inputPrompt()
	return m.input.Focus()
}

func (m *Model) enterConfirm(action ConfirmAction) {
	m.mode = ModeConfirm
	m.confirmAction = action
}

func (m *Model) handleInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.input.Reset()
		m.input.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		return m, m.submitInput()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.confirmAction
	m.mode = ModeNormal
	m.confirmAction = ConfirmNone

	if !key.Matches(msg, m.keys.Confirm) {
		return m, nil
	}

	switch action {
	case ConfirmRemove:
		if t := m.SelectedTask(); t != nil {
			return m, m.removeTask(t.ID)
		}
	case ConfirmStart:
		return m, m.startExecution()
	case ConfirmNewDay:
		return m, m.closeDay()
	case ConfirmNone:
	}
	return m, nil
}

func (m *Model) handleHelpMode(_ tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = ModeNormal
	return m, nil
}
