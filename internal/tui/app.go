package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/willflow/internal/app"
	"github.com/runoshun/willflow/internal/domain"
	"github.com/runoshun/willflow/internal/usecase"
)

// Model is the bubbletea model of the daily board.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	today     *usecase.ShowTodayOutput
	err       error

	info string

	// Components
	keys   KeyMap
	styles Styles
	help   help.Model
	input  textinput.Model

	// Numeric state (smaller types last)
	mode          Mode
	confirmAction ConfirmAction
	cursor        int
	width         int
	height        int
}

// New creates a new board Model with the given container.
func New(c *app.Container) *Model {
	ti := textinput.New()
	ti.CharLimit = 200

	return &Model{
		container: c,
		mode:      ModeNormal,
		keys:      DefaultKeyMap(),
		styles:    DefaultStyles(),
		help:      help.New(),
		input:     ti,
	}
}

// Run starts the board in the alternate screen and blocks until it exits.
func Run(c *app.Container) error {
	_, err := tea.NewProgram(New(c), tea.WithAltScreen()).Run()
	return err
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return m.load()
}

// load returns a command that reloads the today view.
func (m *Model) load() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ShowTodayUseCase().Execute(context.Background(), usecase.ShowTodayInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgLoaded{Today: out}
	}
}

// tasks returns today's tasks, or nil before the first load.
func (m *Model) tasks() []domain.Task {
	if m.today == nil {
		return nil
	}
	return m.today.State.TodayTasks
}

// SelectedTask returns the task under the cursor, or nil if none.
func (m *Model) SelectedTask() *domain.Task {
	tasks := m.tasks()
	if m.cursor < 0 || m.cursor >= len(tasks) {
		return nil
	}
	t := tasks[m.cursor]
	return &t
}

// Phase returns the phase of the loaded day.
func (m *Model) Phase() domain.Phase {
	if m.today == nil {
		return domain.PhasePlanning
	}
	return m.today.State.Phase
}

func (m *Model) clampCursor() {
	n := len(m.tasks())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Commands. Each runs one use case and reports MsgChanged or MsgError.

func (m *Model) toggleTask(id string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ToggleTaskUseCase().Execute(context.Background(), usecase.ToggleTaskInput{TaskRef: id})
		if err != nil {
			return MsgError{Err: err}
		}
		if out.Task.Completed {
			return MsgChanged{Info: fmt.Sprintf("✓ %s", out.Task.Title)}
		}
		return MsgChanged{Info: fmt.Sprintf("○ %s reopened", out.Task.Title)}
	}
}

func (m *Model) removeTask(id string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.RemoveTaskUseCase().Execute(context.Background(), usecase.RemoveTaskInput{TaskRef: id})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgChanged{Info: fmt.Sprintf("Removed %s", out.Task.Title)}
	}
}

func (m *Model) deferTask(id string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.DeferTaskUseCase().Execute(context.Background(), usecase.DeferTaskInput{TaskRef: id})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgChanged{Info: fmt.Sprintf("Deferred as %s", out.Item.Title)}
	}
}

func (m *Model) addTask(text string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.AddTaskUseCase().Execute(context.Background(), usecase.AddTaskInput{Text: text})
		if err != nil {
			return MsgError{Err: err}
		}
		if out.Task == nil {
			return MsgChanged{}
		}
		return MsgChanged{Info: fmt.Sprintf("Added %s (%d)", out.Task.Title, out.Task.Cost)}
	}
}

func (m *Model) writeDiary(text string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.WriteDiaryUseCase().Execute(context.Background(), usecase.WriteDiaryInput{Text: text})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgChanged{Info: fmt.Sprintf("Diary adjustment %+d", out.Adjustment)}
	}
}

func (m *Model) fill() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.FillRemainingUseCase().Execute(context.Background(), usecase.FillRemainingInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		if out.Filler == nil {
			return MsgChanged{Info: "Nothing left to fill"}
		}
		return MsgChanged{Info: fmt.Sprintf("Filled %d WP", out.Filler.Cost)}
	}
}

func (m *Model) startExecution() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.StartExecutionUseCase().Execute(context.Background(), usecase.StartExecutionInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgChanged{Info: fmt.Sprintf("Execution started with %d WP", out.Budget.PoolMax)}
	}
}

func (m *Model) closeDay() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.CloseDayUseCase().Execute(context.Background(), usecase.CloseDayInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgChanged{Info: fmt.Sprintf("Closed %s, capacity %d -> %d", out.Record.Date, out.OldBaseMax, out.NewBaseMax)}
	}
}

// inputPrompt returns the prompt for the current input mode.
func (m *Model) inputPrompt() string {
	if m.mode == ModeDiary {
		return "Diary: "
	}
	return "Add: "
}

// submitInput runs the command for the current input mode.
func (m *Model) submitInput() tea.Cmd {
	text := strings.TrimSpace(m.input.Value())
	mode := m.mode
	m.mode = ModeNormal
	m.input.Reset()
	m.input.Blur()
	switch mode {
	case ModeDiary:
		return m.writeDiary(text)
	case ModeAdd:
		if text == "" {
			return nil
		}
		return m.addTask(text)
	default:
		return nil
	}
}
