package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/runoshun/willflow/internal/app"
	"github.com/runoshun/willflow/internal/domain"
	"github.com/runoshun/willflow/internal/tui"
	"github.com/runoshun/willflow/internal/usecase"
)

// newTodayCommand creates the today command.
func newTodayCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's budget, tasks and plan progress",
		Long: `Show today's budget, tasks and plan progress.

Opening the view adds today's instance of every fixed-day plan that is
due and not yet present, while the day is still being planned.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ShowTodayUseCase().Execute(cmd.Context(), usecase.ShowTodayInput{})
			if err != nil {
				return err
			}
			printToday(cmd.OutOrStdout(), cmd.ErrOrStderr(), out, tui.DefaultStyles())
			return nil
		},
	}
}

func printToday(w, errw io.Writer, out *usecase.ShowTodayOutput, s tui.Styles) {
	state := out.State
	if out.Recovered != nil {
		_, _ = fmt.Fprintln(errw, s.WarnMsg.Render(fmt.Sprintf("Warning: stored state was unreadable, started fresh (%v)", out.Recovered)))
	}

	_, _ = fmt.Fprintf(w, "%s  %s\n",
		s.Header.Render("Today "+state.LastActiveDate),
		s.PhaseStyle(state.Phase).Render("["+state.Phase.Display()+"]"))
	if out.Stale {
		_, _ = fmt.Fprintln(w, s.WarnMsg.Render(fmt.Sprintf(
			"The day opened on %s is still open; run 'willflow newday' to close it.", state.LastActiveDate)))
	}

	_, _ = fmt.Fprintln(w, tui.RenderBudgetBar(out.Budget, tui.BarWidth, s))
	_, _ = fmt.Fprintln(w, s.Muted.Render(fmt.Sprintf("pool %d = base %d %+d diary, allocated %d, completed %d",
		out.Budget.PoolMax, state.BaseMax, state.DiaryAdjustment, out.Budget.Allocated, out.Budget.Completed)))

	for _, t := range out.Injected {
		_, _ = fmt.Fprintf(w, "Added from plan: %s\n", t.Title)
	}

	_, _ = fmt.Fprintln(w)
	if len(state.TodayTasks) == 0 {
		_, _ = fmt.Fprintln(w, s.Muted.Render("No tasks yet. Add one with 'willflow add <title> <cost>'."))
	}
	for _, t := range state.TodayTasks {
		_, _ = fmt.Fprintln(w, "  "+tui.RenderTaskLine(t, s))
	}

	if len(out.Progress) > 0 {
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, s.HeaderText.Render("Plans"))
		for _, p := range out.Progress {
			_, _ = fmt.Fprintf(w, "  %s %s %d/%d this %s\n",
				progressIcon(p), p.Plan.Title, p.Count, p.Target, domain.PeriodFor(p.Plan.Config))
		}
	}

	if state.DiaryContent != "" {
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, s.HeaderText.Render("Diary"))
		_, _ = fmt.Fprintln(w, s.Muted.Render(state.DiaryContent))
	}
}

func progressIcon(p domain.PlanProgress) string {
	if p.Satisfied {
		return "✓"
	}
	return "○"
}

func printBudget(w io.Writer, b domain.Budget) {
	_, _ = fmt.Fprintln(w, tui.RenderBudgetBar(b, tui.BarWidth, tui.DefaultStyles()))
}

// newAddCommand creates the add command.
func newAddCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "add <title> [cost]",
		Short: "Add a task to today",
		Long: `Add a task to today using quick-add input.

A number at the end is the cost ("跑步30" and "跑步 30" both cost 30).
Otherwise a last word starting with a number is the cost ("run 5km" costs 5).
Without a number the configured default cost applies.`,
		Example: `  willflow add 阅读 30
  willflow add run 5km`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.AddTaskUseCase().Execute(cmd.Context(), usecase.AddTaskInput{
				Text: strings.Join(args, " "),
			})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if out.Task == nil {
				_, _ = fmt.Fprintln(w, "Nothing added: the title is empty.")
				return nil
			}
			_, _ = fmt.Fprintf(w, "Added %s %q (%d)\n", tui.ShortID(out.Task.ID), out.Task.Title, out.Task.Cost)
			printBudget(w, out.Budget)
			return nil
		},
	}
}

// newDoneCommand creates the done command.
func newDoneCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task's completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.ToggleTaskUseCase().Execute(cmd.Context(), usecase.ToggleTaskInput{TaskRef: args[0]})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if out.Task.Completed {
				_, _ = fmt.Fprintf(w, "✓ %s (%d)\n", out.Task.Title, out.Task.Cost)
			} else {
				_, _ = fmt.Fprintf(w, "○ %s reopened\n", out.Task.Title)
			}
			if out.Budget.Phase == domain.PhasePlanning {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Note: the day is still being planned; completion counts once execution starts.")
			}
			printBudget(w, out.Budget)
			return nil
		},
	}
}

// newRmCommand creates the rm command.
func newRmCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Remove a task from today",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.RemoveTaskUseCase().Execute(cmd.Context(), usecase.RemoveTaskInput{TaskRef: args[0]})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Removed %q\n", out.Task.Title)
			if out.Budget.Phase == domain.PhaseExecution && !out.Task.Capabilities().RemovableInExecution {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Note: %q was scheduled for today; it will not count toward its plan.\n", out.Task.Title)
			}
			printBudget(w, out.Budget)
			return nil
		},
	}
}

// newDeferCommand creates the defer command.
func newDeferCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "defer <id>",
		Short: "Move a scheduled task to the backlog",
		Long: `Move a scheduled task from today to the backlog.

Only instances of plans can be deferred, and only while planning.
The backlog copy is titled "(推迟) <title> - MM-DD".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.DeferTaskUseCase().Execute(cmd.Context(), usecase.DeferTaskInput{TaskRef: args[0]})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deferred to backlog as %q\n", out.Item.Title)
			return nil
		},
	}
}

// newFillCommand creates the fill command.
func newFillCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "fill",
		Short: "Spend the remaining budget on free time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.FillRemainingUseCase().Execute(cmd.Context(), usecase.FillRemainingInput{})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if out.Filler == nil {
				_, _ = fmt.Fprintln(w, "Nothing left to fill.")
				return nil
			}
			_, _ = fmt.Fprintf(w, "Added %q (%d)\n", out.Filler.Title, out.Filler.Cost)
			printBudget(w, out.Budget)
			return nil
		},
	}
}

// newDiaryCommand creates the diary command.
func newDiaryCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diary [-a] <text>",
		Short: "Write today's diary",
		Long: `Write today's diary. Every signed or unsigned integer in the text is
summed into today's pool adjustment ("tired -10 but +5 win" gives -5).
The diary is replaced unless --append (-a) is given.

Only leading -a, --append, -h and --help are options; everything else,
including "-120", is diary text. Use "--" to start the text with "-a".`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, appendLine, help := parseDiaryArgs(args)
			if help {
				return cmd.Help()
			}
			out, err := c.WriteDiaryUseCase().Execute(cmd.Context(), usecase.WriteDiaryInput{
				Text:   text,
				Append: appendLine,
			})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Diary adjustment: %+d (pool %d WP)\n", out.Adjustment, out.Budget.PoolMax)
			printBudget(w, out.Budget)
			return nil
		},
	}

	// Flag parsing would read "-120" as a shorthand flag
	cmd.DisableFlagParsing = true
	// Listed in help only; parseDiaryArgs reads it
	cmd.Flags().BoolP("append", "a", false, "Append as a new line instead of replacing")

	return cmd
}

// parseDiaryArgs splits leading options from the diary text.
func parseDiaryArgs(args []string) (text string, appendLine, help bool) {
	i := 0
	for ; i < len(args); i++ {
		switch args[i] {
		case "-a", "--append":
			appendLine = true
			continue
		case "-h", "--help":
			return "", appendLine, true
		case "--":
			i++
		}
		break
	}
	return strings.Join(args[i:], " "), appendLine, false
}

// newCostCommand creates the cost command.
func newCostCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "cost <id> <points>",
		Short: "Change a task's cost",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cost, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid cost: %s", args[1])
			}
			out, err := c.EditTaskUseCase().Execute(cmd.Context(), usecase.EditTaskInput{TaskRef: args[0], Cost: &cost})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "%s now costs %d\n", out.Task.Title, out.Task.Cost)
			printBudget(w, out.Budget)
			return nil
		},
	}
}

// newNoteCommand creates the note command.
func newNoteCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "note <id> [text]",
		Short: "Set or clear a task's note",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			note := strings.Join(args[1:], " ")
			out, err := c.EditTaskUseCase().Execute(cmd.Context(), usecase.EditTaskInput{TaskRef: args[0], Note: &note})
			if err != nil {
				return err
			}
			if note == "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Cleared note of %s\n", out.Task.Title)
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Noted %s: %s\n", out.Task.Title, out.Task.Note)
			}
			return nil
		},
	}
}

// newStartCommand creates the start command.
func newStartCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "End planning and start executing the day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.StartExecutionUseCase().Execute(cmd.Context(), usecase.StartExecutionInput{})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Execution started with %d WP.\n", out.Budget.PoolMax)
			printBudget(w, out.Budget)
			return nil
		},
	}
}

// newNewDayCommand creates the newday command.
func newNewDayCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "newday",
		Short: "Close the current day and open a new one",
		Long: `Close the current day and open a new one.

The day is archived to history. Points left over shrink the base capacity
by the configured step (never below the floor); spending the whole pool or
more keeps it. Incomplete normal, template and backlog tasks move to the
backlog; incomplete filler and scheduled tasks are dropped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.CloseDayUseCase().Execute(cmd.Context(), usecase.CloseDayInput{})
			if err != nil {
				return err
			}
			s := tui.DefaultStyles()
			w := cmd.OutOrStdout()
			rec := out.Record
			_, _ = fmt.Fprintf(w, "Closed %s: %d tasks, %d WP spent, balance %d\n",
				rec.Date, rec.TasksCompleted, rec.TotalCostConsumed, rec.FinalBalance)
			if rec.Awakening {
				_, _ = fmt.Fprintln(w, s.Overdraft.Render("Awakening: you spent more than the pool."))
			}
			_, _ = fmt.Fprintf(w, "Base capacity: %d -> %d\n", out.OldBaseMax, out.NewBaseMax)
			if out.CarriedOver > 0 {
				_, _ = fmt.Fprintf(w, "%d unfinished task(s) moved to the backlog\n", out.CarriedOver)
			}
			for _, t := range out.Injected {
				_, _ = fmt.Fprintf(w, "Added from plan: %s\n", t.Title)
			}
			return nil
		},
	}
}
