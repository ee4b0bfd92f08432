package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/runoshun/willflow/internal/app"
	"github.com/runoshun/willflow/internal/domain"
	"github.com/runoshun/willflow/internal/tui"
	"github.com/runoshun/willflow/internal/usecase"
	"github.com/runoshun/willflow/internal/usecase/shared"
)

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday, "sunday": time.Sunday,
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,
}

// parseWeekdays parses a comma-separated list of weekday names or
// indexes (0 = Sunday).
func parseWeekdays(s string) ([]time.Weekday, error) {
	var days []time.Weekday
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		if d, ok := weekdayNames[part]; ok {
			days = append(days, d)
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n > 6 {
			return nil, fmt.Errorf("%w: unknown weekday %q", domain.ErrInvalidSchedule, part)
		}
		days = append(days, time.Weekday(n))
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("%w: no weekdays given", domain.ErrInvalidSchedule)
	}
	return days, nil
}

// describeSchedule returns a short human-readable schedule.
func describeSchedule(c domain.ScheduleConfig) string {
	switch cfg := c.(type) {
	case domain.SpecificDays:
		names := make([]string, len(cfg.Days))
		for i, d := range cfg.Days {
			names[i] = d.String()[:3]
		}
		return "every " + strings.Join(names, ",")
	case domain.WeeklyFrequency:
		return fmt.Sprintf("%dx per week", cfg.Target)
	case domain.MonthlyFrequency:
		return fmt.Sprintf("%dx per month", cfg.Target)
	default:
		return "-"
	}
}

// planFlags holds the flags shared by plan add and plan edit.
type planFlags struct {
	title   string
	note    string
	days    string
	cost    int
	weekly  int
	monthly int
}

func (f *planFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "Plan title")
	cmd.Flags().IntVar(&f.cost, "cost", domain.LibraryDefaultCost, "Cost of each instance")
	cmd.Flags().StringVar(&f.note, "note", "", "Note copied to each instance")
	cmd.Flags().StringVar(&f.days, "days", "", "Fixed weekdays, e.g. mon,wed,fri")
	cmd.Flags().IntVar(&f.weekly, "weekly", 0, "Target completions in the trailing week")
	cmd.Flags().IntVar(&f.monthly, "monthly", 0, "Target completions in the calendar month")
	cmd.MarkFlagsMutuallyExclusive("days", "weekly", "monthly")
}

// schedule returns the config selected by the flags, or nil when none of
// the schedule flags were given.
func (f *planFlags) schedule(cmd *cobra.Command) (domain.ScheduleConfig, error) {
	switch {
	case cmd.Flags().Changed("days"):
		days, err := parseWeekdays(f.days)
		if err != nil {
			return nil, err
		}
		return domain.SpecificDays{Days: days}, nil
	case cmd.Flags().Changed("weekly"):
		return domain.WeeklyFrequency{Target: f.weekly}, nil
	case cmd.Flags().Changed("monthly"):
		return domain.MonthlyFrequency{Target: f.monthly}, nil
	default:
		return nil, nil
	}
}

// newPlanCommand creates the plan command group.
func newPlanCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage recurring plans",
		Long: `Manage recurring plans.

A plan either appears on fixed weekdays (--days) or targets a number of
completions per week (--weekly) or per month (--monthly). Fixed-day plans
are added to today automatically while planning; frequency plans are
added by hand with 'willflow plan use'.`,
	}
	cmd.AddCommand(
		newPlanAddCommand(c),
		newPlanEditCommand(c),
		newPlanRmCommand(c),
		newPlanListCommand(c),
		newPlanUseCommand(c),
	)
	return cmd
}

func newPlanAddCommand(c *app.Container) *cobra.Command {
	var f planFlags

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Create a plan",
		Example: `  willflow plan add Gym --cost 20 --days mon,wed,fri
  willflow plan add Yoga --weekly 3`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 && f.title == "" {
				f.title = strings.Join(args, " ")
			}
			config, err := f.schedule(cmd)
			if err != nil {
				return err
			}
			if config == nil {
				return errors.New("one of --days, --weekly or --monthly is required")
			}
			out, err := c.SavePlanUseCase().Execute(cmd.Context(), usecase.SavePlanInput{
				Title:  f.title,
				Cost:   f.cost,
				Note:   f.note,
				Config: config,
			})
			if err != nil {
				return err
			}
			printSavedPlan(cmd, out)
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func newPlanEditCommand(c *app.Container) *cobra.Command {
	var f planFlags

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a plan; flags not given keep their value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := c.ShowLibraryUseCase().Execute(cmd.Context(), usecase.ShowLibraryInput{})
			if err != nil {
				return err
			}
			id, err := shared.ResolvePlan(lib.Plans, args[0])
			if err != nil {
				return err
			}
			var current domain.ScheduledTask
			for _, p := range lib.Plans {
				if p.ID == id {
					current = p
				}
			}

			in := usecase.SavePlanInput{
				PlanRef: id,
				Title:   current.Title,
				Cost:    current.Cost,
				Note:    current.Note,
				Config:  current.Config,
			}
			if cmd.Flags().Changed("title") {
				in.Title = f.title
			}
			if cmd.Flags().Changed("cost") {
				in.Cost = f.cost
			}
			if cmd.Flags().Changed("note") {
				in.Note = f.note
			}
			config, err := f.schedule(cmd)
			if err != nil {
				return err
			}
			if config != nil {
				in.Config = config
			}

			out, err := c.SavePlanUseCase().Execute(cmd.Context(), in)
			if err != nil {
				return err
			}
			printSavedPlan(cmd, out)
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func printSavedPlan(cmd *cobra.Command, out *usecase.SavePlanOutput) {
	w := cmd.OutOrStdout()
	verb := "Updated"
	if out.Created {
		verb = "Created"
	}
	_, _ = fmt.Fprintf(w, "%s plan %s %q (%d, %s)\n",
		verb, tui.ShortID(out.Plan.ID), out.Plan.Title, out.Plan.Cost, describeSchedule(out.Plan.Config))
	for _, t := range out.Injected {
		_, _ = fmt.Fprintf(w, "Added from plan: %s\n", t.Title)
	}
}

func newPlanRmCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Delete a plan; today's instances are kept",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.DeletePlanUseCase().Execute(cmd.Context(), usecase.DeletePlanInput{PlanRef: args[0]})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted plan %q\n", out.Plan.Title)
			return nil
		},
	}
}

func newPlanListCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List plans with their progress",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ShowLibraryUseCase().Execute(cmd.Context(), usecase.ShowLibraryInput{})
			if err != nil {
				return err
			}
			printPlans(cmd.OutOrStdout(), out.Plans, out.Progress)
			return nil
		},
	}
}

func newPlanUseCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "use <id>",
		Short: "Add an instance of a plan to today",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.AddPlanInstanceUseCase().Execute(cmd.Context(), usecase.AddPlanInstanceInput{PlanRef: args[0]})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Added %s %q (%d) to today\n", tui.ShortID(out.Task.ID), out.Task.Title, out.Task.Cost)
			if p := out.Progress; p != nil {
				_, _ = fmt.Fprintf(w, "Progress: %d/%d this %s\n", p.Count, p.Target, domain.PeriodFor(p.Plan.Config))
			}
			return nil
		},
	}
}
