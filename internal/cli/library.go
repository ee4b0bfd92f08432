package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/runoshun/willflow/internal/app"
	"github.com/runoshun/willflow/internal/domain"
	"github.com/runoshun/willflow/internal/tui"
	"github.com/runoshun/willflow/internal/usecase"
)

// newLibraryCommand creates the library command.
func newLibraryCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "library",
		Aliases: []string{"lib"},
		Short:   "List templates, backlog and plans",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ShowLibraryUseCase().Execute(cmd.Context(), usecase.ShowLibraryInput{})
			if err != nil {
				return err
			}
			s := tui.DefaultStyles()
			w := cmd.OutOrStdout()

			_, _ = fmt.Fprintln(w, s.HeaderText.Render("Templates"))
			printItems(w, out.Templates, s)
			_, _ = fmt.Fprintln(w)
			_, _ = fmt.Fprintln(w, s.HeaderText.Render("Backlog"))
			printItems(w, out.Backlog, s)
			_, _ = fmt.Fprintln(w)
			_, _ = fmt.Fprintln(w, s.HeaderText.Render("Plans"))
			printPlans(w, out.Plans, out.Progress)
			return nil
		},
	}
}

func printItems(w io.Writer, items []domain.Task, s tui.Styles) {
	if len(items) == 0 {
		_, _ = fmt.Fprintln(w, s.Muted.Render("  (empty)"))
		return
	}
	for _, t := range items {
		_, _ = fmt.Fprintln(w, "  "+tui.RenderTaskLine(t, s))
	}
}

// newTemplateCommand creates the template command group.
func newTemplateCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Manage reusable task templates",
	}
	cmd.AddCommand(
		newLibraryAddCommand(c, domain.LibraryTemplates),
		newLibraryRmCommand(c, domain.LibraryTemplates),
		newLibraryUseCommand(c, domain.LibraryTemplates, "use", "Copy a template into today"),
		newLibraryListCommand(c, domain.LibraryTemplates),
	)
	return cmd
}

// newBacklogCommand creates the backlog command group.
func newBacklogCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backlog",
		Short: "Manage deferred and left-over tasks",
	}
	cmd.AddCommand(
		newLibraryAddCommand(c, domain.LibraryBacklog),
		newLibraryRmCommand(c, domain.LibraryBacklog),
		newLibraryUseCommand(c, domain.LibraryBacklog, "promote", "Move a backlog item into today"),
		newLibraryListCommand(c, domain.LibraryBacklog),
	)
	return cmd
}

func newLibraryAddCommand(c *app.Container, kind domain.LibraryKind) *cobra.Command {
	return &cobra.Command{
		Use:   "add <title> [cost]",
		Short: fmt.Sprintf("Add a %s item", kind),
		Long: fmt.Sprintf(`Add a %s item using quick-add input.

Only a number at the end is read as the cost; without one the configured
library default cost applies.`, kind),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.AddLibraryItemUseCase().Execute(cmd.Context(), usecase.AddLibraryItemInput{
				Kind: kind,
				Text: strings.Join(args, " "),
			})
			if err != nil {
				return err
			}
			if out.Item == nil {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Nothing added: the title is empty.")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s %q (%d)\n",
				kind, tui.ShortID(out.Item.ID), out.Item.Title, out.Item.Cost)
			return nil
		},
	}
}

func newLibraryRmCommand(c *app.Container, kind domain.LibraryKind) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   fmt.Sprintf("Remove a %s item", kind),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.RemoveLibraryItemUseCase().Execute(cmd.Context(), usecase.RemoveLibraryItemInput{
				Kind:    kind,
				ItemRef: args[0],
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %s %q\n", kind, out.Item.Title)
			return nil
		},
	}
}

func newLibraryUseCommand(c *app.Container, kind domain.LibraryKind, use, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.UseLibraryItemUseCase().Execute(cmd.Context(), usecase.UseLibraryItemInput{
				Kind:    kind,
				ItemRef: args[0],
			})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Added %s %q (%d) to today\n", tui.ShortID(out.Task.ID), out.Task.Title, out.Task.Cost)
			printBudget(w, out.Budget)
			return nil
		},
	}
}

func newLibraryListCommand(c *app.Container, kind domain.LibraryKind) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   fmt.Sprintf("List %s items", kind),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ShowLibraryUseCase().Execute(cmd.Context(), usecase.ShowLibraryInput{})
			if err != nil {
				return err
			}
			items := out.Backlog
			if kind == domain.LibraryTemplates {
				items = out.Templates
			}
			printItems(cmd.OutOrStdout(), items, tui.DefaultStyles())
			return nil
		},
	}
}

// printPlans writes plans as a table with their schedule and progress.
func printPlans(w io.Writer, plans []domain.ScheduledTask, progress []domain.PlanProgress) {
	if len(plans) == 0 {
		_, _ = fmt.Fprintln(w, "  (empty)")
		return
	}
	byID := make(map[string]domain.PlanProgress, len(progress))
	for _, p := range progress {
		byID[p.Plan.ID] = p
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("ID", "TITLE", "COST", "SCHEDULE", "PROGRESS")
	for _, plan := range plans {
		prog := "-"
		if p, ok := byID[plan.ID]; ok {
			prog = fmt.Sprintf("%d/%d", p.Count, p.Target)
			if p.Satisfied {
				prog += " ✓"
			}
		}
		tbl.AddRow(tui.ShortID(plan.ID), plan.Title, plan.Cost, describeSchedule(plan.Config), prog)
	}
	_, _ = fmt.Fprintln(w, tbl)
}
