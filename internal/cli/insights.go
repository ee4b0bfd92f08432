package cli

import (
	"fmt"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/runoshun/willflow/internal/app"
	"github.com/runoshun/willflow/internal/tui"
	"github.com/runoshun/willflow/internal/usecase"
)

// newInsightsCommand creates the insights command.
func newInsightsCommand(c *app.Container) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Show the awareness heatmap and history statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ShowInsightsUseCase().Execute(cmd.Context(), usecase.ShowInsightsInput{Days: days})
			if err != nil {
				return err
			}
			s := tui.DefaultStyles()
			w := cmd.OutOrStdout()

			_, _ = fmt.Fprintln(w, s.HeaderText.Render(fmt.Sprintf("Last %d days", len(out.Heatmap))))
			_, _ = fmt.Fprintln(w, tui.RenderHeatmap(out.Heatmap, s))
			_, _ = fmt.Fprintln(w)

			tbl := uitable.New()
			tbl.Separator = "  "
			tbl.AddRow("Base capacity:", fmt.Sprintf("%d WP", out.BaseMax))
			tbl.AddRow("Days recorded:", out.Stats.Days)
			tbl.AddRow("Awakening days:", out.Stats.AwakeningDays)
			tbl.AddRow("Tasks per day:", out.Stats.MeanTasksCompleted)
			if out.HasTopTask {
				tbl.AddRow("Most completed:", fmt.Sprintf("%s (%d)", out.TopTask, out.TopTaskCount))
			} else {
				tbl.AddRow("Most completed:", "-")
			}
			_, _ = fmt.Fprintln(w, tbl)
			return nil
		},
	}

	cmd.Flags().IntVarP(&days, "days", "d", 0, "Heatmap span in days (default 30)")

	return cmd
}

// newHistoryCommand creates the history command.
func newHistoryCommand(c *app.Container) *cobra.Command {
	var limit int
	var diary bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List closed days, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ShowHistoryUseCase().Execute(cmd.Context(), usecase.ShowHistoryInput{Limit: limit})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if out.Total == 0 {
				_, _ = fmt.Fprintln(w, "No days closed yet.")
				return nil
			}

			tbl := uitable.New()
			tbl.Separator = "  "
			tbl.MaxColWidth = 60
			tbl.Wrap = true
			tbl.AddRow("DATE", "BASE", "BALANCE", "TASKS", "SPENT", "COMPLETED")
			for _, r := range out.Records {
				balance := fmt.Sprintf("%d", r.FinalBalance)
				if r.Awakening {
					balance += " ▲"
				}
				tbl.AddRow(r.Date, r.BaseMax, balance, r.TasksCompleted, r.TotalCostConsumed,
					strings.Join(r.CompletedTaskTitles, ", "))
				if diary && r.Diary != "" {
					tbl.AddRow("", "", "", "", "", "“"+r.Diary+"”")
				}
			}
			_, _ = fmt.Fprintln(w, tbl)
			if len(out.Records) < out.Total {
				_, _ = fmt.Fprintf(w, "(%d of %d days)\n", len(out.Records), out.Total)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show at most n days (0 shows all)")
	cmd.Flags().BoolVar(&diary, "diary", false, "Include diary text")

	return cmd
}
