// Package cli provides the command-line interface for willflow.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/willflow/internal/app"
)

// Command group IDs.
const (
	groupDay      = "day"
	groupLibrary  = "library"
	groupInsights = "insights"
	groupData     = "data"
)

// NewRootCommand creates the root command for willflow.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "willflow",
		Short: "Daily willpower budget planner",
		Long: `willflow treats willpower as a daily budget of points.

Plan the day by giving tasks a cost, start execution, tick tasks off,
and close the day. Leftover points shrink tomorrow's capacity; spending
the whole pool keeps it. Without a subcommand the interactive board opens.

Ids may be given as any unique prefix.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			// Skip if container is nil (e.g. in tests)
			if c == nil || c.AppConfig == nil {
				return
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchBoardFunc(c)
		},
	}

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupDay, Title: "Day Commands:"},
		&cobra.Group{ID: groupLibrary, Title: "Library Commands:"},
		&cobra.Group{ID: groupInsights, Title: "Insights:"},
		&cobra.Group{ID: groupData, Title: "Data & Settings:"},
	)

	day := []*cobra.Command{
		newTodayCommand(c),
		newAddCommand(c),
		newDoneCommand(c),
		newRmCommand(c),
		newDeferCommand(c),
		newFillCommand(c),
		newDiaryCommand(c),
		newCostCommand(c),
		newNoteCommand(c),
		newStartCommand(c),
		newNewDayCommand(c),
		newBoardCommand(c),
	}
	library := []*cobra.Command{
		newLibraryCommand(c),
		newTemplateCommand(c),
		newBacklogCommand(c),
		newPlanCommand(c),
	}
	insights := []*cobra.Command{
		newInsightsCommand(c),
		newHistoryCommand(c),
	}
	data := []*cobra.Command{
		newExportCommand(c),
		newImportCommand(c),
		newSettingsCommand(c),
		newConfigCommand(c),
	}

	for group, cmds := range map[string][]*cobra.Command{
		groupDay:      day,
		groupLibrary:  library,
		groupInsights: insights,
		groupData:     data,
	} {
		for _, cmd := range cmds {
			cmd.GroupID = group
			root.AddCommand(cmd)
		}
	}

	return root
}
