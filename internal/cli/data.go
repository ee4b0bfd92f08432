package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/runoshun/willflow/internal/app"
	"github.com/runoshun/willflow/internal/infra/backup"
	"github.com/runoshun/willflow/internal/usecase"
)

// newExportCommand creates the export command.
func newExportCommand(c *app.Container) *cobra.Command {
	var format, dir string
	var stdout bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a backup of all data",
		Long: `Write a backup of all data to willpower-backup-<date>.<format>.

Defaults for --dir and --format come from the [backup] config section.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("format") && c.AppConfig != nil {
				format = c.AppConfig.Backup.Format
			}
			if !cmd.Flags().Changed("dir") && c.AppConfig != nil {
				dir = c.AppConfig.Backup.Dir
			}
			in := usecase.ExportBackupInput{Dir: dir, Format: format}
			if stdout {
				in.Out = cmd.OutOrStdout()
			}
			out, err := c.ExportBackupUseCase().Execute(cmd.Context(), in)
			if err != nil {
				return err
			}
			if out.Path != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s (%d bytes)\n", out.Path, out.Bytes)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Backup format: json or yaml")
	cmd.Flags().StringVar(&dir, "dir", ".", "Directory to write the backup to")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "Write the backup to stdout instead of a file")

	return cmd
}

// newImportCommand creates the import command.
func newImportCommand(c *app.Container) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all data with a backup",
		Long: `Replace all data with a backup file.

The format is taken from the file extension unless --format is given.
A document without a numeric baseMax, or without history and templates
lists, is rejected and the current data is left untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read backup: %w", err)
			}
			if format == "" {
				format = backup.FormatFromPath(args[0])
			}
			out, err := c.ImportBackupUseCase().Execute(cmd.Context(), usecase.ImportBackupInput{
				Format:  format,
				Content: content,
			})
			if err != nil {
				return err
			}
			st := out.State
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %s: %d tasks, %d templates, %d plans, %d days of history\n",
				args[0], len(st.TodayTasks), len(st.Templates), len(st.ScheduledTasks), len(st.History))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Backup format: json or yaml (default from extension)")

	return cmd
}

// newSettingsCommand creates the settings command.
func newSettingsCommand(c *app.Container) *cobra.Command {
	var bottomNavOffset bool

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change display settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := usecase.UpdateSettingsInput{}
			if cmd.Flags().Changed("bottom-nav-offset") {
				in.BottomNavOffset = &bottomNavOffset
			}
			out, err := c.UpdateSettingsUseCase().Execute(cmd.Context(), in)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "bottom-nav-offset: %t\n", out.Settings.BottomNavOffset)
			return nil
		},
	}

	cmd.Flags().BoolVar(&bottomNavOffset, "bottom-nav-offset", false, "Leave room below the board footer")

	return cmd
}
