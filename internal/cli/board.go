package cli

import (
	"github.com/spf13/cobra"

	"github.com/runoshun/willflow/internal/app"
	"github.com/runoshun/willflow/internal/tui"
)

// launchBoardFunc is the function used to launch the board.
// It can be replaced in tests to avoid starting a real terminal program.
var launchBoardFunc = launchBoard

// launchBoard runs the interactive board until the user quits.
func launchBoard(c *app.Container) error {
	return tui.Run(c)
}

// newBoardCommand creates the board command.
func newBoardCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "board",
		Aliases: []string{"tui"},
		Short:   "Open the interactive board",
		Long: `Open the interactive board for today.

Keys: j/k move, space toggles completion, a adds a task, e edits the diary,
b defers a plan instance, d removes, f fills the remaining budget,
s starts execution, N closes the day, ? shows all keys, q quits.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchBoardFunc(c)
		},
	}
}
