package cli

import (
	"fmt"

	"issuecard/internal/tui"

	"github.com/spf13/cobra"
)

func newRenderCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Print the card once without starting the TUI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := resolveIssue(cmd, app)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tui.RenderStatic(it, runOptions(app)))
			return err
		},
	}
}
