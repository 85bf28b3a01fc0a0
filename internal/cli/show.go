package cli

import (
	"issuecard/internal/model"

	"github.com/spf13/cobra"
)

type showOutput struct {
	model.Issue
	Badge string `json:"badge"`
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the resolved issue (seed file plus flags)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := resolveIssue(cmd, app)
			if err != nil {
				return err
			}
			return writeOut(cmd, app, showOutput{Issue: it, Badge: it.Badge()})
		},
	}
}
