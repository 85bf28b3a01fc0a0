package cli

import (
	"os"
	"strings"

	"issuecard/internal/format"
	"issuecard/internal/issuefile"
	"issuecard/internal/logging"
	"issuecard/internal/model"
	"issuecard/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	PrettyJSON bool
	Format     string

	Seed        string
	Index       int
	Title       string
	Description string
	Footer      string
	Prefix      string
	Width       int
	NoDelete    bool
	ReadOnly    bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "issuecard",
		Short:        "Editable issue card for the terminal",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		Example: strings.TrimSpace(`
  # Edit a card interactively; the final issue is printed on exit
  issuecard --index 12 --title "Fix bug" --description "Crash on save"

  # Seed from a file (shortcut for: issuecard --seed card.toml)
  issuecard card.toml

  # Print the card once without a TUI
  issuecard render --title "Fix bug"
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, app)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if _, err := format.Parse(app.Format); err != nil {
			return invalidFlag("format", app.Format, err.Error())
		}
		if app.Width != 0 && app.Width < 24 {
			return invalidFlag("width", itoa(app.Width), "must be 0 (auto) or at least 24")
		}
		return logging.Configure(logging.ConfigFromEnv(logging.ProfileRuntime))
	}
	cmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		logging.Close()
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&app.Seed, "seed", envOr("ISSUECARD_SEED", ""), "Issue file to seed the card (.toml, .yaml, .yml, .json)")
	pf.IntVar(&app.Index, "index", 0, "Issue index shown in the badge")
	pf.StringVar(&app.Title, "title", "", "Issue title")
	pf.StringVar(&app.Description, "description", "", "Issue description (markdown)")
	pf.StringVar(&app.Footer, "footer", "", "Footer text shown under the card body")
	pf.StringVar(&app.Prefix, "prefix", envOr("ISSUECARD_PREFIX", ""), "Badge prefix (default STA)")
	pf.IntVar(&app.Width, "width", 0, "Card width in columns (0 = fit terminal)")
	pf.BoolVar(&app.NoDelete, "no-delete", false, "Hide the delete action")
	pf.BoolVar(&app.ReadOnly, "read-only", false, "Disable saving edits")
	pf.BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print output")
	pf.StringVar(&app.Format, "format", envOr("ISSUECARD_FORMAT", "json"), "Output format (json|edn)")

	cmd.AddCommand(newRenderCmd(app))
	cmd.AddCommand(newShowCmd(app))

	return cmd
}

func runInteractive(cmd *cobra.Command, app *App) error {
	it, err := resolveIssue(cmd, app)
	if err != nil {
		return err
	}
	res, err := tui.Run(it, runOptions(app))
	if err != nil {
		return err
	}
	return writeOut(cmd, app, res)
}

func runOptions(app *App) tui.RunOptions {
	return tui.RunOptions{
		AllowEdit:   !app.ReadOnly,
		AllowDelete: !app.NoDelete,
		Width:       app.Width,
	}
}

// resolveIssue loads the seed file (if any) and applies explicitly set flags
// on top of it.
func resolveIssue(cmd *cobra.Command, app *App) (model.Issue, error) {
	var it model.Issue
	if app.Seed != "" {
		loaded, err := issuefile.Load(app.Seed)
		if err != nil {
			return model.Issue{}, err
		}
		it = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("index") {
		it.Index = app.Index
	}
	if flags.Changed("title") {
		it.Title = app.Title
	}
	if flags.Changed("description") {
		it.Description = app.Description
	}
	if flags.Changed("footer") {
		it.Footer = app.Footer
	}
	if app.Prefix != "" {
		it.BadgePrefix = app.Prefix
	}

	if err := issuefile.Validate(it); err != nil {
		return model.Issue{}, errMissingTitle(app.Seed)
	}
	return it, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}
