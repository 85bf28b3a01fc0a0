package main

import (
	"os"
	"strings"

	"issuecard/internal/cli"
	"issuecard/internal/issuefile"
)

// rewriteSeedFileArgs makes `issuecard card.toml` work like
// `issuecard --seed card.toml` (also after `render`/`show`).
//
// Cobra treats a bare positional as a subcommand, so argv is rewritten before
// parsing. Flags may come first, so this looks for the first positional that
// isn't a subcommand name instead of just argv[1].
func rewriteSeedFileArgs(argv []string) []string {
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--seed":        true,
		"--index":       true,
		"--title":       true,
		"--description": true,
		"--footer":      true,
		"--prefix":      true,
		"--width":       true,
		"--format":      true,
	}
	subcommands := map[string]bool{
		"render": true,
		"show":   true,
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		switch {
		case a == "":
			continue
		case a == "--":
			return argv
		case strings.HasPrefix(a, "-"):
			// Unknown flags and --flag=value are skipped without consuming a value.
			if !strings.Contains(a, "=") && valueFlags[a] {
				i++
			}
			continue
		case subcommands[a]:
			continue
		}

		if !issuefile.IsIssueFile(a) {
			return argv
		}
		out := make([]string, 0, len(argv)+1)
		out = append(out, argv[:i]...)
		out = append(out, "--seed")
		out = append(out, argv[i:]...)
		return out
	}
	return argv
}

func main() {
	os.Args = rewriteSeedFileArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
