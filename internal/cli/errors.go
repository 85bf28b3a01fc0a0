package cli

import (
	"fmt"
	"strconv"
)

type missingTitleError struct {
	seed string
}

func (e missingTitleError) Error() string {
	if e.seed == "" {
		return "title is required (pass --title or --seed <file>)"
	}
	return fmt.Sprintf("title is required (pass --title or set title in %s)", e.seed)
}

func errMissingTitle(seed string) error {
	return missingTitleError{seed: seed}
}

type invalidFlagError struct {
	flag   string
	value  string
	reason string
}

func (e invalidFlagError) Error() string {
	return fmt.Sprintf("invalid --%s %q: %s", e.flag, e.value, e.reason)
}

func invalidFlag(flag, value, reason string) error {
	return invalidFlagError{flag: flag, value: value, reason: reason}
}

func itoa(n int) string { return strconv.Itoa(n) }
