package model

import (
	"fmt"
	"strings"
)

// DefaultBadgePrefix is the team key shown before an issue index.
const DefaultBadgePrefix = "STA"

// Issue is the caller-owned snapshot a card renders. Cards never mutate it;
// edits are proposed back to the owner through callbacks.
type Issue struct {
	Index       int    `json:"index" toml:"index" yaml:"index"`
	Title       string `json:"title" toml:"title" yaml:"title"`
	Description string `json:"description,omitempty" toml:"description" yaml:"description"`
	Footer      string `json:"footer,omitempty" toml:"footer" yaml:"footer"`
	BadgePrefix string `json:"prefix,omitempty" toml:"prefix" yaml:"prefix"`
}

// Badge formats the display label for the issue index (e.g. "STA-12").
func (i Issue) Badge() string {
	return Badge(i.BadgePrefix, i.Index)
}

func Badge(prefix string, index int) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = DefaultBadgePrefix
	}
	return fmt.Sprintf("%s-%d", prefix, index)
}

type CardEventKind string

const (
	CardEventEdit   CardEventKind = "edit"
	CardEventDelete CardEventKind = "delete"
)

// CardEvent records one callback invocation made by a card.
type CardEvent struct {
	Kind        CardEventKind `json:"kind"`
	Title       string        `json:"title,omitempty"`
	Description *string       `json:"description,omitempty"`
}
