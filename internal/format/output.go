package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

type Format string

const (
	JSON Format = "json"
	EDN  Format = "edn"
)

// Parse resolves a --format value. An empty value means JSON.
func Parse(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", JSON:
		return JSON, nil
	case EDN:
		return EDN, nil
	default:
		return "", fmt.Errorf("unknown format: %s (want json|edn)", s)
	}
}

// Write writes v to w in the requested format followed by a newline.
func Write(w io.Writer, v any, format string, pretty bool) error {
	f, err := Parse(format)
	if err != nil {
		return err
	}
	if f == EDN {
		return WriteEDN(w, v, pretty)
	}
	return WriteJSON(w, v, pretty)
}

// WriteJSON writes strict JSON. Card text is user-authored, so HTML escaping
// is disabled to keep "<" and "&" readable.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
