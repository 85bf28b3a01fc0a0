package format

import (
	"encoding/json"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// WriteEDN writes an EDN rendering of v. Values go through encoding/json
// first so json struct tags decide field names; keys become keywords.
func WriteEDN(w io.Writer, v any, pretty bool) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var x any
	if err := json.Unmarshal(b, &x); err != nil {
		return err
	}

	var sb strings.Builder
	enc := ednEncoder{sb: &sb, pretty: pretty}
	enc.value(x, 0)
	sb.WriteByte('\n')
	_, err = io.WriteString(w, sb.String())
	return err
}

type ednEncoder struct {
	sb     *strings.Builder
	pretty bool
}

func (e ednEncoder) value(v any, level int) {
	switch t := v.(type) {
	case nil:
		e.sb.WriteString("nil")
	case bool:
		e.sb.WriteString(strconv.FormatBool(t))
	case string:
		e.sb.WriteString(strconv.Quote(t))
	case float64:
		if t == float64(int64(t)) {
			e.sb.WriteString(strconv.FormatInt(int64(t), 10))
			return
		}
		e.sb.WriteString(strconv.FormatFloat(t, 'f', -1, 64))
	case []any:
		e.vector(t, level)
	case map[string]any:
		e.mapping(t, level)
	}
}

func (e ednEncoder) vector(xs []any, level int) {
	e.sb.WriteByte('[')
	for i, x := range xs {
		e.sep(i, level+1)
		e.value(x, level+1)
	}
	e.close(len(xs), level)
	e.sb.WriteByte(']')
}

func (e ednEncoder) mapping(m map[string]any, level int) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	e.sb.WriteByte('{')
	for i, k := range keys {
		e.sep(i, level+1)
		e.sb.WriteByte(':')
		e.sb.WriteString(keyword(k))
		e.sb.WriteByte(' ')
		e.value(m[k], level+1)
	}
	e.close(len(keys), level)
	e.sb.WriteByte('}')
}

func (e ednEncoder) sep(i, level int) {
	if e.pretty {
		e.sb.WriteByte('\n')
		e.sb.WriteString(strings.Repeat("  ", level))
		return
	}
	if i > 0 {
		e.sb.WriteByte(' ')
	}
}

func (e ednEncoder) close(n, level int) {
	if e.pretty && n > 0 {
		e.sb.WriteByte('\n')
		e.sb.WriteString(strings.Repeat("  ", level))
	}
}

// keyword converts a JSON field name to an EDN keyword body: camelCase
// becomes kebab-case and whitespace becomes "-".
func keyword(s string) string {
	s = strings.TrimSpace(s)
	var b strings.Builder
	for i, r := range s {
		switch {
		case unicode.IsSpace(r):
			b.WriteByte('-')
		case unicode.IsUpper(r):
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
