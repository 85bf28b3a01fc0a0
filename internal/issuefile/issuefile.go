// Package issuefile loads issue snapshots used to seed a card.
package issuefile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"issuecard/internal/model"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var ErrBlankTitle = errors.New("title is required")

// Extensions lists the file extensions Load understands.
var Extensions = []string{".toml", ".yaml", ".yml", ".json"}

// IsIssueFile reports whether path has an extension Load can parse.
func IsIssueFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(strings.TrimSpace(path)))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

func Load(path string) (model.Issue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Issue{}, fmt.Errorf("issue file load failed (%s): %w", path, err)
	}
	it, err := Parse(filepath.Ext(path), data)
	if err != nil {
		return model.Issue{}, fmt.Errorf("issue file parse failed (%s): %w", path, err)
	}
	if err := Validate(it); err != nil {
		return model.Issue{}, fmt.Errorf("issue file invalid (%s): %w", path, err)
	}
	return it, nil
}

// Parse decodes data according to ext (".toml", ".yaml"/".yml", ".json").
// Unknown keys are rejected in every format.
func Parse(ext string, data []byte) (model.Issue, error) {
	var it model.Issue
	switch strings.ToLower(ext) {
	case ".toml":
		md, err := toml.Decode(string(data), &it)
		if err != nil {
			return model.Issue{}, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, 0, len(undecoded))
			for _, k := range undecoded {
				keys = append(keys, k.String())
			}
			sort.Strings(keys)
			return model.Issue{}, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&it); err != nil {
			return model.Issue{}, err
		}
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&it); err != nil {
			return model.Issue{}, err
		}
	default:
		return model.Issue{}, fmt.Errorf("unsupported extension %q (want %s)", ext, strings.Join(Extensions, ", "))
	}
	return it, nil
}

func Validate(it model.Issue) error {
	if strings.TrimSpace(it.Title) == "" {
		return ErrBlankTitle
	}
	return nil
}
