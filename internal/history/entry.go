package history

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v2"

	"github.com/phravins/uhuru/assets"
)

const (
	DefaultTool      = "General"
	DefaultTimestamp = "Just now"
)

var ErrInvalidSeed = errors.New("invalid history seed")

// Entry is one row of search history. Timestamp is a display string such as
// "2 hours ago", not a parsed time.
type Entry struct {
	ID        int    `yaml:"id" json:"id"`
	Query     string `yaml:"query" json:"query"`
	Tool      string `yaml:"tool" json:"tool"`
	Timestamp string `yaml:"timestamp" json:"timestamp"`
}

func (e Entry) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.ID, validation.Required, validation.Min(1)),
		validation.Field(&e.Query, validation.Required),
	)
}

// Provider supplies the seed entries. It is read once.
type Provider interface {
	Entries() ([]Entry, error)
}

// StaticProvider serves a fixed slice.
type StaticProvider []Entry

func (p StaticProvider) Entries() ([]Entry, error) {
	out := make([]Entry, len(p))
	copy(out, p)
	return out, nil
}

// YAMLProvider decodes entries from a YAML document with a top-level
// "history" list.
type YAMLProvider struct {
	Data []byte
}

// EmbeddedProvider serves the demo history bundled with the binary.
func EmbeddedProvider() YAMLProvider {
	data, err := assets.GetSeed("history.yaml")
	if err != nil {
		// The file is embedded at build time; a missing file is a packaging bug.
		panic(fmt.Sprintf("history: embedded seed missing: %v", err))
	}
	return YAMLProvider{Data: data}
}

func (p YAMLProvider) Entries() ([]Entry, error) {
	var doc struct {
		History []Entry `yaml:"history"`
	}
	if err := yaml.Unmarshal(p.Data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}
	return doc.History, nil
}

// Load reads the provider, fills optional fields and rejects malformed or
// duplicate entries.
func Load(p Provider) ([]Entry, error) {
	raw, err := p.Entries()
	if err != nil {
		return nil, err
	}

	seen := make(map[int]bool, len(raw))
	entries := make([]Entry, 0, len(raw))
	for i, e := range raw {
		e.Query = strings.TrimSpace(e.Query)
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrInvalidSeed, i, err)
		}
		if seen[e.ID] {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrInvalidSeed, e.ID)
		}
		seen[e.ID] = true

		if strings.TrimSpace(e.Tool) == "" {
			e.Tool = DefaultTool
		}
		if strings.TrimSpace(e.Timestamp) == "" {
			e.Timestamp = DefaultTimestamp
		}
		entries = append(entries, e)
	}
	return entries, nil
}
