// Package demo loads the static content shown on each AI tool page: titles,
// option lists and the example output preview.
package demo

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/sahilm/fuzzy"
	"gopkg.in/yaml.v2"

	"github.com/phravins/uhuru/assets"
)

// Preview kinds.
const (
	PreviewNone     = "none"
	PreviewMarkdown = "markdown"
	PreviewCode     = "code"
)

var ErrUnknownPage = errors.New("unknown page")

type Option struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Detail string `yaml:"detail"`
	Sample string `yaml:"sample"`
}

type Page struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Action      string   `yaml:"action"`
	InputLabel  string   `yaml:"input_label"`
	Placeholder string   `yaml:"placeholder"`
	Experience  string   `yaml:"experience"`
	Preview     string   `yaml:"preview"`
	Sample      string   `yaml:"sample"`
	Options     []Option `yaml:"options"`
}

func (p Page) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ID, validation.Required),
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.Preview, validation.In(PreviewNone, PreviewMarkdown, PreviewCode)),
	)
}

// MaintenanceMessage is the dialog text shown when the page's action is intercepted.
func (p Page) MaintenanceMessage() string {
	return fmt.Sprintf("We're currently working hard to bring you an amazing %s experience. "+
		"This feature is under active development and will be available soon.", p.Experience)
}

// SampleFor returns the preview for the option at idx, falling back to the
// page-level sample.
func (p Page) SampleFor(idx int) string {
	if idx >= 0 && idx < len(p.Options) && p.Options[idx].Sample != "" {
		return p.Options[idx].Sample
	}
	return p.Sample
}

type Catalog struct {
	Pages []Page `yaml:"pages"`
}

// Parse decodes a catalog and fills defaults for fields the page left out.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse demo catalog: %w", err)
	}

	seen := make(map[string]bool, len(c.Pages))
	for i := range c.Pages {
		p := &c.Pages[i]
		if p.Preview == "" {
			p.Preview = PreviewNone
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("demo page %d: %w", i, err)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("demo page %q defined twice", p.ID)
		}
		seen[p.ID] = true

		if p.Action == "" {
			p.Action = "Generate"
		}
		if p.InputLabel == "" {
			p.InputLabel = "Prompt"
		}
		if p.Experience == "" {
			p.Experience = strings.ToLower(p.Title)
		}
	}
	return &c, nil
}

// Load reads the catalog bundled with the binary.
func Load() (*Catalog, error) {
	data, err := assets.GetSeed("demo.yaml")
	if err != nil {
		return nil, fmt.Errorf("read demo catalog: %w", err)
	}
	return Parse(data)
}

func (c *Catalog) Page(id string) (Page, error) {
	for _, p := range c.Pages {
		if p.ID == id {
			return p, nil
		}
	}
	return Page{}, fmt.Errorf("%w: %s", ErrUnknownPage, id)
}

// IDs lists page ids in catalog order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.Pages))
	for i, p := range c.Pages {
		ids[i] = p.ID
	}
	return ids
}

// Match resolves a loosely typed page name: an exact id wins, otherwise the
// best fuzzy match over ids and titles.
func (c *Catalog) Match(query string) (Page, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if p, err := c.Page(q); err == nil {
		return p, nil
	}

	targets := make([]string, len(c.Pages))
	for i, p := range c.Pages {
		targets[i] = p.ID + " " + strings.ToLower(p.Title)
	}
	matches := fuzzy.Find(q, targets)
	if len(matches) == 0 {
		return Page{}, fmt.Errorf("%w: %s", ErrUnknownPage, query)
	}
	return c.Pages[matches[0].Index], nil
}
