package demo

import (
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/glamour"
)

// RenderSample renders the preview for the selected option. Markdown goes
// through glamour, code through chroma. On any renderer error the raw sample
// is returned.
func RenderSample(p Page, optionIdx, width int) string {
	sample := p.SampleFor(optionIdx)
	if sample == "" {
		return ""
	}

	switch p.Preview {
	case PreviewCode:
		lang := ""
		if optionIdx >= 0 && optionIdx < len(p.Options) {
			lang = p.Options[optionIdx].ID
		}
		return highlight(sample, lang)
	case PreviewMarkdown:
		return renderMarkdown(sample, width)
	}
	return sample
}

func renderMarkdown(md string, width int) string {
	if width < 20 {
		width = 80
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}

func highlight(code, lang string) string {
	var b strings.Builder
	if err := quick.Highlight(&b, code, lang, "terminal256", "dracula"); err != nil {
		return code
	}
	return b.String()
}
