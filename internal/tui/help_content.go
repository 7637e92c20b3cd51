package tui

import (
	"github.com/charmbracelet/glamour"
)

// Help content rendered as markdown in the help overlays.
const (
	FeatureHelp = `
# AI Tool Pages

Each page has a prompt, a set of options and an example of the output the
tool will produce.

## Keys

| Key | Action |
|-----|--------|
| Enter | Run the tool |
| Tab | Switch focus between prompt and options |
| ←/→ | Pick an option (options focused) |
| PgUp/PgDn | Scroll the example output |
| ? | Show this help (options focused) |
| Esc | Back to the dashboard |

## Status

The tools are still being built. Running one opens the **Under Maintenance**
notice; your prompt and options stay as you left them. Close the notice with
Enter or Esc.
`

	SettingsHelp = `
# Settings

## Tabs

1. **General** - dark mode, language, data export
2. **Account** - profile, password, email, log out, delete account
3. **Search History** - your recent searches
4. **Privacy & Security** - two-factor authentication, activity status, data collection, sessions
5. **Notifications** - push, email updates and notification types

## Keys

| Key | Action |
|-----|--------|
| Tab / → | Next tab |
| Shift+Tab / ← | Previous tab |
| 1-5 | Jump to a tab |
| ↑/↓ | Move between rows |
| Enter / Space | Toggle or open the selected row |
| Esc | Back |

## Search History

| Key | Action |
|-----|--------|
| d | Delete the selected search |
| c | Clear all searches (asks for confirmation) |
| / | Filter searches |

## Deleting your account

Deleting the account asks you to type the confirmation phrase exactly
(**DELETE** unless configured otherwise).
Anything else keeps the Delete button disabled.

Preferences are kept for this session only.
`
)

// renderHelp renders markdown help, falling back to the raw text.
func renderHelp(content string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(76),
	)
	if err != nil {
		return content
	}
	out, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return out
}
