package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func generateCommandsHelp() string {
	sectionStyle := lipgloss.NewStyle().Foreground(colorTeal).Bold(true).Underline(true)
	cmdStyle := lipgloss.NewStyle().Foreground(colorTealLight).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(colorYellow).Bold(true)

	var cmds strings.Builder
	cmds.WriteString("\n")

	addCmd := func(name, desc string) {
		cmds.WriteString(fmt.Sprintf("  %s %s\n", cmdStyle.Render(fmt.Sprintf("%-26s", name)), descStyle.Render(desc)))
	}
	addKey := func(key, desc string) {
		cmds.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(fmt.Sprintf("%-26s", key)), descStyle.Render(desc)))
	}

	cmds.WriteString(sectionStyle.Render("CORE CLI:") + "\n")
	addCmd("uhuru", "Open the dashboard")
	addCmd("uhuru open <page>", "Open a tool page directly")
	addCmd("uhuru pages", "List tool pages")
	addCmd("uhuru history list [query]", "Show search history")
	addCmd("uhuru history delete <id>", "Delete one search")
	addCmd("uhuru history clear", "Clear search history")
	addCmd("uhuru account delete", "Request account deletion")
	addCmd("uhuru state", "Print the settings state as JSON")
	addCmd("uhuru config init|show", "Write or print the configuration")
	cmds.WriteString("\n")

	cmds.WriteString(sectionStyle.Render("NAVIGATION:") + "\n")
	addKey("↑ / ↓", "Move Up / Down")
	addKey("/", "Filter")
	addKey("Enter", "Select / Confirm")
	addKey("Esc / q", "Go Back / Exit")
	addKey("l / s / g", "Log In / Sign Up / Get Started")
	cmds.WriteString("\n")

	cmds.WriteString(sectionStyle.Render("TOOL PAGES:") + "\n")
	addKey("Enter", "Run the tool")
	addKey("Tab", "Prompt / Options focus")
	addKey("← / →", "Pick an option")
	addKey("?", "Help")
	cmds.WriteString("\n")

	cmds.WriteString(sectionStyle.Render("SETTINGS:") + "\n")
	addKey("Tab / 1-5", "Switch tab")
	addKey("Enter / Space", "Toggle or open")
	addKey("d", "Delete search (Search History)")
	addKey("c", "Clear all searches (Search History)")

	cmds.WriteString("\n" + helpStyle.Render("  Press Esc to go back"))

	return cmds.String()
}
