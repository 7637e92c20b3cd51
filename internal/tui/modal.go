package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/phravins/uhuru/internal/gate"
	"github.com/phravins/uhuru/internal/interceptor"
	"github.com/phravins/uhuru/internal/notice"
)

// renderMaintenance draws the shared "Under Maintenance" dialog.
func renderMaintenance(d interceptor.Dialog, width, height int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(colorTealLight).Bold(true).Render("⚙  " + d.Title))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(colorTeal).Bold(true).Render(d.Company))
	b.WriteString("\n\n")
	b.WriteString(descStyle.Width(48).Render(d.Message))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(colorTealLight).Render(d.Footer))
	b.WriteString("\n\n")
	b.WriteString(buttonStyle.Render("Got it!"))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("Enter / Esc to close"))

	return place(width, height, modalStyle.Render(b.String()))
}

// renderConfirm draws a confirmation dialog. For typed gates input is the
// rendered text field; the confirm button is dimmed until the gate allows it.
func renderConfirm(title, body, confirmLabel string, g *gate.Gate, input string, width, height int) string {
	style := modalStyle
	titleColor := colorTealLight
	if g.Kind() == gate.Typed {
		style = dangerModalStyle
		titleColor = colorRed
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(titleColor).Bold(true).Render(title))
	b.WriteString("\n\n")
	b.WriteString(descStyle.Width(48).Render(body))
	b.WriteString("\n\n")

	if g.Kind() == gate.Typed {
		b.WriteString(subtleStyle.Render("Type " + g.Phrase() + " to confirm:"))
		b.WriteString("\n")
		b.WriteString(focusedInputBoxStyle.Width(40).Render(input))
		b.WriteString("\n\n")
	}

	confirm := disabledButtonStyle.Render(confirmLabel)
	if g.CanConfirm() {
		confirm = dangerButtonStyle.Render(confirmLabel)
	}
	cancel := optionStyle.Render("Cancel")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, cancel, "   ", confirm))
	b.WriteString("\n\n")
	if g.Kind() == gate.Typed {
		b.WriteString(helpStyle.Render("Enter to confirm • Esc to cancel"))
	} else {
		b.WriteString(helpStyle.Render("y / Enter to confirm • n / Esc to cancel"))
	}

	return place(width, height, style.Render(b.String()))
}

func renderToast(n notice.Notice) string {
	return toastStyle.Render("✓ " + n.Text)
}

func place(width, height int, s string) string {
	if width <= 0 || height <= 0 {
		return s
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, s)
}

// withToast puts the active notice, if any, above view.
func withToast(view string, bus *notice.Bus, width int) string {
	if bus == nil {
		return view
	}
	n, ok := bus.Active()
	if !ok {
		return view
	}
	toast := renderToast(n)
	if width > 0 {
		toast = lipgloss.PlaceHorizontal(width, lipgloss.Center, toast)
	}
	return toast + "\n" + view
}
