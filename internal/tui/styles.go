package tui

import "github.com/charmbracelet/lipgloss"

// Color Palette (teal brand on dark background)
var (
	colorTeal      = lipgloss.Color("#0F9E99")
	colorTealLight = lipgloss.Color("#5EEAD4")
	colorDeep      = lipgloss.Color("#133236")
	colorGreen     = lipgloss.Color("#50FA7B")
	colorRed       = lipgloss.Color("#FF5555")
	colorOrange    = lipgloss.Color("#FFB86C")
	colorIvory     = lipgloss.Color("#EFE9E0")

	colorGray   = lipgloss.Color("#6272A4")
	colorYellow = lipgloss.Color("#F1FA8C")
)

// Shared Styles
var (
	docStyle = lipgloss.NewStyle().Margin(0, 0)

	// Titles
	titleStyle = lipgloss.NewStyle().
			Foreground(colorTealLight).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorTeal)

	descStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))

	// Input boxes
	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray).
			Padding(0, 1)

	focusedInputBoxStyle = inputBoxStyle.
				BorderForeground(colorTeal)

	// Option chips
	optionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Padding(0, 1)

	selectedOptionStyle = lipgloss.NewStyle().
				Foreground(colorIvory).
				Background(colorTeal).
				Bold(true).
				Padding(0, 1)

	// Primary call-to-action
	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(colorTeal).
			Padding(0, 3).
			Bold(true)

	disabledButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Background(lipgloss.Color("236")).
				Padding(0, 3)

	dangerButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("255")).
				Background(colorRed).
				Padding(0, 3).
				Bold(true)

	// Dialogs
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorTeal).
			Padding(1, 3).
			Width(56).
			Align(lipgloss.Center)

	dangerModalStyle = modalStyle.
				BorderForeground(colorRed)

	// Toast
	toastStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(colorTeal).
			Bold(true).
			Padding(0, 2)

	// Helpers
	subtleStyle = lipgloss.NewStyle().Foreground(colorGray)

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	warnStyle = lipgloss.NewStyle().Foreground(colorOrange)

	onStyle  = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	offStyle = lipgloss.NewStyle().Foreground(colorGray)

	// Settings tabs
	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Padding(0, 2)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(colorTealLight).
			Background(colorDeep).
			Bold(true).
			Padding(0, 2)

	cursorStyle = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
)
