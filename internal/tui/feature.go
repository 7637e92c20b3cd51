package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/phravins/uhuru/internal/demo"
	"github.com/phravins/uhuru/internal/interceptor"
)

const (
	focusInput = iota
	focusOptions
)

// FeatureModel is one AI tool page: a prompt, an option picker, a static
// example preview and a primary action that always lands on the maintenance
// dialog.
type FeatureModel struct {
	page        demo.Page
	input       textinput.Model
	option      int
	focus       int
	interceptor *interceptor.Interceptor
	preview     viewport.Model
	showHelp    bool
	helpView    viewport.Model
	width       int
	height      int
}

func NewFeatureModel(p demo.Page, logger *zap.Logger) FeatureModel {
	if logger == nil {
		logger = zap.NewNop()
	}

	ti := textinput.New()
	ti.Placeholder = p.Placeholder
	ti.Prompt = p.InputLabel + ": "
	ti.CharLimit = 2000
	ti.Width = 60
	ti.Focus()

	hv := viewport.New(80, 20)
	hv.Style = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorTeal).Padding(1, 2)
	hv.SetContent(renderHelp(FeatureHelp))

	m := FeatureModel{
		page:  p,
		input: ti,
		interceptor: interceptor.New(
			interceptor.WithMessage(p.MaintenanceMessage()),
			interceptor.WithLogger(logger.With(zap.String("page", p.ID))),
		),
		preview:  viewport.New(80, 12),
		helpView: hv,
		width:    100,
		height:   40,
	}
	m.refreshPreview()
	return m
}

func (m FeatureModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m FeatureModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(20, msg.Width-20)
		m.preview.Width = max(20, msg.Width-4)
		m.preview.Height = max(5, msg.Height-16)
		m.helpView.Width = max(20, msg.Width-6)
		m.helpView.Height = max(5, msg.Height-10)
		m.refreshPreview()
		return m, nil

	case tea.KeyMsg:
		// The dialog swallows every key until it is closed.
		if m.interceptor.IsOpen() {
			switch msg.String() {
			case "enter", "esc", "q", " ":
				m.interceptor.Dismiss()
			case "ctrl+c":
				return m, tea.Quit
			}
			return m, nil
		}

		if m.showHelp {
			switch msg.String() {
			case "esc", "?", "enter":
				m.showHelp = false
				return m, nil
			default:
				var cmd tea.Cmd
				m.helpView, cmd = m.helpView.Update(msg)
				return m, cmd
			}
		}

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			return m, func() tea.Msg { return BackMsg{} }
		case "enter":
			m.interceptor.Trigger(strings.ToLower(m.page.Action))
			return m, nil
		case "tab", "shift+tab":
			if len(m.page.Options) == 0 {
				return m, nil
			}
			if m.focus == focusInput {
				m.focus = focusOptions
				m.input.Blur()
				return m, nil
			}
			m.focus = focusInput
			cmd := m.input.Focus()
			return m, cmd
		}

		if m.focus == focusOptions {
			switch msg.String() {
			case "left", "h", "up", "k":
				m.selectOption(m.option - 1)
			case "right", "l", "down", "j":
				m.selectOption(m.option + 1)
			case "?":
				m.showHelp = true
				m.helpView.GotoTop()
			case "pgup", "pgdown":
				var cmd tea.Cmd
				m.preview, cmd = m.preview.Update(msg)
				return m, cmd
			}
			return m, nil
		}

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.preview, cmd = m.preview.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *FeatureModel) selectOption(idx int) {
	n := len(m.page.Options)
	if n == 0 {
		return
	}
	m.option = (idx + n) % n
	m.refreshPreview()
}

func (m *FeatureModel) refreshPreview() {
	m.preview.SetContent(demo.RenderSample(m.page, m.option, m.preview.Width-2))
	m.preview.GotoTop()
}

// Input returns the text typed into the prompt.
func (m FeatureModel) Input() string { return m.input.Value() }

// Option returns the index of the selected option.
func (m FeatureModel) Option() int { return m.option }

func (m FeatureModel) Page() demo.Page { return m.page }

func (m FeatureModel) Interceptor() *interceptor.Interceptor { return m.interceptor }

func (m FeatureModel) View() string {
	if m.interceptor.IsOpen() {
		return renderMaintenance(m.interceptor.Dialog(), m.width, m.height)
	}

	if m.showHelp {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			lipgloss.JoinVertical(lipgloss.Center,
				lipgloss.NewStyle().Foreground(colorTealLight).Bold(true).MarginBottom(1).Render(m.page.Title+" Help"),
				m.helpView.View(),
				helpStyle.MarginTop(1).Render("Press [Esc] or [?] to go back"),
			),
		)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.page.Title))
	b.WriteString("\n")
	b.WriteString(descStyle.Render(m.page.Description))
	b.WriteString("\n\n")

	if len(m.page.Options) > 0 {
		chips := make([]string, 0, len(m.page.Options))
		for i, o := range m.page.Options {
			label := o.Name
			if i == m.option {
				chips = append(chips, selectedOptionStyle.Render(label))
			} else {
				chips = append(chips, optionStyle.Render(label))
			}
		}
		b.WriteString(lipgloss.NewStyle().Width(max(20, m.width-4)).Render(strings.Join(chips, " ")))
		if d := m.page.Options[m.option].Detail; d != "" {
			b.WriteString("\n" + subtleStyle.Render(d))
		}
		b.WriteString("\n\n")
	}

	box := inputBoxStyle
	if m.focus == focusInput {
		box = focusedInputBoxStyle
	}
	b.WriteString(box.Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(buttonStyle.Render(m.page.Action))
	b.WriteString("\n\n")

	if m.page.Preview != demo.PreviewNone {
		b.WriteString(subtleStyle.Render("Example output"))
		b.WriteString("\n")
		b.WriteString(m.preview.View())
		b.WriteString("\n")
	}

	hint := fmt.Sprintf("Enter %s • Tab switch focus • ←/→ options • [?] Help • Esc back", m.page.Action)
	b.WriteString(helpStyle.Render(hint))

	return docStyle.Render(b.String())
}
