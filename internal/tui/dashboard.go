package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/phravins/uhuru/internal/config"
	"github.com/phravins/uhuru/internal/demo"
	"github.com/phravins/uhuru/internal/interceptor"
)

const (
	itemCommands = "commands"
	itemExit     = "exit"
)

type item struct {
	id, title, desc string
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return i.title + " " + i.id }

// Navigation actions that exist only as buttons in the header.
var navActions = map[string]string{
	"l": "log in",
	"s": "sign up",
	"g": "get started",
}

type DashboardModel struct {
	list         list.Model
	nav          *interceptor.Interceptor
	showCommands bool
	commandView  viewport.Model
	width        int
	height       int
}

func NewDashboard(catalog *demo.Catalog, logger *zap.Logger) DashboardModel {
	if logger == nil {
		logger = zap.NewNop()
	}

	var items []list.Item
	for _, p := range catalog.Pages {
		items = append(items, item{id: p.ID, title: p.Title, desc: p.Description})
	}
	items = append(items,
		item{id: SettingsPageID, title: "Settings", desc: "Preferences, account, search history and privacy"},
		item{id: itemCommands, title: "Uhuru Commands", desc: "List all available commands and keys"},
		item{id: itemExit, title: "Exit", desc: "Quit Uhuru"},
	)

	m := DashboardModel{
		list: list.New(items, list.NewDefaultDelegate(), 0, 0),
		nav:  interceptor.New(interceptor.WithLogger(logger.Named("nav"))),
	}
	m.list.SetShowTitle(false)

	m.commandView = viewport.New(0, 0)
	m.commandView.SetContent(generateCommandsHelp())

	return m
}

func (m DashboardModel) Init() tea.Cmd {
	return nil
}

// Selected returns the id of the highlighted entry.
func (m DashboardModel) Selected() string {
	if i, ok := m.list.SelectedItem().(item); ok {
		return i.id
	}
	return ""
}

func (m DashboardModel) Interceptor() *interceptor.Interceptor { return m.nav }

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.nav.IsOpen() {
			switch msg.String() {
			case "enter", "esc", "q", " ":
				m.nav.Dismiss()
			case "ctrl+c":
				return m, tea.Quit
			}
			return m, nil
		}

		if m.showCommands {
			if msg.String() == "esc" || msg.String() == "q" {
				m.showCommands = false
				return m, nil
			}
			var cmd tea.Cmd
			m.commandView, cmd = m.commandView.Update(msg)
			return m, cmd
		}

		// While the filter prompt is active every key belongs to it.
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch keypress := msg.String(); keypress {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			if m.list.FilterState() == list.FilterApplied {
				break
			}
			return m, tea.Quit
		case "l", "s", "g":
			m.nav.Trigger(navActions[keypress])
			return m, nil
		case "enter":
			i, ok := m.list.SelectedItem().(item)
			if !ok {
				return m, nil
			}
			switch i.id {
			case itemCommands:
				m.showCommands = true
				m.commandView.GotoTop()
				return m, nil
			case itemExit:
				return m, tea.Quit
			case SettingsPageID:
				return m, func() tea.Msg { return SwitchViewMsg{TargetState: StateSettings} }
			default:
				id := i.id
				return m, func() tea.Msg { return SwitchViewMsg{TargetState: StateFeature, Args: id} }
			}
		}

	case tea.MouseMsg:
		if m.showCommands {
			var cmd tea.Cmd
			m.commandView, cmd = m.commandView.Update(msg)
			return m, cmd
		}
		if msg.Button == tea.MouseButtonWheelUp {
			m.list.CursorUp()
			return m, nil
		}
		if msg.Button == tea.MouseButtonWheelDown {
			m.list.CursorDown()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, max(5, msg.Height-v-14))
		m.commandView.Width = msg.Width - 4
		m.commandView.Height = max(0, msg.Height-4)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m DashboardModel) View() string {
	if m.nav.IsOpen() {
		return renderMaintenance(m.nav.Dialog(), m.width, m.height)
	}

	footer := lipgloss.NewStyle().
		Width(m.width).
		Align(lipgloss.Center).
		Foreground(lipgloss.Color("#666666")).
		Render("ALL-IN-ONE AI PLATFORM")

	if m.showCommands {
		return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			m.commandView.View(),
			"\n",
			footer,
		))
	}

	headerStyle := lipgloss.NewStyle().
		Width(m.width).
		Align(lipgloss.Center)

	logo := lipgloss.NewStyle().
		Foreground(colorTeal).
		Bold(true).
		Render(`
  _   _ _   _ _   _ ____  _   _ 
 | | | | | | | | | |  _ \| | | |
 | | | | |_| | | | | |_) | | | |
 | |_| |  _  | |_| |  _ <| |_| |
  \___/|_| |_|\___/|_| \_\\___/ `)

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorIvory).
		Render("Your All-in-One AI Platform")

	version := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666666")).
		Italic(true).
		Render(config.Version)

	nav := helpStyle.Render("[l] Log In   [s] Sign Up   [g] Get Started")

	content := lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render(logo+"\n"+title+"\n"+version+"\n"+nav),
		"\n",
		m.list.View(),
	)

	gap := m.height - 2 - lipgloss.Height(content) - lipgloss.Height(footer)
	if gap < 0 {
		gap = 0
	}

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		content,
		strings.Repeat("\n", gap),
		footer,
	))
}
