package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/phravins/uhuru/internal/notice"
)

// StandaloneWrapper wraps a model to handle BackMsg/Quit
// This allows models designed for nested use (returning BackMsg) to work standalone (Quitting on BackMsg)
type StandaloneWrapper struct {
	model tea.Model
	bus   *notice.Bus
	width int
}

func Wrap(m tea.Model, bus *notice.Bus) StandaloneWrapper {
	return StandaloneWrapper{model: m, bus: bus}
}

func (m StandaloneWrapper) Init() tea.Cmd {
	return m.model.Init()
}

func (m StandaloneWrapper) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case BackMsg:
		return m, tea.Quit
	case NoticeExpiredMsg:
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}

	newModel, cmd := m.model.Update(msg)
	m.model = newModel
	return m, cmd
}

func (m StandaloneWrapper) View() string {
	return withToast(m.model.View(), m.bus, m.width)
}
