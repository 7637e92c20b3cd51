package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/phravins/uhuru/internal/config"
	"github.com/phravins/uhuru/internal/demo"
	"github.com/phravins/uhuru/internal/history"
	"github.com/phravins/uhuru/internal/notice"
	"github.com/phravins/uhuru/internal/settings"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(m tea.Model, text string) tea.Model {
	for _, r := range text {
		m, _ = m.Update(key(string(r)))
	}
	return m
}

func press(m tea.Model, keys ...string) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = m.Update(key(k))
	}
	return m, cmd
}

func sized(m tea.Model) tea.Model {
	m, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func testCatalog(t *testing.T) *demo.Catalog {
	t.Helper()
	c, err := demo.Load()
	require.NoError(t, err)
	return c
}

func testPage(t *testing.T, id string) demo.Page {
	t.Helper()
	p, err := testCatalog(t).Page(id)
	require.NoError(t, err)
	return p
}

func testSettings(t *testing.T) (*settings.Settings, *notice.Bus) {
	t.Helper()
	bus := notice.NewBus(notice.WithDuration(time.Hour))
	t.Cleanup(bus.Clear)
	s, err := settings.New(config.Default(), history.EmbeddedProvider(), bus, zap.NewNop())
	require.NoError(t, err)
	return s, bus
}

func activeNotice(t *testing.T, bus *notice.Bus) string {
	t.Helper()
	n, ok := bus.Active()
	require.True(t, ok, "expected an active notice")
	return n.Text
}
