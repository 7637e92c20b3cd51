package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDashboardNavActionsAreIntercepted(t *testing.T) {
	m := sized(NewDashboard(testCatalog(t), zap.NewNop()))

	for keypress, action := range navActions {
		m, _ = press(m, keypress)
		dm := m.(DashboardModel)
		require.True(t, dm.Interceptor().IsOpen(), keypress)
		assert.Equal(t, action, dm.Interceptor().LastAction())
		assert.Contains(t, dm.View(), "Under Maintenance")

		m, _ = press(m, "enter")
		assert.False(t, m.(DashboardModel).Interceptor().IsOpen())
	}
}

func TestDashboardOpensPages(t *testing.T) {
	m := sized(NewDashboard(testCatalog(t), nil))
	assert.Equal(t, "chatbot", m.(DashboardModel).Selected())

	_, cmd := press(m, "enter")
	require.NotNil(t, cmd)
	assert.Equal(t, SwitchViewMsg{TargetState: StateFeature, Args: "chatbot"}, cmd())

	m, _ = press(m, "down")
	assert.Equal(t, "text-generator", m.(DashboardModel).Selected())
}

func TestDashboardQuit(t *testing.T) {
	m := sized(NewDashboard(testCatalog(t), nil))
	_, cmd := press(m, "q")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
