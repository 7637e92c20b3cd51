package settings

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/phravins/uhuru/internal/config"
	"github.com/phravins/uhuru/internal/gate"
	"github.com/phravins/uhuru/internal/history"
	"github.com/phravins/uhuru/internal/notice"
)

func newSettings(t *testing.T) (*Settings, *notice.Bus) {
	t.Helper()
	// Long enough that no notice expires while a test runs.
	bus := notice.NewBus(notice.WithDuration(time.Hour))
	t.Cleanup(bus.Clear)
	s, err := New(config.Default(), history.EmbeddedProvider(), bus, zap.NewNop())
	require.NoError(t, err)
	return s, bus
}

func activeText(t *testing.T, bus *notice.Bus) string {
	t.Helper()
	n, ok := bus.Active()
	require.True(t, ok, "expected an active notice")
	return n.Text
}

func TestDefaults(t *testing.T) {
	s, bus := newSettings(t)

	assert.Equal(t, TabGeneral, s.Tab())
	assert.True(t, s.DarkMode())
	assert.Equal(t, "English", s.Language())
	assert.True(t, s.PushNotifications())
	assert.False(t, s.EmailUpdates())
	assert.Equal(t, Profile{Name: "Demo User", Email: "demo@uhuru.ai"}, s.Profile())
	assert.Equal(t, 8, s.History().Len())
	assert.Equal(t, "DELETE", s.DeletionGate().Phrase())

	_, ok := bus.Active()
	assert.False(t, ok)
}

func TestTabsWrap(t *testing.T) {
	s, _ := newSettings(t)

	s.PrevTab()
	assert.Equal(t, TabNotifications, s.Tab())
	s.NextTab()
	assert.Equal(t, TabGeneral, s.Tab())

	s.SetTab(TabHistory)
	assert.Equal(t, "Search History", s.Tab().String())
	s.SetTab(Tab(42))
	assert.Equal(t, TabHistory, s.Tab(), "out of range tab is ignored")
	assert.Len(t, Tabs(), 5)
}

func TestTogglesAreLocal(t *testing.T) {
	s, bus := newSettings(t)

	s.ToggleDarkMode()
	s.TogglePushNotifications()
	s.ToggleEmailUpdates()
	s.ToggleNotifyType(4)
	s.ToggleNotifyType(99)

	assert.False(t, s.DarkMode())
	assert.False(t, s.PushNotifications())
	assert.True(t, s.EmailUpdates())
	assert.True(t, s.NotifyTypes()[4].On)

	got := s.NotifyTypes()
	got[0].On = false
	assert.True(t, s.NotifyTypes()[0].On, "NotifyTypes returns a copy")

	_, ok := bus.Active()
	assert.False(t, ok, "toggles do not raise notices")
}

func TestCycleLanguage(t *testing.T) {
	s, _ := newSettings(t)
	seen := []string{s.Language()}
	for range config.Languages {
		s.CycleLanguage()
		seen = append(seen, s.Language())
	}
	assert.Equal(t, append(append([]string{}, config.Languages...), "English"), seen)
}

func TestDemoActions(t *testing.T) {
	s, bus := newSettings(t)

	for action, want := range demoNotices {
		require.NoError(t, s.Do(action))
		assert.Equal(t, want, activeText(t, bus))
	}

	assert.ErrorIs(t, s.Do("launch-rockets"), ErrUnknownAction)
}

func TestDeleteAccountRequiresExactPhrase(t *testing.T) {
	s, bus := newSettings(t)
	g := s.DeletionGate()

	g.Open()
	require.NoError(t, g.Type("delete"))
	assert.ErrorIs(t, g.Confirm(), gate.ErrInvalidConfirmation)
	assert.Zero(t, s.DeletionRequests())
	assert.True(t, g.IsOpen())

	require.NoError(t, g.Type("DELETE"))
	require.NoError(t, g.Confirm())
	assert.Equal(t, 1, s.DeletionRequests())
	assert.False(t, g.IsOpen())
	assert.Equal(t, AccountDeletedNotice, activeText(t, bus))

	g.Open()
	assert.Empty(t, g.TypedText(), "reopening starts from an empty field")
}

func TestCustomConfirmPhrase(t *testing.T) {
	cfg := config.Default()
	cfg.ConfirmPhrase = "GOODBYE"
	s, err := New(cfg, history.StaticProvider{{ID: 1, Query: "x"}}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "GOODBYE", s.DeletionGate().Phrase())
}

func TestSnapshotJSON(t *testing.T) {
	s, _ := newSettings(t)
	s.SetTab(TabAccount)
	s.DeletionGate().Open()
	require.NoError(t, s.DeletionGate().Type("DEL"))
	require.NoError(t, s.Do(ActionLogOut))

	snap := s.Snapshot()
	assert.Equal(t, "Account", snap.Tab)
	assert.Len(t, snap.History, 8)
	assert.False(t, snap.ClearHistoryGate.Open)
	assert.True(t, snap.DeleteAccountGate.Open)
	assert.Equal(t, "DEL", snap.DeleteAccountGate.Typed)
	assert.False(t, snap.DeleteAccountGate.CanConfirm)
	assert.Equal(t, "Logged out (Demo)", snap.Notice)

	data, err := json.Marshal(snap)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"delete_account_gate":{"open":true,"typed":"DEL","phrase":"DELETE","can_confirm":false}`)
}
