package settings

import (
	"github.com/phravins/uhuru/internal/gate"
	"github.com/phravins/uhuru/internal/history"
)

// Snapshot is a plain description of everything the Settings page shows.
type Snapshot struct {
	Tab               string          `json:"tab"`
	DarkMode          bool            `json:"dark_mode"`
	Language          string          `json:"language"`
	PushNotifications bool            `json:"push_notifications"`
	EmailUpdates      bool            `json:"email_updates"`
	NotifyTypes       []NotifyType    `json:"notify_types"`
	Profile           Profile         `json:"profile"`
	Sessions          []Session       `json:"sessions"`
	History           []history.Entry `json:"history"`
	ClearHistoryGate  gate.Snapshot   `json:"clear_history_gate"`
	DeleteAccountGate gate.Snapshot   `json:"delete_account_gate"`
	Notice            string          `json:"notice,omitempty"`
}

func (s *Settings) Snapshot() Snapshot {
	snap := Snapshot{
		Tab:               s.tab.String(),
		DarkMode:          s.darkMode,
		Language:          s.language,
		PushNotifications: s.push,
		EmailUpdates:      s.emailUpdates,
		NotifyTypes:       s.NotifyTypes(),
		Profile:           s.profile,
		Sessions:          append([]Session(nil), Sessions...),
		History:           s.history.Entries(),
		ClearHistoryGate:  s.history.ClearGate().Snapshot(),
		DeleteAccountGate: s.deletionGate.Snapshot(),
	}
	if n, ok := s.bus.Active(); ok {
		snap.Notice = n.Text
	}
	return snap
}
