// Package settings holds the state behind the Settings page: tabs, in-memory
// preference toggles, the search history and the account deletion gate.
package settings

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/phravins/uhuru/internal/config"
	"github.com/phravins/uhuru/internal/gate"
	"github.com/phravins/uhuru/internal/history"
	"github.com/phravins/uhuru/internal/notice"
)

type Tab int

const (
	TabGeneral Tab = iota
	TabAccount
	TabHistory
	TabPrivacy
	TabNotifications
)

var tabNames = [...]string{"General", "Account", "Search History", "Privacy & Security", "Notifications"}

func (t Tab) String() string {
	if t < 0 || int(t) >= len(tabNames) {
		return "Unknown"
	}
	return tabNames[t]
}

// Tabs lists the tabs in display order.
func Tabs() []Tab {
	return []Tab{TabGeneral, TabAccount, TabHistory, TabPrivacy, TabNotifications}
}

// Demo actions. Each one only shows a notice.
const (
	ActionExportData     = "export-data"
	ActionEditProfile    = "edit-profile"
	ActionChangePassword = "change-password"
	ActionChangeEmail    = "change-email"
	ActionLogOut         = "log-out"
	ActionTwoFactor      = "two-factor"
	ActionActivityStatus = "activity-status"
	ActionDataCollection = "data-collection"
)

var demoNotices = map[string]string{
	ActionExportData:     "Data export started (Demo)",
	ActionEditProfile:    "Profile edit opened (Demo)",
	ActionChangePassword: "Password change form opened (Demo)",
	ActionChangeEmail:    "Email change form opened (Demo)",
	ActionLogOut:         "Logged out (Demo)",
	ActionTwoFactor:      "2FA setup opened (Demo)",
	ActionActivityStatus: "Activity status toggled (Demo)",
	ActionDataCollection: "Data collection toggled (Demo)",
}

const AccountDeletedNotice = "Account deletion request submitted (Demo)"

var ErrUnknownAction = errors.New("unknown settings action")

type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type NotifyType struct {
	Label string `json:"label"`
	On    bool   `json:"on"`
}

type Session struct {
	Device   string `json:"device"`
	LastSeen string `json:"last_seen"`
}

func defaultNotifyTypes() []NotifyType {
	return []NotifyType{
		{Label: "Task completions", On: true},
		{Label: "New feature releases", On: true},
		{Label: "Usage limits warnings", On: true},
		{Label: "Security alerts", On: true},
		{Label: "Tips and tutorials", On: false},
	}
}

// Sessions are fixed demo data.
var Sessions = []Session{
	{Device: "Chrome on MacOS", LastSeen: "Current session"},
	{Device: "Safari on iPhone", LastSeen: "Last active 2 hours ago"},
}

type Settings struct {
	tab          Tab
	darkMode     bool
	language     string
	push         bool
	emailUpdates bool
	notifyTypes  []NotifyType
	profile      Profile

	history       *history.Store
	deletionGate  *gate.Gate
	deleteRequest int

	bus    *notice.Bus
	logger *zap.Logger
}

// New builds the settings state. The history store and the deletion gate
// both report through bus.
func New(cfg *config.Config, p history.Provider, bus *notice.Bus, logger *zap.Logger) (*Settings, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if bus == nil {
		bus = notice.NewBus()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	store, err := history.NewStore(p, bus, logger.Named("history"))
	if err != nil {
		return nil, fmt.Errorf("load search history: %w", err)
	}

	s := &Settings{
		darkMode:     cfg.DarkMode,
		language:     cfg.Language,
		push:         true,
		emailUpdates: false,
		notifyTypes:  defaultNotifyTypes(),
		profile:      Profile{Name: cfg.UserName, Email: cfg.UserEmail},
		history:      store,
		bus:          bus,
		logger:       logger,
	}
	s.deletionGate = gate.NewTyped(cfg.ConfirmPhrase, s.submitDeletion)
	return s, nil
}

func (s *Settings) submitDeletion() {
	s.deleteRequest++
	s.logger.Info("account deletion requested", zap.String("email", s.profile.Email))
	s.bus.Show(AccountDeletedNotice)
}

func (s *Settings) Tab() Tab { return s.tab }

func (s *Settings) SetTab(t Tab) {
	if t < TabGeneral || t > TabNotifications {
		return
	}
	s.tab = t
}

// NextTab and PrevTab wrap around.
func (s *Settings) NextTab() { s.tab = (s.tab + 1) % Tab(len(tabNames)) }

func (s *Settings) PrevTab() { s.tab = (s.tab + Tab(len(tabNames)) - 1) % Tab(len(tabNames)) }

func (s *Settings) DarkMode() bool { return s.darkMode }

func (s *Settings) ToggleDarkMode() { s.darkMode = !s.darkMode }

func (s *Settings) Language() string { return s.language }

// CycleLanguage moves to the next supported language.
func (s *Settings) CycleLanguage() {
	for i, l := range config.Languages {
		if l == s.language {
			s.language = config.Languages[(i+1)%len(config.Languages)]
			return
		}
	}
	s.language = config.Languages[0]
}

func (s *Settings) PushNotifications() bool { return s.push }

func (s *Settings) TogglePushNotifications() { s.push = !s.push }

func (s *Settings) EmailUpdates() bool { return s.emailUpdates }

func (s *Settings) ToggleEmailUpdates() { s.emailUpdates = !s.emailUpdates }

func (s *Settings) NotifyTypes() []NotifyType {
	out := make([]NotifyType, len(s.notifyTypes))
	copy(out, s.notifyTypes)
	return out
}

func (s *Settings) ToggleNotifyType(i int) {
	if i < 0 || i >= len(s.notifyTypes) {
		return
	}
	s.notifyTypes[i].On = !s.notifyTypes[i].On
}

func (s *Settings) Profile() Profile { return s.profile }

func (s *Settings) History() *history.Store { return s.history }

// DeletionGate guards the account deletion request.
func (s *Settings) DeletionGate() *gate.Gate { return s.deletionGate }

// DeletionRequests counts confirmed deletion requests.
func (s *Settings) DeletionRequests() int { return s.deleteRequest }

// Do runs one of the demo actions.
func (s *Settings) Do(action string) error {
	text, ok := demoNotices[action]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}
	s.logger.Debug("demo action", zap.String("action", action))
	s.bus.Show(text)
	return nil
}

func (s *Settings) Notice() (notice.Notice, bool) { return s.bus.Active() }
