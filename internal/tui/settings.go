package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/phravins/uhuru/internal/gate"
	"github.com/phravins/uhuru/internal/history"
	"github.com/phravins/uhuru/internal/settings"
)

type rowKind int

const (
	rowButton rowKind = iota
	rowToggle
	rowSelect
	rowDanger
	rowInfo
)

type row struct {
	label  string
	detail string
	kind   rowKind
	value  func(s *settings.Settings) string
	on     func(s *settings.Settings) bool
	action func(m *SettingsModel) tea.Cmd
}

func demoRow(label, detail, action string) row {
	return row{
		label:  label,
		detail: detail,
		kind:   rowButton,
		action: func(m *SettingsModel) tea.Cmd {
			if err := m.core.Do(action); err != nil {
				m.logger.Error("settings action failed", zap.Error(err))
			}
			return nil
		},
	}
}

func rowsFor(tab settings.Tab, core *settings.Settings) []row {
	switch tab {
	case settings.TabGeneral:
		return []row{
			{label: "Dark Mode", detail: "Use dark theme across the platform", kind: rowToggle,
				on:     func(s *settings.Settings) bool { return s.DarkMode() },
				action: func(m *SettingsModel) tea.Cmd { m.core.ToggleDarkMode(); return nil }},
			{label: "Language", detail: "Select your preferred language", kind: rowSelect,
				value:  func(s *settings.Settings) string { return s.Language() },
				action: func(m *SettingsModel) tea.Cmd { m.core.CycleLanguage(); return nil }},
			demoRow("Export Data", "Download all your data and history", settings.ActionExportData),
		}

	case settings.TabAccount:
		return []row{
			demoRow("Edit Profile", core.Profile().Name+" • "+core.Profile().Email, settings.ActionEditProfile),
			demoRow("Change Password", "Update your account password", settings.ActionChangePassword),
			demoRow("Email Address", core.Profile().Email, settings.ActionChangeEmail),
			demoRow("Log Out", "Sign out of your account", settings.ActionLogOut),
			{label: "Delete Account", detail: "Permanently delete your account and all data", kind: rowDanger,
				action: func(m *SettingsModel) tea.Cmd { return m.openDeletion() }},
		}

	case settings.TabPrivacy:
		rows := []row{
			demoRow("Two-Factor Authentication", "Add an extra layer of security", settings.ActionTwoFactor),
			demoRow("Activity Status", "Show when you're active on Uhuru.ai", settings.ActionActivityStatus),
			demoRow("Data Collection", "Help improve Uhuru.ai with usage data", settings.ActionDataCollection),
		}
		for _, s := range settings.Sessions {
			rows = append(rows, row{label: s.Device, detail: s.LastSeen, kind: rowInfo})
		}
		return rows

	case settings.TabNotifications:
		rows := []row{
			{label: "Push Notifications", detail: "Receive notifications about your AI tasks", kind: rowToggle,
				on:     func(s *settings.Settings) bool { return s.PushNotifications() },
				action: func(m *SettingsModel) tea.Cmd { m.core.TogglePushNotifications(); return nil }},
			{label: "Email Updates", detail: "Receive product updates and newsletters", kind: rowToggle,
				on:     func(s *settings.Settings) bool { return s.EmailUpdates() },
				action: func(m *SettingsModel) tea.Cmd { m.core.ToggleEmailUpdates(); return nil }},
		}
		for i, t := range core.NotifyTypes() {
			rows = append(rows, row{label: t.Label, detail: "Notify me about", kind: rowToggle,
				on:     func(s *settings.Settings) bool { return s.NotifyTypes()[i].On },
				action: func(m *SettingsModel) tea.Cmd { m.core.ToggleNotifyType(i); return nil }})
		}
		return rows
	}
	return nil
}

var labelColumn = lipgloss.NewStyle().Width(30)

type historyItem struct {
	entry history.Entry
}

func (i historyItem) Title() string       { return i.entry.Query }
func (i historyItem) Description() string { return i.entry.Tool + " • " + i.entry.Timestamp }
func (i historyItem) FilterValue() string { return i.entry.Query + " " + i.entry.Tool }

func historyItems(entries []history.Entry) []list.Item {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = historyItem{entry: e}
	}
	return items
}

type SettingsModel struct {
	core    *settings.Settings
	logger  *zap.Logger
	cursor  int
	history list.Model
	confirm textinput.Model

	showHelp bool
	helpView viewport.Model
	mainView viewport.Model
	width    int
	height   int
}

func NewSettingsModel(core *settings.Settings, logger *zap.Logger) SettingsModel {
	if logger == nil {
		logger = zap.NewNop()
	}

	hl := list.New(historyItems(core.History().Entries()), list.NewDefaultDelegate(), 60, 16)
	hl.SetShowTitle(false)
	hl.SetShowHelp(false)
	hl.SetStatusBarItemName("search", "searches")
	hl.DisableQuitKeybindings()

	ci := textinput.New()
	ci.Placeholder = core.DeletionGate().Phrase()
	ci.Prompt = ""
	ci.CharLimit = 64
	ci.Width = 36

	hv := viewport.New(100, 40)
	hv.Style = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorTeal).
		Padding(1, 2)
	hv.SetContent(renderHelp(SettingsHelp))

	mv := viewport.New(100, 40)
	mv.Style = lipgloss.NewStyle().Padding(0, 2)

	m := SettingsModel{
		core:     core,
		logger:   logger,
		history:  hl,
		confirm:  ci,
		helpView: hv,
		mainView: mv,
		width:    100,
		height:   40,
	}
	m.updateMainViewContent()
	return m
}

func (m SettingsModel) Init() tea.Cmd {
	return nil
}

func (m SettingsModel) Core() *settings.Settings { return m.core }

func (m SettingsModel) Cursor() int { return m.cursor }

func (m *SettingsModel) openDeletion() tea.Cmd {
	m.core.DeletionGate().Open()
	m.confirm.Reset()
	return m.confirm.Focus()
}

func (m *SettingsModel) refreshHistory() tea.Cmd {
	return m.history.SetItems(historyItems(m.core.History().Entries()))
}

func (m *SettingsModel) setTab(t settings.Tab) {
	m.core.SetTab(t)
	m.cursor = 0
}

func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.helpView.Width = max(20, msg.Width-6)
		m.helpView.Height = max(5, msg.Height-10)
		m.mainView.Width = msg.Width
		m.mainView.Height = max(5, msg.Height-6)
		m.history.SetSize(max(20, msg.Width-8), max(5, msg.Height-12))
		m.updateMainViewContent()
		return m, nil

	case tea.KeyMsg:
		next, cmd := m.handleKey(msg)
		next.updateMainViewContent()
		return next, cmd

	case tea.MouseMsg:
		if m.showHelp {
			var cmd tea.Cmd
			m.helpView, cmd = m.helpView.Update(msg)
			return m, cmd
		}
		var cmd tea.Cmd
		m.mainView, cmd = m.mainView.Update(msg)
		return m, cmd
	}

	// Async filter results and cursor blinks.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)
	cmds = append(cmds, cmd)
	if m.core.DeletionGate().IsOpen() {
		m.confirm, cmd = m.confirm.Update(msg)
		cmds = append(cmds, cmd)
	}
	m.updateMainViewContent()
	return m, tea.Batch(cmds...)
}

func (m SettingsModel) handleKey(msg tea.KeyMsg) (SettingsModel, tea.Cmd) {
	deletion := m.core.DeletionGate()
	clearGate := m.core.History().ClearGate()

	switch {
	case deletion.IsOpen():
		switch msg.String() {
		case "esc":
			_ = deletion.Cancel()
			m.confirm.Blur()
			return m, nil
		case "enter":
			if err := deletion.Confirm(); err != nil {
				if !errors.Is(err, gate.ErrInvalidConfirmation) {
					m.logger.Error("account deletion", zap.Error(err))
				}
				return m, nil
			}
			m.confirm.Reset()
			m.confirm.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.confirm, cmd = m.confirm.Update(msg)
		_ = deletion.Type(m.confirm.Value())
		return m, cmd

	case clearGate.IsOpen():
		switch msg.String() {
		case "y", "Y", "enter":
			if err := clearGate.Confirm(); err != nil {
				m.logger.Error("clear history", zap.Error(err))
			}
			cmd := m.refreshHistory()
			return m, cmd
		case "n", "N", "esc":
			_ = clearGate.Cancel()
		}
		return m, nil

	case m.showHelp:
		switch msg.String() {
		case "esc", "?", "enter":
			m.showHelp = false
			return m, nil
		}
		var cmd tea.Cmd
		m.helpView, cmd = m.helpView.Update(msg)
		return m, cmd
	}

	if m.core.Tab() == settings.TabHistory && m.history.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.history, cmd = m.history.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		if m.core.Tab() == settings.TabHistory && m.history.FilterState() == list.FilterApplied {
			m.history.ResetFilter()
			return m, nil
		}
		return m, func() tea.Msg { return BackMsg{} }
	case "?":
		m.showHelp = true
		m.helpView.GotoTop()
		return m, nil
	case "tab", "right":
		m.core.NextTab()
		m.cursor = 0
		return m, nil
	case "shift+tab", "left":
		m.core.PrevTab()
		m.cursor = 0
		return m, nil
	case "1", "2", "3", "4", "5":
		m.setTab(settings.Tab(msg.String()[0] - '1'))
		return m, nil
	}

	if m.core.Tab() == settings.TabHistory {
		return m.handleHistoryKey(msg)
	}

	rows := rowsFor(m.core.Tab(), m.core)
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(rows)-1 {
			m.cursor++
		}
	case "enter", " ":
		if m.cursor < len(rows) && rows[m.cursor].action != nil {
			cmd := rows[m.cursor].action(&m)
			return m, cmd
		}
	}
	return m, nil
}

func (m SettingsModel) handleHistoryKey(msg tea.KeyMsg) (SettingsModel, tea.Cmd) {
	switch msg.String() {
	case "d", "x", "delete", "backspace":
		if i, ok := m.history.SelectedItem().(historyItem); ok {
			m.core.History().RemoveByID(i.entry.ID)
			cmd := m.refreshHistory()
			return m, cmd
		}
		return m, nil
	case "c":
		if m.core.History().Len() > 0 {
			m.core.History().ClearGate().Open()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)
	return m, cmd
}

func (m *SettingsModel) updateMainViewContent() {
	var b strings.Builder

	tabs := make([]string, 0, len(settings.Tabs()))
	for i, t := range settings.Tabs() {
		label := fmt.Sprintf("%d %s", i+1, t)
		if t == m.core.Tab() {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	if m.core.Tab() == settings.TabHistory {
		b.WriteString(m.historyView())
	} else {
		b.WriteString(m.rowsView())
	}

	m.mainView.SetContent(b.String())
}

func (m SettingsModel) rowsView() string {
	var b strings.Builder
	if m.core.Tab() == settings.TabAccount {
		p := m.core.Profile()
		b.WriteString(lipgloss.NewStyle().Foreground(colorIvory).Bold(true).Render(p.Name))
		b.WriteString("  " + subtleStyle.Render(p.Email) + "\n\n")
	}

	for i, r := range rowsFor(m.core.Tab(), m.core) {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}

		label := lipgloss.NewStyle().Foreground(colorIvory).Render(r.label)
		var control string
		switch r.kind {
		case rowToggle:
			if r.on(m.core) {
				control = onStyle.Render("[ON]")
			} else {
				control = offStyle.Render("[OFF]")
			}
		case rowSelect:
			control = selectedOptionStyle.Render(r.value(m.core) + " ▾")
		case rowButton:
			control = subtleStyle.Render("[Enter]")
		case rowDanger:
			label = errorStyle.Render(r.label)
			control = dangerButtonStyle.Render("Delete")
		case rowInfo:
			label = descStyle.Render(r.label)
		}

		b.WriteString(cursor + labelColumn.Render(label) + " " + control + "\n")
		b.WriteString("    " + subtleStyle.Render(r.detail) + "\n")
	}
	return b.String()
}

func (m SettingsModel) historyView() string {
	if m.core.History().Len() == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			descStyle.Render("No search history"),
			subtleStyle.Render("Your AI tool usage history will appear here"),
		)
	}
	header := warnStyle.Render(fmt.Sprintf("%d searches", m.core.History().Len())) +
		"   " + helpStyle.Render("[d] delete  [c] clear all  [/] filter")
	return header + "\n\n" + m.history.View()
}

func (m SettingsModel) View() string {
	deletion := m.core.DeletionGate()
	if deletion.IsOpen() {
		return renderConfirm(
			"Delete Account",
			"This action cannot be undone. All your data, history, and settings will be permanently deleted.",
			"Delete Account", deletion, m.confirm.View(), m.width, m.height)
	}

	if clearGate := m.core.History().ClearGate(); clearGate.IsOpen() {
		return renderConfirm(
			"Clear Search History",
			"Are you sure you want to clear all search history? This action cannot be undone.",
			"Clear All", clearGate, "", m.width, m.height)
	}

	if m.showHelp {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			lipgloss.JoinVertical(lipgloss.Center,
				lipgloss.NewStyle().Foreground(colorTealLight).Bold(true).MarginBottom(1).Render("Settings Help"),
				m.helpView.View(),
				helpStyle.MarginTop(1).Render("Press [Esc] or [?] to go back"),
			),
		)
	}

	header := titleStyle.Render("Settings") + "  " +
		descStyle.Render("Manage your account preferences and privacy settings")
	footer := helpStyle.Render("Tab/←/→ switch tab • ↑/↓ move • Enter select • [?] Help • Esc back")

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		m.mainView.View(),
		footer,
	))
}
