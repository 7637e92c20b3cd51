package tui

import (
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/phravins/uhuru/internal/config"
	"github.com/phravins/uhuru/internal/demo"
	"github.com/phravins/uhuru/internal/history"
	"github.com/phravins/uhuru/internal/notice"
	"github.com/phravins/uhuru/internal/settings"
)

// Global States
const (
	StateDashboard = iota
	StateFeature
	StateSettings
)

// SettingsPageID opens the Settings page through the same paths as tool pages.
const SettingsPageID = "settings"

// Messages
type SwitchViewMsg struct {
	TargetState int
	Args        interface{} // page id for StateFeature
}

type BackMsg struct{}

// NoticeExpiredMsg is sent by the notice bus timer so the toast disappears
// without waiting for a key press.
type NoticeExpiredMsg struct {
	Notice notice.Notice
}

// programSender lets the notice bus reach a program that is created after it.
type programSender struct {
	mu sync.Mutex
	p  *tea.Program
}

func (s *programSender) set(p *tea.Program) {
	s.mu.Lock()
	s.p = p
	s.mu.Unlock()
}

func (s *programSender) Send(msg tea.Msg) {
	s.mu.Lock()
	p := s.p
	s.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

// App is the state shared by every view for the lifetime of one run.
type App struct {
	Config   *config.Config
	Catalog  *demo.Catalog
	Settings *settings.Settings
	Bus      *notice.Bus
	Logger   *zap.Logger

	sender *programSender
}

func NewApp(cfg *config.Config, logger *zap.Logger) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	catalog, err := demo.Load()
	if err != nil {
		return nil, err
	}

	sender := &programSender{}
	bus := notice.NewBus(
		notice.WithDuration(cfg.NoticeDuration),
		notice.WithLogger(logger.Named("notice")),
		notice.WithOnExpire(func(n notice.Notice) {
			sender.Send(NoticeExpiredMsg{Notice: n})
		}),
	)

	core, err := settings.New(cfg, history.EmbeddedProvider(), bus, logger.Named("settings"))
	if err != nil {
		return nil, err
	}

	return &App{
		Config:   cfg,
		Catalog:  catalog,
		Settings: core,
		Bus:      bus,
		Logger:   logger,
		sender:   sender,
	}, nil
}

type RootModel struct {
	app    *App
	state  int
	width  int
	height int

	// Sub-models
	dashboard DashboardModel
	feature   FeatureModel
	settings  SettingsModel
}

func NewRootModel(app *App) RootModel {
	return RootModel{
		app:       app,
		state:     StateDashboard,
		dashboard: NewDashboard(app.Catalog, app.Logger),
	}
}

func (m RootModel) Init() tea.Cmd {
	switch m.state {
	case StateFeature:
		return m.feature.Init()
	case StateSettings:
		return m.settings.Init()
	}
	return m.dashboard.Init()
}

// open switches to a page by id.
func (m *RootModel) open(id string) tea.Cmd {
	if id == SettingsPageID {
		m.state = StateSettings
		m.settings = NewSettingsModel(m.app.Settings, m.app.Logger)
		if m.width > 0 {
			sm, _ := m.settings.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
			m.settings = sm.(SettingsModel)
		}
		return m.settings.Init()
	}

	page, err := m.app.Catalog.Page(id)
	if err != nil {
		m.app.Logger.Warn("unknown page", zap.String("page", id))
		m.state = StateDashboard
		return nil
	}
	m.state = StateFeature
	m.feature = NewFeatureModel(page, m.app.Logger)
	if m.width > 0 {
		fm, _ := m.feature.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		m.feature = fm.(FeatureModel)
	}
	m.app.Logger.Info("page opened", zap.String("page", id))
	return m.feature.Init()
}

func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case NoticeExpiredMsg:
		// Nothing to update; receiving the message is enough to redraw.
		return m, nil

	case SwitchViewMsg:
		var cmd tea.Cmd
		switch msg.TargetState {
		case StateSettings:
			cmd = m.open(SettingsPageID)
		case StateFeature:
			id, _ := msg.Args.(string)
			cmd = m.open(id)
		default:
			m.state = StateDashboard
		}
		return m, cmd

	case BackMsg:
		if m.state == StateDashboard {
			return m, tea.Quit
		}
		m.state = StateDashboard
		return m, nil
	}

	switch m.state {
	case StateDashboard:
		newM, newCmd := m.dashboard.Update(msg)
		m.dashboard = newM.(DashboardModel)
		cmds = append(cmds, newCmd)
	case StateFeature:
		newM, newCmd := m.feature.Update(msg)
		m.feature = newM.(FeatureModel)
		cmds = append(cmds, newCmd)
	case StateSettings:
		newM, newCmd := m.settings.Update(msg)
		m.settings = newM.(SettingsModel)
		cmds = append(cmds, newCmd)
	}

	// The dashboard keeps its size even while hidden.
	if ws, ok := msg.(tea.WindowSizeMsg); ok && m.state != StateDashboard {
		newM, _ := m.dashboard.Update(ws)
		m.dashboard = newM.(DashboardModel)
	}

	return m, tea.Batch(cmds...)
}

func (m RootModel) State() int { return m.state }

func (m RootModel) View() string {
	var view string
	switch m.state {
	case StateDashboard:
		view = m.dashboard.View()
	case StateFeature:
		view = m.feature.View()
	case StateSettings:
		view = m.settings.View()
	default:
		view = "Unknown State"
	}
	return withToast(view, m.app.Bus, m.width)
}

func (a *App) run(model tea.Model) error {
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	a.sender.set(p)
	defer a.sender.set(nil)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run uhuru: %w", err)
	}
	return nil
}

// Run starts the full application on the dashboard, or directly on page
// when it is not empty. Esc on a page returns to the dashboard.
func (a *App) Run(page string) error {
	root := NewRootModel(a)
	if page != "" {
		_ = root.open(page)
	}
	return a.run(root)
}

// RunPage runs a single page on its own; leaving the page quits.
func (a *App) RunPage(id string) error {
	if id == SettingsPageID {
		return a.run(Wrap(NewSettingsModel(a.Settings, a.Logger), a.Bus))
	}
	page, err := a.Catalog.Page(id)
	if err != nil {
		return err
	}
	return a.run(Wrap(NewFeatureModel(page, a.Logger), a.Bus))
}
