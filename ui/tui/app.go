package tui

import (
	"time"

	"alphabetter/internal/fetcher"
	"alphabetter/internal/logger"
	"alphabetter/internal/records"
	"alphabetter/ui/tui/state"
	"alphabetter/ui/tui/views"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// Sources supplies the fetchers the two routes are built on.
type Sources struct {
	Props fetcher.Fetcher[records.PropRecord]
	Teams fetcher.Fetcher[records.TeamStatRecord]
}

// Options configures the shell at start.
type Options struct {
	StartPage state.Page
	Mouse     bool
}

// MainModel is the Bubble Tea Model acting as the Controller. It mounts at
// most one route view at a time.
type MainModel struct {
	sources    Sources
	state      state.AppState
	active     views.Mounted
	nextViewID int
	menuCursor int
	animCursor float64
	velocity   float64 // Physics velocity
	spring     harmonica.Spring
	mouseX     int
	mouseY     int
	quitting   bool
	width      int
	height     int
	startPage  state.Page
}

// Messages
type AnimateMsg time.Time

func InitialModel(sources Sources, opts Options) MainModel {
	// Increased frequency (12.0) for faster response and damping (0.9) to prevent overshoot
	spring := harmonica.NewSpring(harmonica.FPS(60), 12.0, 0.9)

	return MainModel{
		sources:   sources,
		spring:    spring,
		startPage: opts.StartPage,
		state: state.AppState{
			CurrentPage: state.PageMenu,
		},
	}
}

func (m *MainModel) Init() tea.Cmd {
	zone.NewGlobal()
	return tea.Batch(
		animateCmd(),
		m.navigate(m.startPage),
	)
}

func animateCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*16, func(t time.Time) tea.Msg {
		return AnimateMsg(t)
	})
}

// navigate unmounts the current view and mounts a fresh one for page.
func (m *MainModel) navigate(page state.Page) tea.Cmd {
	m.state.CurrentPage = page
	m.active = nil

	if page == state.PageMenu {
		return nil
	}

	m.nextViewID++
	switch page {
	case state.PageProps:
		m.active = views.NewPropsView(m.nextViewID, m.sources.Props)
	case state.PageTeamInfo:
		m.active = views.NewTeamStatsView(m.nextViewID, m.sources.Teams)
	default:
		return nil
	}

	m.active.SetSize(m.width, m.height)
	logger.Debug("mounted %s (view %d)", page.Path(), m.nextViewID)
	return m.active.Activate()
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case AnimateMsg:
		return m.handleAnimateMsg(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	// Fetch results and spinner ticks belong to the mounted view. Anything
	// addressed to an unmounted view is dropped here.
	if m.active != nil {
		return m, m.active.Update(msg)
	}
	return m, nil
}

func (m *MainModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}

	if m.state.CurrentPage == state.PageMenu {
		switch msg.String() {
		case "up", "k":
			if m.menuCursor > 0 {
				m.menuCursor--
			}
		case "down", "j":
			if m.menuCursor < len(state.Routes)-1 {
				m.menuCursor++
			}
		case "enter":
			return m, m.navigate(state.Routes[m.menuCursor])
		}
		return m, nil
	}

	switch msg.String() {
	case "b", "esc", "backspace":
		return m, m.navigate(state.PageMenu)
	case "tab", "shift+tab":
		return m, m.navigate(m.otherRoute())
	case "r":
		return m, m.navigate(m.state.CurrentPage)
	}

	if m.active != nil {
		return m, m.active.Update(msg)
	}
	return m, nil
}

func (m *MainModel) otherRoute() state.Page {
	if m.state.CurrentPage == state.PageProps {
		return state.PageTeamInfo
	}
	return state.PageProps
}

func (m *MainModel) handleAnimateMsg(msg AnimateMsg) (tea.Model, tea.Cmd) {
	var v float64 = m.velocity
	m.animCursor, v = m.spring.Update(m.animCursor, float64(m.menuCursor), v)
	m.velocity = v
	return m, animateCmd()
}

func (m *MainModel) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	if m.active != nil {
		m.active.SetSize(msg.Width, msg.Height)
	}
	return m, nil
}

func (m *MainModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.mouseX = msg.X
	m.mouseY = msg.Y

	if msg.Action != tea.MouseActionRelease {
		return m, nil
	}

	if m.state.CurrentPage == state.PageMenu {
		for i, page := range state.Routes {
			if zone.Get(views.MenuZoneID(i)).InBounds(msg) {
				m.menuCursor = i
				return m, m.navigate(page)
			}
		}
		return m, nil
	}

	for _, page := range state.Routes {
		if page != m.state.CurrentPage && zone.Get(views.TabZoneID(page)).InBounds(msg) {
			return m, m.navigate(page)
		}
	}
	return m, nil
}

func (m *MainModel) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	if m.state.CurrentPage == state.PageMenu || m.active == nil {
		return views.RenderMenu(m.width, m.height, m.menuCursor, m.animCursor, m.mouseX, m.mouseY)
	}
	if m.width == 0 {
		return m.active.View()
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(m.active.View())
}

func Start(sources Sources, opts Options) error {
	m := InitialModel(sources, opts)
	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(&m, progOpts...)
	_, err := p.Run()
	return err
}
