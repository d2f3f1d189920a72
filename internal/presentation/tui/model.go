package tui

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/flank/internal/application/settings"
	"github.com/tesso57/flank/internal/application/usecase"
	"github.com/tesso57/flank/internal/domain/layout"
	"github.com/tesso57/flank/internal/domain/theme"
	"github.com/tesso57/flank/internal/presentation/tui/presenter"
	"github.com/tesso57/flank/internal/presentation/tui/state"
	"github.com/tesso57/flank/internal/presentation/tui/update"
	"github.com/tesso57/flank/internal/presentation/tui/view"
	listview "github.com/tesso57/flank/internal/presentation/tui/view/list"
)

// Services groups the application services used by the model.
type Services struct {
	Panels  usecase.PanelService
	Content usecase.ContentService
	// Changes, when set, triggers a reload on each value.
	Changes <-chan struct{}
}

// Model represents the main application state.
type Model struct {
	settings settings.Settings
	window   *WindowSource
	ctrl     *layout.Controller
	panels   usecase.PanelService
	content  usecase.ContentService
	changes  <-chan struct{}
	state    *state.ModelState
}

// NewModel creates a new application model. The layout controller is
// created against window and restores the remembered sidebars.
func NewModel(cfg settings.Settings, window *WindowSource, catalog *theme.Catalog, svc Services) *Model {
	if window == nil {
		window = NewWindowSource(0, 0)
	}
	m := &Model{
		settings: cfg,
		window:   window,
		panels:   svc.Panels,
		content:  svc.Content,
		changes:  svc.Changes,
	}
	m.ctrl = layout.New(window, cfg.Theme, layout.WithCatalog(catalog), layout.OnChange(m.layoutChanged))
	m.state = newModelState(cfg, m.ctrl.Theme())
	m.state.Width = window.Width()
	m.state.Height = window.Height()

	left, right, ok, err := m.panels.Restore()
	switch {
	case err != nil:
		m.state.StatusMessage = fmt.Sprintf("Could not restore panels: %v", err)
	case ok:
		m.ctrl.Restore(left, right)
	}
	m.resize()
	return m
}

// Controller returns the layout controller.
func (m *Model) Controller() *layout.Controller {
	return m.ctrl
}

// Init mounts the layout controller and starts loading content.
func (m *Model) Init() tea.Cmd {
	m.ctrl.Mount()
	m.state.Loading = true
	return tea.Batch(
		m.state.Spinner.Tick,
		update.LoadContentCmd(m.content),
		update.WaitForChangeCmd(m.changes),
	)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.window.Resize(msg.Width, msg.Height)
		m.resize()
	case tea.KeyMsg:
		cmd, handled := update.HandleKeyMsg(m.state, msg, m.deps())
		if handled {
			m.resize()
			return m, cmd
		}
	case tea.MouseMsg:
		if update.HandleMouseMsg(m.state, msg, m.deps()) {
			m.resize()
			return m, nil
		}
	case update.ContentLoadedMsg:
		update.HandleContentLoaded(m.state, msg)
		m.resize()
	case update.SourceChangedMsg:
		cmds = append(cmds, update.HandleSourceChanged(m.state, m.content), update.WaitForChangeCmd(m.changes))
		m.resize()
	}

	if m.state.Loading {
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.state.List, cmd = m.state.List.Update(msg)
	cmds = append(cmds, cmd)
	m.state.Viewport, cmd = m.state.Viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// View renders the application view.
func (m *Model) View() string {
	if m.state.Quitting {
		return ""
	}
	return view.Render(m.buildProps())
}

func (m *Model) deps() update.Deps {
	left, right := m.panelProps()
	return update.Deps{
		Content:     m.content,
		Left:        left,
		Right:       right,
		OpenBrowser: openBrowser,
		Quit:        m.quit,
	}
}

func (m *Model) quit() tea.Cmd {
	m.state.Quitting = true
	m.ctrl.Unmount()
	return tea.Quit
}

func (m *Model) resize() {
	update.UpdateSizes(m.state, m.ctrl.State(), m.ctrl.Theme())
}

func (m *Model) layoutChanged(s layout.State) {
	log.Printf("layout: left=%t right=%t viewport=%s", s.LeftActive, s.RightActive, s.Viewport)
	if err := m.panels.Remember(s.LeftActive, s.RightActive); err != nil {
		log.Printf("layout: remembering panels: %v", err)
	}
}

func newModelState(cfg settings.Settings, th theme.Theme) *state.ModelState {
	keys := state.NewKeyMap(cfg.KeyMap)
	return &state.ModelState{
		List:     newEntryList(keys, th),
		Viewport: newViewport(keys),
		Help:     help.New(),
		Spinner:  newSpinner(th),
		Keys:     keys,
		Opened:   -1,

		MarkdownStyle: th.MarkdownStyle,
	}
}

func newEntryList(keys state.KeyMap, th theme.Theme) list.Model {
	l := list.New([]list.Item{}, listview.NewEntryDelegate(th.Accent, th.Muted), 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Filter = presenter.FilterEntries
	l.DisableQuitKeybindings()
	l.KeyMap.CursorUp = keys.Up
	l.KeyMap.CursorDown = keys.Down
	l.KeyMap.GoToStart = keys.Top
	l.KeyMap.GoToEnd = keys.Bottom
	l.KeyMap.PrevPage = key.NewBinding(key.WithKeys("left"))
	l.KeyMap.NextPage = key.NewBinding(key.WithKeys("right"))
	return l
}

func newViewport(keys state.KeyMap) viewport.Model {
	vp := viewport.New(0, 0)
	vp.KeyMap = viewport.KeyMap{
		PageUp:   keys.UpPage,
		PageDown: keys.DownPage,
	}
	return vp
}

func newSpinner(th theme.Theme) spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(th.Accent)
	return s
}
