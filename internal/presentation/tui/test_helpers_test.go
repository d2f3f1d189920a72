package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/mock"
	"github.com/tesso57/flank/internal/application/settings"
	"github.com/tesso57/flank/internal/application/usecase"
	"github.com/tesso57/flank/internal/domain/content"
	"github.com/tesso57/flank/internal/domain/session"
	"github.com/tesso57/flank/internal/presentation/tui/update"
)

type stubPanelRepo struct {
	mock.Mock
}

func (s *stubPanelRepo) Load(profile string) (session.PanelState, bool, error) {
	args := s.Called(profile)
	st, _ := args.Get(0).(session.PanelState)
	return st, args.Bool(1), args.Error(2)
}

func (s *stubPanelRepo) Save(st session.PanelState) error {
	return s.Called(st).Error(0)
}

func testSettings() settings.Settings {
	return settings.Settings{
		Theme:   "joy",
		Profile: session.DefaultProfile,
		Layout:  settings.LayoutConfig{LeftTitle: "Contents", RightTitle: "Details", MainTitle: "flank"},
		KeyMap: settings.KeyMapConfig{
			Up: "k,up", Down: "j,down", UpPage: "ctrl+u,pgup", DownPage: "ctrl+d,pgdn",
			Top: "g,home", Bottom: "G,end", Open: "enter", OpenLink: "o",
			ToggleLeft: "[", ToggleRight: "]", Reload: "r", Quit: "q,ctrl+c",
		},
	}
}

func testCollection() *content.Collection {
	return &content.Collection{
		Title: "Sample",
		Entries: []content.Entry{
			{ID: "a", Title: "Alpha", Link: "http://example.com/a", Body: "alpha body", Source: "Sample"},
			{ID: "b", Title: "Beta", Body: "beta body", Source: "Sample"},
		},
	}
}

func staticContent(c *content.Collection) usecase.ContentService {
	return usecase.NewContentService(func(context.Context, string) (*content.Collection, error) {
		if c == nil {
			return nil, errors.New("unreachable")
		}
		return c, nil
	}, "", 0)
}

func newTestModel(width, height int, svc Services) *Model {
	if svc.Content.Load == nil {
		svc.Content = staticContent(testCollection())
	}
	return NewModel(testSettings(), NewWindowSource(width, height), nil, svc)
}

// start runs Init and delivers the content load synchronously.
func start(m *Model) {
	m.Init()
	msg := update.LoadContentCmd(m.content)()
	m.Update(msg)
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}
