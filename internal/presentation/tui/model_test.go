package tui

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/flank/internal/application/usecase"
	"github.com/tesso57/flank/internal/domain/content"
	"github.com/tesso57/flank/internal/domain/layout"
	"github.com/tesso57/flank/internal/domain/session"
	"github.com/tesso57/flank/internal/domain/theme"
	"github.com/tesso57/flank/internal/presentation/tui/update"
)

func TestModel_InitMountsAndLoads(t *testing.T) {
	m := newTestModel(140, 40, Services{})
	require.False(t, m.Controller().Mounted())

	cmd := m.Init()
	assert.NotNil(t, cmd)
	assert.True(t, m.Controller().Mounted())
	assert.Equal(t, 1, m.window.Subscribers())
	assert.True(t, m.state.Loading)
	assert.Contains(t, m.View(), "Loading...")

	m.Update(update.LoadContentCmd(m.content)())
	assert.False(t, m.state.Loading)
	assert.Equal(t, 0, m.state.Opened)
	assert.Contains(t, m.View(), "alpha body")
}

func TestModel_KeysToggleSidebars(t *testing.T) {
	m := newTestModel(140, 40, Services{})
	start(m)

	m.Update(keyPress("["))
	m.Update(keyPress("]"))

	st := m.Controller().State()
	assert.True(t, st.LeftActive)
	assert.True(t, st.RightActive)
	assert.Equal(t, theme.Joy.LeftWidth, m.state.Metrics.LeftWidth)
	assert.Equal(t, theme.Joy.RightWidth, m.state.Metrics.RightWidth)

	view := m.View()
	assert.Contains(t, view, "Contents")
	assert.Contains(t, view, "Details")
}

func TestModel_NarrowTogglesAreExclusive(t *testing.T) {
	m := newTestModel(80, 30, Services{})
	start(m)

	m.Update(keyPress("["))
	m.Update(keyPress("]"))

	st := m.Controller().State()
	assert.Equal(t, layout.ViewportNarrow, st.Viewport)
	assert.False(t, st.LeftActive)
	assert.True(t, st.RightActive)
	assert.Equal(t, theme.Joy.RailWidth, m.state.Metrics.LeftWidth)
}

func TestModel_ResizeToNarrowClosesRight(t *testing.T) {
	m := newTestModel(140, 40, Services{})
	start(m)
	m.Update(keyPress("["))
	m.Update(keyPress("]"))

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})

	st := m.Controller().State()
	assert.Equal(t, layout.ViewportNarrow, st.Viewport)
	assert.True(t, st.LeftActive)
	assert.False(t, st.RightActive)
	assert.Equal(t, 80, m.state.Metrics.LeftWidth+m.state.Metrics.MainWidth+m.state.Metrics.RightWidth)
}

func TestModel_MouseClickTogglesRail(t *testing.T) {
	m := newTestModel(140, 40, Services{})
	start(m)

	m.Update(click(1, 3))
	assert.True(t, m.Controller().State().LeftActive)

	m.Update(click(139, 3))
	assert.True(t, m.Controller().State().RightActive)

	m.Update(click(60, 3))
	st := m.Controller().State()
	assert.True(t, st.LeftActive)
	assert.True(t, st.RightActive)

	m.Update(click(5, 0))
	assert.False(t, m.Controller().State().LeftActive)
}

func TestModel_RestoresRememberedPanels(t *testing.T) {
	repo := &stubPanelRepo{}
	repo.On("Load", session.DefaultProfile).Return(session.PanelState{LeftActive: true, RightActive: true}, true, nil)
	repo.On("Save", mock.Anything).Return(nil)

	m := newTestModel(80, 30, Services{Panels: usecase.NewPanelService(repo, "", true)})

	st := m.Controller().State()
	assert.True(t, st.LeftActive)
	assert.False(t, st.RightActive)
	repo.AssertExpectations(t)
}

func TestModel_RestoreErrorIsReported(t *testing.T) {
	repo := &stubPanelRepo{}
	repo.On("Load", session.DefaultProfile).Return(nil, false, errors.New("locked"))

	m := newTestModel(140, 40, Services{Panels: usecase.NewPanelService(repo, "", true)})

	assert.Contains(t, m.state.StatusMessage, "locked")
	assert.Equal(t, layout.State{Viewport: layout.ViewportWide}, m.Controller().State())
}

func TestModel_RemembersPanelsOnChange(t *testing.T) {
	repo := &stubPanelRepo{}
	repo.On("Load", session.DefaultProfile).Return(nil, false, nil)
	repo.On("Save", mock.MatchedBy(func(st session.PanelState) bool {
		return st.Profile == session.DefaultProfile && st.LeftActive && !st.RightActive
	})).Return(nil).Once()

	m := newTestModel(140, 40, Services{Panels: usecase.NewPanelService(repo, "", true)})
	start(m)
	m.Update(keyPress("["))

	repo.AssertExpectations(t)
}

func TestModel_OpenEntry(t *testing.T) {
	m := newTestModel(140, 40, Services{})
	start(m)

	m.Update(keyPress("j"))
	require.Equal(t, 1, m.state.List.Index())
	m.Update(keyPress("enter"))

	assert.Equal(t, 1, m.state.Opened)
	assert.Contains(t, m.View(), "beta body")
}

func TestModel_OpenLink(t *testing.T) {
	oldOpen := OSOpenCmd
	defer func() { OSOpenCmd = oldOpen }()

	opened := ""
	OSOpenCmd = func(url string) *exec.Cmd {
		opened = url
		return exec.Command("echo", "mock open")
	}

	m := newTestModel(140, 40, Services{})
	start(m)
	m.Update(keyPress("o"))

	assert.Equal(t, "http://example.com/a", opened)
}

func TestModel_HelpOverlay(t *testing.T) {
	m := newTestModel(140, 40, Services{})
	start(m)

	m.Update(keyPress("?"))
	assert.True(t, m.state.Help.ShowAll)
	assert.Contains(t, m.View(), "Keys")

	m.Update(keyPress("["))
	assert.False(t, m.Controller().State().LeftActive, "keys are swallowed by the overlay")

	m.Update(keyPress("esc"))
	assert.False(t, m.state.Help.ShowAll)
}

func TestModel_ViewShowsHintsForClosedSidebars(t *testing.T) {
	m := newTestModel(140, 40, Services{})
	start(m)

	view := m.View()
	assert.Contains(t, view, "[ "+theme.Joy.LeftIcon)
	assert.Contains(t, view, theme.Joy.RightIcon+" ]")
	assert.Contains(t, view, "Alpha")
	assert.LessOrEqual(t, len(strings.Split(view, "\n")), 40)
}

func TestModel_SourceChangeReloads(t *testing.T) {
	changes := make(chan struct{}, 1)
	loads := 0
	svc := Services{
		Content: usecase.NewContentService(func(context.Context, string) (*content.Collection, error) {
			loads++
			return testCollection(), nil
		}, "", 0),
		Changes: changes,
	}
	m := newTestModel(140, 40, svc)
	start(m)
	require.Equal(t, 1, loads)

	changes <- struct{}{}
	msg := update.WaitForChangeCmd(changes)()
	_, cmd := m.Update(msg)
	assert.NotNil(t, cmd)
	assert.True(t, m.state.Loading)

	m.Update(update.LoadContentCmd(m.content)())
	assert.Equal(t, 2, loads)
	assert.False(t, m.state.Loading)
}
