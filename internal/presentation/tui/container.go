// Package tui provides the main user interface model and view components.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/flank/internal/domain/layout"
	mainview "github.com/tesso57/flank/internal/presentation/tui/components/main"
	"github.com/tesso57/flank/internal/presentation/tui/components/modal"
	"github.com/tesso57/flank/internal/presentation/tui/components/sidebar"
	"github.com/tesso57/flank/internal/presentation/tui/metrics"
	"github.com/tesso57/flank/internal/presentation/tui/update"
	"github.com/tesso57/flank/internal/presentation/tui/view"
)

func (m *Model) buildProps() view.Props {
	return view.Props{
		Children: m.ctrl.Render(m.children()),
		Modal:    m.buildModalProps(),
	}
}

func (m *Model) children() []layout.Child {
	return []layout.Child{
		{Role: layout.RoleLeftPanel, Key: "contents", View: m.renderLeft},
		{Role: layout.RoleMainContent, Key: "main", View: m.renderMain},
		{Role: layout.RoleRightPanel, Key: "details", View: m.renderRight},
		{Role: layout.RoleOther, Key: "footer", View: m.renderFooter},
	}
}

// panelProps returns the props the controller injects into the sidebars.
func (m *Model) panelProps() (left, right layout.PanelProps) {
	for _, child := range m.ctrl.Render(m.children()) {
		switch child.Role {
		case layout.RoleLeftPanel:
			left = child.Panel
		case layout.RoleRightPanel:
			right = child.Panel
		}
	}
	return left, right
}

func (m *Model) renderLeft(c layout.Child) string {
	th := m.ctrl.Theme()
	return sidebar.Left(sidebar.Props{
		Active: c.Panel.Active,
		Toggle: c.Panel.Toggle,
		Title:  m.settings.Layout.LeftTitle,
		Icon:   th.LeftIcon,
		Body:   m.state.List.View(),
		Width:  m.state.Metrics.LeftWidth,
		Height: m.state.Metrics.PanelHeight,
		Theme:  th,
	})
}

func (m *Model) renderRight(c layout.Child) string {
	th := m.ctrl.Theme()
	width := m.state.Metrics.RightWidth
	bodyWidth := max(width-metrics.SidebarBorderWidth-1, 1)
	return sidebar.Right(sidebar.Props{
		Active: c.Panel.Active,
		Toggle: c.Panel.Toggle,
		Title:  m.settings.Layout.RightTitle,
		Icon:   th.RightIcon,
		Body:   indent(update.DetailsText(m.state, bodyWidth, time.Now())),
		Width:  width,
		Height: m.state.Metrics.PanelHeight,
		Theme:  th,
	})
}

func (m *Model) renderMain(c layout.Child) string {
	title, subtitle := update.MainTitle(m.state, m.settings.Layout.MainTitle)
	return mainview.Render(mainview.Props{
		Width:       m.state.Metrics.MainWidth,
		Height:      m.state.Metrics.BodyHeight,
		Title:       title,
		Subtitle:    subtitle,
		LeftActive:  c.Main.LeftActive,
		RightActive: c.Main.RightActive,
		LeftKey:     m.state.Keys.ToggleLeft.Help().Key,
		RightKey:    m.state.Keys.ToggleRight.Help().Key,
		Body:        m.mainBody(),
		Theme:       m.ctrl.Theme(),
	})
}

func (m *Model) mainBody() string {
	switch {
	case m.state.Loading && m.state.Collection == nil:
		return fmt.Sprintf("\n  %s Loading...", m.state.Spinner.View())
	case m.state.Err != nil && m.state.Collection == nil:
		return fmt.Sprintf("Error: %v\n\nPress %s to retry.", m.state.Err, m.state.Keys.Reload.Help().Key)
	case m.state.Collection == nil || m.state.Collection.Len() == 0:
		return "Nothing to show."
	default:
		return m.state.Viewport.View()
	}
}

func (m *Model) renderFooter(layout.Child) string {
	return lipgloss.NewStyle().Foreground(m.ctrl.Theme().Muted).Render(update.FooterContent(m.state))
}

func (m *Model) buildModalProps() modal.Props {
	if !m.state.Help.ShowAll {
		return modal.Props{}
	}
	return modal.Props{
		Visible: true,
		Title:   "Keys",
		Body:    m.state.Help.View(&m.state.Keys),
		Width:   m.state.Width,
		Height:  m.state.Height,
		Theme:   m.ctrl.Theme(),
	}
}

func indent(text string) string {
	return " " + strings.ReplaceAll(text, "\n", "\n ")
}
