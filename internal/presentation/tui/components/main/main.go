// Package mainview provides the main content region component.
package mainview

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/flank/internal/domain/theme"
	"github.com/tesso57/flank/internal/presentation/tui/components/header"
	"github.com/tesso57/flank/internal/presentation/tui/metrics"
)

// Props defines the properties for the main view component.
type Props struct {
	Width       int
	Height      int
	Title       string
	Subtitle    string
	LeftActive  bool
	RightActive bool
	LeftKey     string
	RightKey    string
	Body        string
	Theme       theme.Theme
}

// Render renders the header, with hints for closed sidebars, above the body.
func Render(p Props) string {
	if p.Width <= 0 || p.Height <= 0 {
		return ""
	}
	innerWidth := max(p.Width-metrics.MainPaddingLeft, 1)

	head := header.Render(header.Props{
		Title:       p.Title,
		Subtitle:    p.Subtitle,
		LeftActive:  p.LeftActive,
		RightActive: p.RightActive,
		LeftKey:     p.LeftKey,
		RightKey:    p.RightKey,
		Width:       innerWidth,
		Theme:       p.Theme,
	})

	content := head
	if p.Body != "" {
		content = head + "\n" + p.Body
	}

	return lipgloss.NewStyle().
		Width(p.Width).
		Height(p.Height).
		MaxWidth(p.Width).
		MaxHeight(p.Height).
		PaddingLeft(metrics.MainPaddingLeft).
		Foreground(p.Theme.Text).
		Render(content)
}
