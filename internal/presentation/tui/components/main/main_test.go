package mainview

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/flank/internal/domain/theme"
)

func TestRender(t *testing.T) {
	props := Props{
		Width:    60,
		Height:   10,
		Title:    "HEADER",
		Body:     "BODY",
		LeftKey:  "[",
		RightKey: "]",
		Theme:    theme.Joy,
	}

	got := Render(props)

	if !strings.Contains(got, "HEADER") {
		t.Error("Missing header")
	}
	if !strings.Contains(got, "BODY") {
		t.Error("Missing body")
	}
	if w := lipgloss.Width(got); w != 60 {
		t.Errorf("width = %d, want 60", w)
	}
	if h := lipgloss.Height(got); h != 10 {
		t.Errorf("height = %d, want 10", h)
	}
}

func TestRender_ForwardsSidebarFlags(t *testing.T) {
	base := Props{Width: 60, Height: 4, Title: "T", LeftKey: "[", RightKey: "]", Theme: theme.Paper}

	closed := Render(base)
	if !strings.Contains(closed, "[ <") || !strings.Contains(closed, "> ]") {
		t.Errorf("closed sidebars should show hints, got %q", closed)
	}

	base.LeftActive = true
	base.RightActive = true
	open := Render(base)
	if strings.Contains(open, "[ <") || strings.Contains(open, "> ]") {
		t.Errorf("open sidebars should hide hints, got %q", open)
	}
}

func TestRender_ZeroSize(t *testing.T) {
	if got := Render(Props{}); got != "" {
		t.Fatalf("Render() = %q, want empty", got)
	}
}
