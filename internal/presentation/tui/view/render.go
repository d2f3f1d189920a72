// Package view orchestrates the composition of UI components.
package view

import (
	"strings"

	"github.com/tesso57/flank/internal/domain/layout"
	frame "github.com/tesso57/flank/internal/presentation/tui/components/layout"
	"github.com/tesso57/flank/internal/presentation/tui/components/modal"
)

// Props aggregates the rendered children and the overlay.
type Props struct {
	Children []layout.Child
	Modal    modal.Props
}

// Render places each child by role. Children with RoleOther are stacked
// below the panes in order.
func Render(p Props) string {
	if p.Modal.Visible {
		return modal.Render(p.Modal)
	}

	var fp frame.Props
	var others []string
	for _, child := range p.Children {
		out := child.Render()
		switch child.Role {
		case layout.RoleLeftPanel:
			fp.Left = out
		case layout.RoleMainContent:
			fp.Main = out
		case layout.RoleRightPanel:
			fp.Right = out
		default:
			if out != "" {
				others = append(others, out)
			}
		}
	}
	fp.Footer = strings.Join(others, "\n")
	return frame.Render(fp)
}
