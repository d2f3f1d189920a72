// Package layout coordinates two sidebars and a main region under a
// responsive breakpoint.
package layout

// ViewportClass is the controller's view of the terminal width.
type ViewportClass int

const (
	// ViewportUnknown means the viewport has not been evaluated yet.
	ViewportUnknown ViewportClass = iota
	// ViewportWide allows both sidebars to be open together.
	ViewportWide
	// ViewportNarrow makes the sidebars mutually exclusive.
	ViewportNarrow
)

func (c ViewportClass) String() string {
	switch c {
	case ViewportWide:
		return "wide"
	case ViewportNarrow:
		return "narrow"
	default:
		return "unknown"
	}
}

// State is a snapshot of the layout.
type State struct {
	LeftActive  bool
	RightActive bool
	Viewport    ViewportClass
}

// Narrow reports whether the viewport is below the breakpoint.
func (s State) Narrow() bool {
	return s.Viewport == ViewportNarrow
}

// Role tags a child with the position it is rendered in.
type Role int

const (
	// RoleOther children are passed through untouched.
	RoleOther Role = iota
	RoleLeftPanel
	RoleRightPanel
	RoleMainContent
)

func (r Role) String() string {
	switch r {
	case RoleLeftPanel:
		return "left-panel"
	case RoleRightPanel:
		return "right-panel"
	case RoleMainContent:
		return "main-content"
	default:
		return "other"
	}
}

// PanelProps are injected into left and right panel children.
type PanelProps struct {
	Active bool
	Toggle func()
}

// MainProps are injected into main-content children.
type MainProps struct {
	LeftActive  bool
	RightActive bool
}

// Child is one element of the layout with its declared role. Render fills
// Panel or Main according to Role; View renders the child with those props.
type Child struct {
	Role  Role
	Key   string
	Panel PanelProps
	Main  MainProps
	View  func(Child) string
}

// Render renders the child, or returns "" when it has no view.
func (c Child) Render() string {
	if c.View == nil {
		return ""
	}
	return c.View(c)
}
