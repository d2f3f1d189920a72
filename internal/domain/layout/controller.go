package layout

import (
	"sync"

	"github.com/tesso57/flank/internal/domain/theme"
)

// Viewport reports the current viewport width.
type Viewport interface {
	Width() int
}

// ViewportSource is a Viewport that notifies subscribers on resize.
// Subscribe returns a function that removes the subscription.
type ViewportSource interface {
	Viewport
	Subscribe(fn func()) (unsubscribe func())
}

// Option configures a Controller.
type Option func(*Controller)

// WithCatalog resolves the theme id against c instead of the built-ins.
func WithCatalog(c *theme.Catalog) Option {
	return func(ctrl *Controller) {
		ctrl.catalog = c
	}
}

// OnChange registers fn to be called with the settled state after every
// transition that changed it. fn runs outside the controller lock.
func OnChange(fn func(State)) Option {
	return func(ctrl *Controller) {
		ctrl.onChange = fn
	}
}

// Controller owns the sidebar state.
type Controller struct {
	mu          sync.Mutex
	state       State
	theme       theme.Theme
	catalog     *theme.Catalog
	source      ViewportSource
	unsubscribe func()
	onChange    func(State)
}

// New resolves themeID (falling back to the default theme) and evaluates
// the viewport once, so the returned controller is ready to render.
func New(source ViewportSource, themeID string, opts ...Option) *Controller {
	c := &Controller{source: source}
	for _, opt := range opts {
		opt(c)
	}
	if c.catalog == nil {
		c.catalog = theme.NewCatalog()
	}
	c.theme = c.catalog.Resolve(themeID)
	c.state.Viewport = c.classify()
	return c
}

// Theme returns the resolved theme.
func (c *Controller) Theme() theme.Theme {
	return c.theme
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Mount subscribes to viewport resizes. Mounting twice is a no-op.
func (c *Controller) Mount() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.unsubscribe != nil || c.source == nil {
		return
	}
	c.unsubscribe = c.source.Subscribe(c.EvaluateViewport)
}

// Unmount releases the resize subscription. Unmounting twice is a no-op.
func (c *Controller) Unmount() {
	c.mu.Lock()
	unsubscribe := c.unsubscribe
	c.unsubscribe = nil
	c.mu.Unlock()
	if unsubscribe != nil {
		unsubscribe()
	}
}

// Mounted reports whether the controller holds a resize subscription.
func (c *Controller) Mounted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.unsubscribe != nil
}

// EvaluateViewport re-reads the viewport width. Under a narrow viewport
// with both sidebars open, the right sidebar is closed.
func (c *Controller) EvaluateViewport() {
	c.transition(func(s *State) {
		s.Viewport = c.classify()
		if s.LeftActive && s.RightActive && s.Narrow() {
			s.RightActive = false
		}
	})
}

// ToggleLeft flips the left sidebar. Under a narrow viewport the right
// sidebar is closed.
func (c *Controller) ToggleLeft() {
	c.transition(func(s *State) {
		s.LeftActive = !s.LeftActive
		if s.RightActive && s.Narrow() {
			s.RightActive = false
		}
	})
}

// ToggleRight flips the right sidebar. Under a narrow viewport the left
// sidebar is closed.
func (c *Controller) ToggleRight() {
	c.transition(func(s *State) {
		s.RightActive = !s.RightActive
		if s.LeftActive && s.Narrow() {
			s.LeftActive = false
		}
	})
}

// Restore applies a previously saved sidebar state. If the viewport is
// narrow and both are requested, the left sidebar wins.
func (c *Controller) Restore(left, right bool) {
	c.transition(func(s *State) {
		s.LeftActive = left
		s.RightActive = right
		if s.LeftActive && s.RightActive && s.Narrow() {
			s.RightActive = false
		}
	})
}

// Render injects props into each child according to its role. Children
// with RoleOther are returned unchanged.
func (c *Controller) Render(children []Child) []Child {
	st := c.State()
	out := make([]Child, len(children))
	for i, child := range children {
		switch child.Role {
		case RoleLeftPanel:
			child.Panel = PanelProps{Active: st.LeftActive, Toggle: c.ToggleLeft}
		case RoleRightPanel:
			child.Panel = PanelProps{Active: st.RightActive, Toggle: c.ToggleRight}
		case RoleMainContent:
			child.Main = MainProps{LeftActive: st.LeftActive, RightActive: st.RightActive}
		}
		out[i] = child
	}
	return out
}

func (c *Controller) transition(apply func(*State)) {
	c.mu.Lock()
	before := c.state
	apply(&c.state)
	after := c.state
	c.mu.Unlock()

	if c.onChange != nil && after != before {
		c.onChange(after)
	}
}

func (c *Controller) classify() ViewportClass {
	if c.source == nil {
		return ViewportWide
	}
	if c.theme.Narrow(c.source.Width()) {
		return ViewportNarrow
	}
	return ViewportWide
}
