// Package session describes the sidebar state remembered between runs.
package session

import "time"

// DefaultProfile is used when no profile is configured.
const DefaultProfile = "default"

// PanelState is the saved open/closed state of both sidebars.
type PanelState struct {
	Profile     string
	LeftActive  bool
	RightActive bool
	UpdatedAt   time.Time
}
