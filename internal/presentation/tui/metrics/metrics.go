// Package metrics centralizes layout constants for the TUI.
package metrics

const (
	HeaderLines        = 2
	SidebarTitleLines  = 2
	SidebarBorderWidth = 1
	MainPaddingLeft    = 1

	// MinMainWidth is kept free for the main region when sizing sidebars.
	MinMainWidth = 20
)
