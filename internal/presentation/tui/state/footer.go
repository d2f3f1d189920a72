package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
)

// FooterText returns the footer content: an optional status line above the
// help line.
func FooterText(loading bool, statusMessage, helpText string) string {
	status := strings.TrimSpace(statusMessage)
	if loading || status == "" {
		return helpText
	}
	if helpText == "" {
		return status
	}
	return status + "\n" + helpText
}

// FooterHelpText renders the short help line.
func FooterHelpText(h help.Model, keys KeyMap) string {
	h.ShowAll = false
	return h.View(&keys)
}
