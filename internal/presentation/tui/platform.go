package tui

import (
	"errors"
	"os/exec"
	"runtime"
)

// OSOpenCmd builds the command that opens url in a browser. Tests replace it.
var OSOpenCmd = func(url string) *exec.Cmd {
	switch runtime.GOOS {
	case "linux", "freebsd", "openbsd":
		return exec.Command("xdg-open", url) //nolint:gosec
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url) //nolint:gosec
	case "darwin":
		return exec.Command("open", url) //nolint:gosec
	default:
		return nil
	}
}

func openBrowser(url string) error {
	cmd := OSOpenCmd(url)
	if cmd == nil {
		return errors.New("opening links is not supported on " + runtime.GOOS)
	}
	return cmd.Start()
}
