package upi

import (
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
)

// Launcher opens the external payment application, either through a
// deep link or directly by application identifier. The hand-off is
// fire-and-forget: no confirmation ever comes back.
type Launcher interface {
	OpenURL(link string) error
	OpenApp(identifier string) error
}

// OSLauncher dispatches open requests to the operating system.
type OSLauncher struct{}

// OpenURL asks the OS to open a deep link with whatever application
// claims its scheme.
func (OSLauncher) OpenURL(link string) error {
	var err error
	switch runtime.GOOS {
	case "linux":
		err = exec.Command("xdg-open", link).Start() //nolint:gosec
	case "windows":
		err = exec.Command("rundll32", "url.dll,FileProtocolHandler", link).Start() //nolint:gosec
	case "darwin":
		err = exec.Command("open", link).Start() //nolint:gosec
	default:
		err = fmt.Errorf("unsupported platform %s", runtime.GOOS)
	}
	if err != nil {
		slog.Debug("Failed to open payment link", "error", err)
	}
	return err
}

// OpenApp launches an application directly by its identifier.
func (OSLauncher) OpenApp(identifier string) error {
	var err error
	switch runtime.GOOS {
	case "linux":
		err = exec.Command("gtk-launch", identifier).Start() //nolint:gosec
	case "darwin":
		err = exec.Command("open", "-b", identifier).Start() //nolint:gosec
	case "windows":
		err = exec.Command("explorer", `shell:AppsFolder\`+identifier).Start() //nolint:gosec
	default:
		err = fmt.Errorf("unsupported platform %s", runtime.GOOS)
	}
	if err != nil {
		slog.Debug("Failed to launch payment app", "app", identifier, "error", err)
	}
	return err
}
