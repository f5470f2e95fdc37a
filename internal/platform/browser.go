package platform

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// Command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
	StartCommand   = "start"
	WindowsCmdFlag = "/c"
)

// Linux browsers tried when xdg-open is unavailable
var LinuxBrowsers = []string{"firefox", "chromium", "google-chrome", "brave"}

// OpenInBrowser opens the URL in the system default browser
func OpenInBrowser(rawURL string) error {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return fmt.Errorf("URL is empty")
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, rawURL).Run()
	case OSWindows:
		return exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, "", rawURL).Run()
	case OSLinux:
		return openInBrowserLinux(rawURL)
	case OSAndroid:
		return exec.Command("am", "start", "-a", "android.intent.action.VIEW", "-d", rawURL).Run()
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openInBrowserLinux tries xdg-open first and falls back to known browsers
func openInBrowserLinux(rawURL string) error {
	if err := exec.Command(XDGOpenCommand, rawURL).Run(); err == nil {
		return nil
	}

	for _, browser := range LinuxBrowsers {
		if _, err := exec.LookPath(browser); err == nil {
			return exec.Command(browser, rawURL).Run()
		}
	}

	return fmt.Errorf("no suitable browser found")
}
