package browser

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Opener handles opening the application URL in a browser.
type Opener struct {
	browserCmd string
}

// NewOpener creates a browser opener with the detected command.
func NewOpener() *Opener {
	return &Opener{
		browserCmd: detectBrowser(),
	}
}

// detectBrowser detects the available browser command.
func detectBrowser() string {
	browsers := []string{"firefox", "firefox-esr", "google-chrome", "chromium", "brave"}

	for _, browser := range browsers {
		if _, err := exec.LookPath(browser); err == nil {
			return browser
		}
	}

	// Fallback to OS default.
	switch runtime.GOOS {
	case "darwin":
		return "open"
	case "windows":
		return "start"
	default:
		return "xdg-open"
	}
}

// Open launches the browser at the given URL without waiting for it.
func (o *Opener) Open(url string) error {
	cmd := exec.Command(o.browserCmd, url)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("browser: open %s with %s: %w", url, o.browserCmd, err)
	}
	return nil
}

// Command returns the detected browser command.
func (o *Opener) Command() string {
	return o.browserCmd
}
