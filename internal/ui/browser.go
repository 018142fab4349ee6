package ui

import (
	"fmt"
	"io"

	"github.com/pkg/browser"
)

// URLOpener opens a URL outside the terminal
type URLOpener func(url string) error

func init() {
	// The opener's output would land on top of the TUI
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

// openInBrowser hands url to the platform opener. The browser decides
// whether it lands in a new window or tab.
func openInBrowser(url string) error {
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	return nil
}
