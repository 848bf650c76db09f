// Package tui is the bubbletea front end of the interactive switcher. It
// translates terminal key events into session keys, drives the refresh tick,
// and renders the directory list and input panel.
package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// InitializeTUI prepares the terminal environment before the program starts.
// When color output is forced via CLICOLOR_FORCE or COLORTERM the lipgloss
// color profile is pinned accordingly, which keeps styling consistent in
// non-interactive and CI environments. Call it at the start of main.
func InitializeTUI() {
	if os.Getenv("CLICOLOR_FORCE") == "1" || os.Getenv("COLORTERM") == "truecolor" {
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}
