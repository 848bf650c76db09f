// Package theme centralizes the colors and styles used by the gmux TUI.
package theme

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Kanagawa-derived palette, dark and light variants.
const (
	darkGreen     = "#98BB6C"
	darkYellow    = "#FF9E3B"
	darkRed       = "#FF5D62"
	darkCyan      = "#7E9CD8"
	darkLightText = "#DCD7BA"
	darkMutedText = "#727169"
	darkBorder    = "#363646"
	darkSelected  = "#223249"

	lightGreen     = "#4E7C5A"
	lightYellow    = "#A68A64"
	lightRed       = "#C34043"
	lightCyan      = "#5B8BBE"
	lightLightText = "#2B2F42"
	lightMutedText = "#6C7086"
	lightBorder    = "#B5BDC5"
	lightSelected  = "#E2E6F3"
)

// ANSI fallback palette for terminals without truecolor.
const (
	terminalGreen     = "2"
	terminalYellow    = "3"
	terminalRed       = "1"
	terminalCyan      = "6"
	terminalLightText = "7"
	terminalMutedText = "8"
	terminalBorder    = "8"
	terminalSelected  = "8"
)

// Colors is the palette a theme provides. lipgloss.TerminalColor allows a
// mix of adaptive and static colors.
type Colors struct {
	Green              lipgloss.TerminalColor
	Yellow             lipgloss.TerminalColor
	Red                lipgloss.TerminalColor
	Cyan               lipgloss.TerminalColor
	LightText          lipgloss.TerminalColor
	MutedText          lipgloss.TerminalColor
	Border             lipgloss.TerminalColor
	SelectedBackground lipgloss.TerminalColor
}

var kanagawaColors = Colors{
	Green:              lipgloss.AdaptiveColor{Dark: darkGreen, Light: lightGreen},
	Yellow:             lipgloss.AdaptiveColor{Dark: darkYellow, Light: lightYellow},
	Red:                lipgloss.AdaptiveColor{Dark: darkRed, Light: lightRed},
	Cyan:               lipgloss.AdaptiveColor{Dark: darkCyan, Light: lightCyan},
	LightText:          lipgloss.AdaptiveColor{Dark: darkLightText, Light: lightLightText},
	MutedText:          lipgloss.AdaptiveColor{Dark: darkMutedText, Light: lightMutedText},
	Border:             lipgloss.AdaptiveColor{Dark: darkBorder, Light: lightBorder},
	SelectedBackground: lipgloss.AdaptiveColor{Dark: darkSelected, Light: lightSelected},
}

var terminalColors = Colors{
	Green:              lipgloss.Color(terminalGreen),
	Yellow:             lipgloss.Color(terminalYellow),
	Red:                lipgloss.Color(terminalRed),
	Cyan:               lipgloss.Color(terminalCyan),
	LightText:          lipgloss.Color(terminalLightText),
	MutedText:          lipgloss.Color(terminalMutedText),
	Border:             lipgloss.Color(terminalBorder),
	SelectedBackground: lipgloss.Color(terminalSelected),
}

// DefaultColors is the active palette, chosen once at startup. Set
// GMUX_THEME=terminal to restrict styling to the 16-color ANSI palette.
var DefaultColors = loadColors()

func loadColors() Colors {
	if os.Getenv("GMUX_THEME") == "terminal" {
		return terminalColors
	}
	return kanagawaColors
}
