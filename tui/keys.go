package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/grovetools/gmux/tui/session"
)

// translateKey converts a bubbletea key message into the session's
// terminal-agnostic key form. Returns false for keys the session has no
// representation for.
func translateKey(msg tea.KeyMsg) (session.Key, bool) {
	alt := msg.Alt

	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return session.Key{}, false
		}
		k := session.RuneKey(msg.Runes[0])
		k.Alt = alt
		return k, true
	case tea.KeySpace:
		k := session.RuneKey(' ')
		k.Alt = alt
		return k, true
	case tea.KeyEnter:
		return session.Key{Code: session.KeyEnter, Alt: alt}, true
	case tea.KeyEsc:
		return session.Key{Code: session.KeyEsc, Alt: alt}, true
	case tea.KeyBackspace:
		return session.Key{Code: session.KeyBackspace, Alt: alt}, true
	case tea.KeyDelete:
		return session.Key{Code: session.KeyDelete, Alt: alt}, true
	case tea.KeyUp:
		return session.Key{Code: session.KeyUp, Alt: alt}, true
	case tea.KeyDown:
		return session.Key{Code: session.KeyDown, Alt: alt}, true
	case tea.KeyLeft:
		return session.Key{Code: session.KeyLeft, Alt: alt}, true
	case tea.KeyRight:
		return session.Key{Code: session.KeyRight, Alt: alt}, true
	case tea.KeyHome:
		return session.Key{Code: session.KeyHome, Alt: alt}, true
	case tea.KeyEnd:
		return session.Key{Code: session.KeyEnd, Alt: alt}, true
	case tea.KeyCtrlLeft:
		return session.Key{Code: session.KeyLeft, Ctrl: true}, true
	case tea.KeyCtrlRight:
		return session.Key{Code: session.KeyRight, Ctrl: true}, true
	case tea.KeyTab:
		return session.Key{}, false
	}

	// The remaining control characters map back to ctrl+letter. Enter, tab,
	// and escape were handled above, so the range check is safe.
	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		r := rune('a' + int(msg.Type) - int(tea.KeyCtrlA))
		k := session.CtrlKey(r)
		k.Alt = alt
		return k, true
	}

	return session.Key{}, false
}
