package session

// HandleKey dispatches one key event through the state machine. The
// interrupt combination (ctrl+c) is checked before mode dispatch in every
// state: it always sets the quit flag, abandoning any in-progress flow
// without saving partial input.
func (s *Session) HandleKey(k Key) {
	if k.Ctrl && k.Code == KeyRune && k.Rune == 'c' {
		s.quit = true
		return
	}

	switch s.mode.Kind {
	case ModeNormal:
		s.handleNormalKey(k)
	case ModeInput:
		s.handleInputKey(k)
	case ModeConfirmDelete:
		s.handleConfirmDeleteKey(k)
	}
}

func (s *Session) handleNormalKey(k Key) {
	if k.Ctrl && k.Code == KeyRune {
		switch k.Rune {
		case 'n':
			s.moveSelectionDown()
			return
		case 'p':
			s.moveSelectionUp()
			return
		}
	}

	switch k.Code {
	case KeyEsc:
		s.quit = true
	case KeyEnter:
		s.launchIndex(s.selected)
	case KeyUp:
		s.moveSelectionUp()
	case KeyDown:
		s.moveSelectionDown()
	case KeyRune:
		switch {
		case k.Rune == 'q':
			s.quit = true
		case k.Rune == 'r':
			s.RefreshAll()
		case k.Rune == 'a':
			s.startAddFlow()
		case k.Rune == 'e':
			s.startEditFlow()
		case k.Rune == 'd':
			s.requestRemove()
		case k.Rune == 'j':
			s.moveSelectionDown()
		case k.Rune == 'k':
			s.moveSelectionUp()
		case k.Rune >= '1' && k.Rune <= '9':
			idx := int(k.Rune - '1')
			if idx < len(s.entries) {
				s.selected = idx
				s.launchIndex(idx)
			}
		}
	}
}

// inputMatcher is one precedence class of the Input-mode key dispatch. A
// matcher returns true when it consumed the key; the chain stops at the
// first match.
type inputMatcher func(s *Session, k Key) bool

// inputMatchers is the ordered precedence chain: ctrl first, then
// super/meta, then alt, then plain keys.
var inputMatchers = []inputMatcher{
	matchCtrlInput,
	matchSuperInput,
	matchAltInput,
	matchPlainInput,
}

func (s *Session) handleInputKey(k Key) {
	for _, match := range inputMatchers {
		if match(s, k) {
			return
		}
	}
}

func matchCtrlInput(s *Session, k Key) bool {
	if !k.Ctrl {
		return false
	}

	switch k.Code {
	case KeyHome:
		s.buffer.MoveToStart()
		return true
	case KeyEnd:
		s.buffer.MoveToEnd()
		return true
	case KeyLeft:
		s.buffer.MoveWordLeft()
		return true
	case KeyRight:
		s.buffer.MoveWordRight()
		return true
	case KeyDelete:
		s.buffer.KillWordForward()
		return true
	case KeyBackspace:
		s.buffer.KillWordBackward()
		return true
	case KeyEnter:
		s.submitFlowStep()
		return true
	case KeyRune:
		switch k.Rune {
		case 'a':
			s.buffer.MoveToStart()
		case 'e':
			s.buffer.MoveToEnd()
		case 'b':
			s.buffer.MoveLeft()
		case 'f':
			s.buffer.MoveRight()
		case 'd':
			s.buffer.DeleteAfter()
		case 'h':
			s.buffer.DeleteBefore()
		case 'k':
			s.buffer.KillToEnd()
		case 'u':
			s.buffer.KillToStart()
		case 'w':
			s.buffer.KillWordBackward()
		case 'y':
			s.buffer.Yank()
		case 'g':
			s.cancelFlow()
		case 'j', 'm':
			s.submitFlowStep()
		default:
			return false
		}
		return true
	}
	return false
}

func matchSuperInput(s *Session, k Key) bool {
	if !k.Super {
		return false
	}

	if k.Code == KeyBackspace {
		s.buffer.KillToStart()
		return true
	}
	return false
}

func matchAltInput(s *Session, k Key) bool {
	if !k.Alt {
		return false
	}

	switch k.Code {
	case KeyLeft:
		s.buffer.MoveWordLeft()
		return true
	case KeyRight:
		s.buffer.MoveWordRight()
		return true
	case KeyDelete:
		s.buffer.KillWordForward()
		return true
	case KeyBackspace:
		s.buffer.KillWordBackward()
		return true
	case KeyRune:
		switch k.Rune {
		case 'b':
			s.buffer.MoveWordLeft()
		case 'f':
			s.buffer.MoveWordRight()
		case 'd':
			s.buffer.KillWordForward()
		default:
			return false
		}
		return true
	}
	return false
}

func matchPlainInput(s *Session, k Key) bool {
	switch k.Code {
	case KeyEsc:
		s.cancelFlow()
		return true
	case KeyEnter:
		s.submitFlowStep()
		return true
	case KeyBackspace:
		s.buffer.DeleteBefore()
		return true
	case KeyDelete:
		s.buffer.DeleteAfter()
		return true
	case KeyLeft:
		s.buffer.MoveLeft()
		return true
	case KeyRight:
		s.buffer.MoveRight()
		return true
	case KeyHome:
		s.buffer.MoveToStart()
		return true
	case KeyEnd:
		s.buffer.MoveToEnd()
		return true
	case KeyRune:
		// Insert only plain (or shifted) characters; a rune with an
		// unmatched modifier is ignored rather than inserted.
		if !k.Ctrl && !k.Alt && !k.Super {
			s.buffer.Insert(k.Rune)
			return true
		}
	}
	return false
}

func (s *Session) handleConfirmDeleteKey(k Key) {
	switch k.Code {
	case KeyEsc:
		s.mode = Mode{Kind: ModeNormal}
		s.clearStatus()
	case KeyEnter:
		s.removeEntry(s.mode.DeleteIndex)
		s.mode = Mode{Kind: ModeNormal}
	}
}
