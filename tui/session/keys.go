package session

// KeyCode identifies a key independent of modifiers. KeyRune carries a
// printable character in Key.Rune.
type KeyCode int

const (
	KeyRune KeyCode = iota
	KeyEnter
	KeyEsc
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
)

// Key is the session's terminal-agnostic key event. The outer TUI layer
// translates its framework's key messages into this form before dispatch.
type Key struct {
	Code  KeyCode
	Rune  rune
	Ctrl  bool
	Alt   bool
	Super bool
	Shift bool
}

// RuneKey builds a plain printable-character key.
func RuneKey(r rune) Key {
	return Key{Code: KeyRune, Rune: r}
}

// CtrlKey builds a ctrl+letter combination.
func CtrlKey(r rune) Key {
	return Key{Code: KeyRune, Rune: r, Ctrl: true}
}

// AltKey builds an alt+letter combination.
func AltKey(r rune) Key {
	return Key{Code: KeyRune, Rune: r, Alt: true}
}

// SpecialKey builds a non-character key.
func SpecialKey(code KeyCode) Key {
	return Key{Code: code}
}
