package session

import (
	"testing"

	"github.com/grovetools/gmux/config"
	"github.com/stretchr/testify/assert"
)

// enterInput puts the session into the Add flow's directory step so the key
// under test hits the input-mode dispatch.
func enterInput(h *harness) {
	h.s.HandleKey(RuneKey('a'))
}

func TestInputTyping(t *testing.T) {
	h := newHarness()
	enterInput(h)

	typeString(h.s, "/tmp/x")
	assert.Equal(t, "/tmp/x", h.s.Buffer().String())
	assert.Equal(t, 6, h.s.Buffer().Cursor())
}

func TestCtrlBindings(t *testing.T) {
	h := newHarness()
	enterInput(h)
	typeString(h.s, "hello world")

	h.s.HandleKey(CtrlKey('a'))
	assert.Equal(t, 0, h.s.Buffer().Cursor())

	h.s.HandleKey(CtrlKey('f'))
	assert.Equal(t, 1, h.s.Buffer().Cursor())
	h.s.HandleKey(CtrlKey('b'))
	assert.Equal(t, 0, h.s.Buffer().Cursor())

	h.s.HandleKey(CtrlKey('e'))
	assert.Equal(t, 11, h.s.Buffer().Cursor())

	h.s.HandleKey(CtrlKey('w'))
	assert.Equal(t, "hello ", h.s.Buffer().String())
	assert.Equal(t, "world", h.s.Buffer().KillRing())

	h.s.HandleKey(CtrlKey('y'))
	assert.Equal(t, "hello world", h.s.Buffer().String())
}

func TestKillToEndThenYank(t *testing.T) {
	h := newHarness()
	enterInput(h)
	typeString(h.s, "hello world")
	for i := 0; i < 6; i++ {
		h.s.HandleKey(CtrlKey('b'))
	}

	h.s.HandleKey(CtrlKey('k'))
	assert.Equal(t, "hello", h.s.Buffer().String())
	assert.Equal(t, " world", h.s.Buffer().KillRing())

	h.s.HandleKey(CtrlKey('y'))
	assert.Equal(t, "hello world", h.s.Buffer().String())
	assert.Equal(t, 11, h.s.Buffer().Cursor())
}

func TestKillToStart(t *testing.T) {
	h := newHarness()
	enterInput(h)
	typeString(h.s, "abc def")
	h.s.HandleKey(CtrlKey('b'))
	h.s.HandleKey(CtrlKey('b'))
	h.s.HandleKey(CtrlKey('b'))

	h.s.HandleKey(CtrlKey('u'))
	assert.Equal(t, "def", h.s.Buffer().String())
	assert.Equal(t, "abc ", h.s.Buffer().KillRing())
	assert.Equal(t, 0, h.s.Buffer().Cursor())
}

func TestSuperBackspaceKillsToStart(t *testing.T) {
	h := newHarness()
	enterInput(h)
	typeString(h.s, "abcdef")

	k := SpecialKey(KeyBackspace)
	k.Super = true
	h.s.HandleKey(k)
	assert.Equal(t, "", h.s.Buffer().String())
	assert.Equal(t, "abcdef", h.s.Buffer().KillRing())
}

func TestAltWordBindings(t *testing.T) {
	h := newHarness()
	enterInput(h)
	typeString(h.s, "one two three")

	h.s.HandleKey(AltKey('b'))
	assert.Equal(t, 8, h.s.Buffer().Cursor())
	h.s.HandleKey(AltKey('b'))
	assert.Equal(t, 4, h.s.Buffer().Cursor())
	h.s.HandleKey(AltKey('f'))
	assert.Equal(t, 7, h.s.Buffer().Cursor())

	h.s.HandleKey(AltKey('d'))
	assert.Equal(t, "one two", h.s.Buffer().String())
	assert.Equal(t, " three", h.s.Buffer().KillRing())
}

func TestAltArrowsAndBackspace(t *testing.T) {
	h := newHarness()
	enterInput(h)
	typeString(h.s, "one two")

	left := SpecialKey(KeyLeft)
	left.Alt = true
	h.s.HandleKey(left)
	assert.Equal(t, 4, h.s.Buffer().Cursor())

	right := SpecialKey(KeyRight)
	right.Alt = true
	h.s.HandleKey(right)
	assert.Equal(t, 7, h.s.Buffer().Cursor())

	bs := SpecialKey(KeyBackspace)
	bs.Alt = true
	h.s.HandleKey(bs)
	assert.Equal(t, "one ", h.s.Buffer().String())
	assert.Equal(t, "two", h.s.Buffer().KillRing())
}

func TestCtrlArrowsActAsWordMotions(t *testing.T) {
	h := newHarness()
	enterInput(h)
	typeString(h.s, "one two")

	left := SpecialKey(KeyLeft)
	left.Ctrl = true
	h.s.HandleKey(left)
	assert.Equal(t, 4, h.s.Buffer().Cursor())

	right := SpecialKey(KeyRight)
	right.Ctrl = true
	h.s.HandleKey(right)
	assert.Equal(t, 7, h.s.Buffer().Cursor())
}

func TestModifierPrecedence(t *testing.T) {
	// ctrl+alt+f resolves in the ctrl class: cursor moves one character,
	// not one word, and nothing is inserted.
	h := newHarness()
	enterInput(h)
	typeString(h.s, "one two")
	h.s.HandleKey(CtrlKey('a'))

	k := CtrlKey('f')
	k.Alt = true
	h.s.HandleKey(k)
	assert.Equal(t, 1, h.s.Buffer().Cursor())
	assert.Equal(t, "one two", h.s.Buffer().String())
}

func TestUnmatchedModifierRuneIsIgnored(t *testing.T) {
	h := newHarness()
	enterInput(h)
	typeString(h.s, "abc")

	// ctrl+z matches no ctrl binding and must not insert 'z'.
	h.s.HandleKey(CtrlKey('z'))
	assert.Equal(t, "abc", h.s.Buffer().String())

	// Same for an unbound alt rune.
	h.s.HandleKey(AltKey('x'))
	assert.Equal(t, "abc", h.s.Buffer().String())
}

func TestPlainEditingKeys(t *testing.T) {
	h := newHarness()
	enterInput(h)
	typeString(h.s, "abc")

	h.s.HandleKey(SpecialKey(KeyBackspace))
	assert.Equal(t, "ab", h.s.Buffer().String())

	h.s.HandleKey(SpecialKey(KeyHome))
	h.s.HandleKey(SpecialKey(KeyDelete))
	assert.Equal(t, "b", h.s.Buffer().String())
	assert.Equal(t, "", h.s.Buffer().KillRing(), "plain deletes never touch the kill ring")

	h.s.HandleKey(SpecialKey(KeyEnd))
	assert.Equal(t, 1, h.s.Buffer().Cursor())
	h.s.HandleKey(SpecialKey(KeyLeft))
	assert.Equal(t, 0, h.s.Buffer().Cursor())
	h.s.HandleKey(SpecialKey(KeyRight))
	assert.Equal(t, 1, h.s.Buffer().Cursor())
}

func TestCtrlGCancelsFlow(t *testing.T) {
	h := newHarness()
	enterInput(h)
	typeString(h.s, "junk")

	h.s.HandleKey(CtrlKey('g'))
	assert.Equal(t, ModeNormal, h.s.Mode().Kind)
	assert.Equal(t, "", h.s.Buffer().String())
	assert.False(t, h.s.ShouldQuit())
}

func TestCtrlJAndMSubmit(t *testing.T) {
	dir := t.TempDir()
	for _, r := range []rune{'j', 'm'} {
		h := newHarness()
		enterInput(h)
		typeString(h.s, dir)

		h.s.HandleKey(CtrlKey(r))
		assert.Equal(t, StepEditor, h.s.Mode().Step, "ctrl+%c submits the step", r)
	}
}

func TestNormalModeIgnoresUnboundKeys(t *testing.T) {
	h := newHarness(config.Entry{Path: "/tmp/a"})

	h.s.HandleKey(RuneKey('z'))
	h.s.HandleKey(AltKey('x'))
	assert.Equal(t, ModeNormal, h.s.Mode().Kind)
	assert.False(t, h.s.ShouldQuit())
	assert.Equal(t, 0, h.s.Selected())
}

func TestNormalModeIgnoresModifiersOnBoundRunes(t *testing.T) {
	// Modifiers are not filtered on Normal-mode characters, so alt+j moves
	// the selection just like plain j.
	h := newHarness(config.Entry{Path: "/tmp/a"}, config.Entry{Path: "/tmp/b"})

	h.s.HandleKey(AltKey('j'))
	assert.Equal(t, 1, h.s.Selected())
}
