package editline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func bufferWithText(text string, cursor int) *Buffer {
	b := New()
	b.SetText(text)
	b.cursor = cursor
	return b
}

func TestInsertAndDelete(t *testing.T) {
	b := New()
	for _, r := range "hello" {
		b.Insert(r)
	}
	assert.Equal(t, "hello", b.String())
	assert.Equal(t, 5, b.Cursor())

	b.MoveToStart()
	b.Insert('>')
	assert.Equal(t, ">hello", b.String())
	assert.Equal(t, 1, b.Cursor())

	b.DeleteBefore()
	assert.Equal(t, "hello", b.String())
	assert.Equal(t, 0, b.Cursor())

	b.DeleteAfter()
	assert.Equal(t, "ello", b.String())

	// Edge no-ops.
	b.MoveToStart()
	b.DeleteBefore()
	assert.Equal(t, "ello", b.String())
	b.MoveToEnd()
	b.DeleteAfter()
	assert.Equal(t, "ello", b.String())
}

func TestCursorStaysInBounds(t *testing.T) {
	b := New()
	ops := []func(){
		func() { b.Insert('a') },
		func() { b.Insert('界') },
		func() { b.DeleteBefore() },
		func() { b.DeleteAfter() },
		func() { b.MoveLeft() },
		func() { b.MoveRight() },
		func() { b.MoveToStart() },
		func() { b.MoveToEnd() },
		func() { b.MoveWordLeft() },
		func() { b.MoveWordRight() },
		func() { b.KillToStart() },
		func() { b.KillToEnd() },
		func() { b.KillWordBackward() },
		func() { b.KillWordForward() },
		func() { b.Yank() },
	}

	// Deterministic walk through every op from a variety of states.
	for round := 0; round < 20; round++ {
		for i, op := range ops {
			op()
			assert.GreaterOrEqual(t, b.Cursor(), 0, "round %d op %d", round, i)
			assert.LessOrEqual(t, b.Cursor(), b.Len(), "round %d op %d", round, i)
		}
	}
}

func TestRuneUnits(t *testing.T) {
	b := New()
	b.SetText("héllo 世界")
	assert.Equal(t, 8, b.Len())
	assert.Equal(t, 8, b.Cursor())

	b.MoveLeft()
	b.DeleteAfter()
	assert.Equal(t, "héllo 世", b.String())

	b.MoveToStart()
	b.MoveRight()
	b.MoveRight()
	b.DeleteBefore()
	assert.Equal(t, "hllo 世", b.String())
	assert.Equal(t, 1, b.Cursor())
}

func TestWordMotions(t *testing.T) {
	// "hello world" with cursor inside "world".
	b := bufferWithText("hello world", 8)
	assert.Equal(t, 6, b.WordLeftIndex())
	assert.Equal(t, 11, b.WordRightIndex())

	// Left skips trailing whitespace first.
	b = bufferWithText("hello   world", 8)
	assert.Equal(t, 0, b.WordLeftIndex())

	// Right skips leading whitespace first.
	b = bufferWithText("hello   world", 5)
	assert.Equal(t, 13, b.WordRightIndex())

	// Idempotent at the boundaries.
	b = bufferWithText("hello", 0)
	assert.Equal(t, 0, b.WordLeftIndex())
	b.MoveToEnd()
	assert.Equal(t, 5, b.WordRightIndex())

	// Inside a single word, left then right returns to the word end.
	b = bufferWithText("directory", 4)
	b.MoveWordLeft()
	assert.Equal(t, 0, b.Cursor())
	b.MoveWordRight()
	assert.Equal(t, 9, b.Cursor())
}

func TestKillToEndAndYank(t *testing.T) {
	b := bufferWithText("hello world", 5)

	b.KillToEnd()
	assert.Equal(t, "hello", b.String())
	assert.Equal(t, " world", b.KillRing())
	assert.Equal(t, 5, b.Cursor())

	b.Yank()
	assert.Equal(t, "hello world", b.String())
	assert.Equal(t, 11, b.Cursor())

	// Repeated yank without a new kill reproduces the same text.
	b.Yank()
	assert.Equal(t, "hello world world", b.String())
	assert.Equal(t, " world", b.KillRing())
}

func TestKillToStart(t *testing.T) {
	b := bufferWithText("hello world", 5)
	b.KillToStart()
	assert.Equal(t, " world", b.String())
	assert.Equal(t, "hello", b.KillRing())
	assert.Equal(t, 0, b.Cursor())
}

func TestKillWordBackward(t *testing.T) {
	b := bufferWithText("one two three", 13)
	b.KillWordBackward()
	assert.Equal(t, "one two ", b.String())
	assert.Equal(t, "three", b.KillRing())
	assert.Equal(t, 8, b.Cursor())

	// Kill overwrites, never appends.
	b.KillWordBackward()
	assert.Equal(t, "one ", b.String())
	assert.Equal(t, "two ", b.KillRing())
}

func TestKillWordForward(t *testing.T) {
	b := bufferWithText("one two three", 4)
	b.KillWordForward()
	assert.Equal(t, "one  three", b.String())
	assert.Equal(t, "two", b.KillRing())
	assert.Equal(t, 4, b.Cursor())
}

func TestNonKillDeleteLeavesKillRing(t *testing.T) {
	b := bufferWithText("hello world", 5)
	b.KillToEnd()
	assert.Equal(t, " world", b.KillRing())

	b.DeleteBefore()
	b.DeleteBefore()
	assert.Equal(t, "hel", b.String())
	assert.Equal(t, " world", b.KillRing())
}

func TestEmptyKillIsNoOp(t *testing.T) {
	b := bufferWithText("hello", 0)
	b.KillToEnd()
	assert.Equal(t, "hello", b.KillRing())

	// Killing an empty range must not clobber the slot.
	b2 := bufferWithText("hello", 0)
	b2.KillToEnd()
	b2.MoveToStart()
	b2.KillToStart()
	assert.Equal(t, "hello", b2.KillRing())
}

func TestYankEmptySlot(t *testing.T) {
	b := bufferWithText("abc", 1)
	b.Yank()
	assert.Equal(t, "abc", b.String())
	assert.Equal(t, 1, b.Cursor())
}

func TestKillRangeClampsAndIgnoresInverted(t *testing.T) {
	b := bufferWithText("abcdef", 3)
	b.KillRange(4, 2)
	assert.Equal(t, "abcdef", b.String())

	b.KillRange(-5, 2)
	assert.Equal(t, "cdef", b.String())
	assert.Equal(t, "ab", b.KillRing())
	assert.Equal(t, 1, b.Cursor())
}

func TestTrimmed(t *testing.T) {
	b := bufferWithText("  ~/projects/app  ", 5)
	assert.Equal(t, "~/projects/app", b.Trimmed())
}
