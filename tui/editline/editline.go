// Package editline implements the in-memory line editor used by the input
// panel: an editable rune buffer with a cursor and a single kill-ring slot.
//
// All cursor math is in rune units, never bytes, so multi-byte characters
// keep the cursor aligned with what the user sees. The kill slot holds
// exactly the text removed by the most recent kill operation; it is
// overwritten on every kill and untouched by plain deletes.
package editline

import (
	"strings"
	"unicode"
)

// Buffer is the editable text state. The zero value is an empty buffer.
type Buffer struct {
	runes  []rune
	cursor int
	kill   []rune
}

// New returns an empty buffer.
func New() *Buffer {
	return &Buffer{}
}

// Reset clears the text and cursor but keeps the kill slot.
func (b *Buffer) Reset() {
	b.runes = b.runes[:0]
	b.cursor = 0
}

// SetText replaces the contents and places the cursor at the end.
func (b *Buffer) SetText(text string) {
	b.runes = []rune(text)
	b.cursor = len(b.runes)
}

// String returns the buffer contents.
func (b *Buffer) String() string {
	return string(b.runes)
}

// Len returns the buffer length in runes.
func (b *Buffer) Len() int {
	return len(b.runes)
}

// Cursor returns the cursor position in runes, always in [0, Len()].
func (b *Buffer) Cursor() int {
	return b.cursor
}

// KillRing returns the contents of the kill slot.
func (b *Buffer) KillRing() string {
	return string(b.kill)
}

// ClearKillRing empties the kill slot.
func (b *Buffer) ClearKillRing() {
	b.kill = nil
}

// Insert inserts a rune at the cursor and advances the cursor past it.
func (b *Buffer) Insert(r rune) {
	b.runes = append(b.runes, 0)
	copy(b.runes[b.cursor+1:], b.runes[b.cursor:])
	b.runes[b.cursor] = r
	b.cursor++
}

// InsertString inserts text at the cursor and advances the cursor past it.
func (b *Buffer) InsertString(text string) {
	if text == "" {
		return
	}
	inserted := []rune(text)
	b.runes = append(b.runes[:b.cursor], append(inserted, b.runes[b.cursor:]...)...)
	b.cursor += len(inserted)
}

// DeleteBefore removes the rune left of the cursor. No-op at the start.
// The kill slot is not touched.
func (b *Buffer) DeleteBefore() {
	if b.cursor == 0 {
		return
	}
	b.runes = append(b.runes[:b.cursor-1], b.runes[b.cursor:]...)
	b.cursor--
}

// DeleteAfter removes the rune under the cursor. No-op at the end.
// The kill slot is not touched.
func (b *Buffer) DeleteAfter() {
	if b.cursor >= len(b.runes) {
		return
	}
	b.runes = append(b.runes[:b.cursor], b.runes[b.cursor+1:]...)
}

// MoveLeft moves the cursor one rune left. No-op at the start.
func (b *Buffer) MoveLeft() {
	if b.cursor > 0 {
		b.cursor--
	}
}

// MoveRight moves the cursor one rune right. No-op at the end.
func (b *Buffer) MoveRight() {
	if b.cursor < len(b.runes) {
		b.cursor++
	}
}

// MoveToStart moves the cursor to position 0.
func (b *Buffer) MoveToStart() {
	b.cursor = 0
}

// MoveToEnd moves the cursor past the last rune.
func (b *Buffer) MoveToEnd() {
	b.cursor = len(b.runes)
}

// MoveWordLeft moves the cursor to WordLeftIndex.
func (b *Buffer) MoveWordLeft() {
	b.cursor = b.WordLeftIndex()
}

// MoveWordRight moves the cursor to WordRightIndex.
func (b *Buffer) MoveWordRight() {
	b.cursor = b.WordRightIndex()
}

// WordLeftIndex returns the index of the start of the word left of the
// cursor: whitespace immediately left of the cursor is skipped, then the run
// of non-whitespace before it. A word is a maximal run of non-whitespace.
func (b *Buffer) WordLeftIndex() int {
	idx := b.cursor
	if idx > len(b.runes) {
		idx = len(b.runes)
	}
	for idx > 0 && unicode.IsSpace(b.runes[idx-1]) {
		idx--
	}
	for idx > 0 && !unicode.IsSpace(b.runes[idx-1]) {
		idx--
	}
	return idx
}

// WordRightIndex returns the index just past the word right of the cursor:
// whitespace at and after the cursor is skipped, then the following run of
// non-whitespace.
func (b *Buffer) WordRightIndex() int {
	idx := b.cursor
	if idx > len(b.runes) {
		idx = len(b.runes)
	}
	for idx < len(b.runes) && unicode.IsSpace(b.runes[idx]) {
		idx++
	}
	for idx < len(b.runes) && !unicode.IsSpace(b.runes[idx]) {
		idx++
	}
	return idx
}

// KillRange removes [start, end) and, when non-empty, overwrites the kill
// slot with the removed text. The cursor is clamped into the remaining text.
// A start >= end range is a no-op.
func (b *Buffer) KillRange(start, end int) {
	if start < 0 {
		start = 0
	}
	if end > len(b.runes) {
		end = len(b.runes)
	}
	if start >= end {
		return
	}

	removed := make([]rune, end-start)
	copy(removed, b.runes[start:end])
	b.kill = removed

	b.runes = append(b.runes[:start], b.runes[end:]...)

	switch {
	case b.cursor >= end:
		b.cursor -= end - start
	case b.cursor > start:
		b.cursor = start
	}
}

// KillToStart removes everything before the cursor and moves the cursor to 0.
func (b *Buffer) KillToStart() {
	b.KillRange(0, b.cursor)
}

// KillToEnd removes everything at and after the cursor; the cursor stays put.
func (b *Buffer) KillToEnd() {
	b.KillRange(b.cursor, len(b.runes))
}

// KillWordBackward removes from the previous word start to the cursor and
// moves the cursor to the removed range's start.
func (b *Buffer) KillWordBackward() {
	b.KillRange(b.WordLeftIndex(), b.cursor)
}

// KillWordForward removes from the cursor to past the next word; the cursor
// stays put.
func (b *Buffer) KillWordForward() {
	b.KillRange(b.cursor, b.WordRightIndex())
}

// Yank inserts the kill slot contents at the cursor, advancing the cursor
// past the inserted text. No-op when the slot is empty.
func (b *Buffer) Yank() {
	if len(b.kill) == 0 {
		return
	}
	b.InsertString(string(b.kill))
}

// Trimmed returns the buffer contents with surrounding whitespace removed.
func (b *Buffer) Trimmed() string {
	return strings.TrimSpace(string(b.runes))
}
