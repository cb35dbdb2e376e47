// Package lineedit provides a bounded single-line UTF-8 editor and the
// translation of key events into editing actions.
package lineedit

import (
	"slices"
	"strings"
)

// DefaultCapacity is the buffer size used when none is configured. One byte
// of it is reserved, so at most DefaultCapacity-1 bytes of text are held.
const DefaultCapacity = 4096

// Editor is a fixed-capacity single-line text editor with cursor tracking.
// The cursor is a byte offset that always sits on a code point boundary.
type Editor struct {
	text     []byte
	cursor   int
	capacity int
}

// New creates an empty Editor holding at most capacity-1 bytes.
func New(capacity int) *Editor {
	if capacity < 1 {
		capacity = 1
	}
	return &Editor{
		text:     make([]byte, 0, capacity-1),
		capacity: capacity,
	}
}

// Text returns the current text.
func (e *Editor) Text() string {
	return string(e.text)
}

// Bytes returns the current text without copying. Callers must not modify it.
func (e *Editor) Bytes() []byte {
	return e.text
}

// Cursor returns the current cursor position.
func (e *Editor) Cursor() int {
	return e.cursor
}

// Len returns the length of the text in bytes.
func (e *Editor) Len() int {
	return len(e.text)
}

// Capacity returns the configured capacity, including the reserved byte.
func (e *Editor) Capacity() int {
	return e.capacity
}

// room returns how many more bytes can be inserted.
func (e *Editor) room() int {
	return e.capacity - 1 - len(e.text)
}

// Set replaces the text and moves cursor to end. Invalid UTF-8 is replaced
// with U+FFFD, and text beyond the capacity is dropped at the last whole
// code point that fits.
func (e *Editor) Set(text string) {
	text = strings.ToValidUTF8(text, "\uFFFD")
	n := fit([]byte(text), min(len(text), e.capacity-1))
	e.text = append(e.text[:0], text[:n]...)
	e.cursor = len(e.text)
}

// Insert adds span at the cursor position. The span is truncated to the
// remaining room, and rejected entirely if it starts with a control byte.
// Returns true if any text was inserted.
func (e *Editor) Insert(span []byte) bool {
	n := min(len(span), e.room())
	if n <= 0 || isControl(span[0]) {
		return false
	}
	n = fit(span, n)
	if n == 0 {
		return false
	}
	e.text = slices.Insert(e.text, e.cursor, span[:n]...)
	e.cursor += n
	return true
}

// InsertString adds a string at the cursor position.
func (e *Editor) InsertString(s string) bool {
	return e.Insert([]byte(s))
}

// DeleteBackward removes the code point before the cursor (backspace).
// Returns true if a character was deleted.
func (e *Editor) DeleteBackward() bool {
	if e.cursor == 0 {
		return false
	}
	start := PreviousBoundary(e.text, e.cursor)
	e.remove(start, e.cursor)
	return true
}

// DeleteForward removes the code point at the cursor (delete).
// Returns true if a character was deleted.
func (e *Editor) DeleteForward() bool {
	if e.cursor == len(e.text) {
		return false
	}
	end := NextBoundary(e.text, e.cursor, len(e.text))
	e.remove(e.cursor, end)
	return true
}

// Left moves cursor one code point left.
// Returns true if cursor moved.
func (e *Editor) Left() bool {
	if e.cursor == 0 {
		return false
	}
	e.cursor = PreviousBoundary(e.text, e.cursor)
	return true
}

// Right moves cursor one code point right.
// Returns true if cursor moved.
func (e *Editor) Right() bool {
	if e.cursor == len(e.text) {
		return false
	}
	e.cursor = NextBoundary(e.text, e.cursor, len(e.text))
	return true
}

// Home moves cursor to beginning of line.
func (e *Editor) Home() bool {
	if e.cursor == 0 {
		return false
	}
	e.cursor = 0
	return true
}

// End moves cursor to end of line.
func (e *Editor) End() bool {
	if e.cursor == len(e.text) {
		return false
	}
	e.cursor = len(e.text)
	return true
}

// KillToEnd deletes from cursor to end of line (Ctrl+K).
func (e *Editor) KillToEnd() bool {
	if e.cursor == len(e.text) {
		return false
	}
	e.text = e.text[:e.cursor]
	return true
}

// KillToStart deletes from beginning to cursor (Ctrl+U).
func (e *Editor) KillToStart() bool {
	if e.cursor == 0 {
		return false
	}
	e.remove(0, e.cursor)
	return true
}

// DeleteWordBackward deletes the spaces before the cursor and the run of
// non-space bytes before them (Ctrl+W). Only ASCII space separates words.
func (e *Editor) DeleteWordBackward() bool {
	if e.cursor == 0 {
		return false
	}
	e.remove(e.bigWordBoundaryLeft(), e.cursor)
	return true
}

// bigWordBoundaryLeft finds the start of the space-delimited WORD that
// ends at the cursor, including any spaces between it and the cursor.
func (e *Editor) bigWordBoundaryLeft() int {
	i := e.cursor
	// Skip spaces
	for i > 0 && e.text[i-1] == ' ' {
		i--
	}
	// Skip non-space chars
	for i > 0 && e.text[i-1] != ' ' {
		i--
	}
	return i
}

// remove deletes text[start:end] and leaves the cursor at start.
func (e *Editor) remove(start, end int) {
	e.text = slices.Delete(e.text, start, end)
	e.cursor = start
}

// isControl reports whether b is an ASCII control character.
func isControl(b byte) bool {
	return b < 0x20 || b == 0x7f
}

// fit shortens n so that span[:n] does not end inside a code point.
func fit(span []byte, n int) int {
	if n < len(span) && !IsLeadByte(span[n]) {
		return PreviousBoundary(span, n)
	}
	return n
}
