package render

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Line draws a prompt and the edited text on a single terminal row. With a
// bar cursor the terminal cursor is placed at the edit position; with a
// block cursor the cell under the edit position is drawn in reverse video
// and the terminal cursor stays hidden. When the text is wider than the row
// it scrolls horizontally to keep the cursor visible.
type Line struct {
	w      io.Writer
	prompt string
	width  int  // 0 = unlimited
	block  bool // reverse-video cell instead of the terminal cursor
}

// NewLine creates a renderer writing to w. width is the row width in
// columns; 0 disables scrolling.
func NewLine(w io.Writer, prompt string, width int, blockCursor bool) *Line {
	if prompt != "" {
		prompt += " "
	}
	return &Line{w: w, prompt: sanitize(prompt), width: width, block: blockCursor}
}

// Render redraws the row for text with the cursor at byte offset cursor.
func (l *Line) Render(text []byte, cursor int) {
	before := sanitize(string(text[:cursor]))
	after := sanitize(string(text[cursor:]))
	promptWidth := runewidth.StringWidth(l.prompt)

	if l.width > 0 {
		// Leave one column for the cursor at the end of the row.
		avail := max(l.width-promptWidth-1, 1)
		for runewidth.StringWidth(before) > avail {
			_, size := utf8.DecodeRuneInString(before)
			before = before[size:]
		}
		after = runewidth.Truncate(after, avail-runewidth.StringWidth(before), "")
	}

	var sb strings.Builder
	sb.WriteString(CursorHide + "\r" + ClearLine)
	sb.WriteString(l.prompt)
	sb.WriteString(before)

	if l.block {
		// Cursor is ON a character; past the end it sits on a blank cell.
		cell, rest := " ", ""
		if after != "" {
			_, size := utf8.DecodeRuneInString(after)
			cell, rest = after[:size], after[size:]
		}
		sb.WriteString(ReverseOn + cell + ReverseOff + rest)
		io.WriteString(l.w, sb.String())
		return
	}

	sb.WriteString(after)
	sb.WriteString("\r")
	if col := promptWidth + runewidth.StringWidth(before); col > 0 {
		fmt.Fprintf(&sb, "\033[%dC", col)
	}
	sb.WriteString(CursorShow)
	io.WriteString(l.w, sb.String())
}

// Clear erases the row, leaving a visible cursor at its start.
func (l *Line) Clear() {
	io.WriteString(l.w, "\r"+ClearLine+CursorShow)
}

// sanitize replaces control characters so that pasted text cannot emit
// terminal escape sequences.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return '?'
		}
		return r
	}, s)
}
