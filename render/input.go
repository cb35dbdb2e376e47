package render

import (
	"io"
	"unicode/utf8"

	"promptline/lineedit"
)

// Input reads raw terminal bytes and decodes them into key events.
type Input struct {
	r       io.Reader
	buf     []byte
	pending []byte
	more    bool // last read filled buf, so a sequence may continue
}

// NewInput creates a key event source reading from r, normally a terminal
// in raw mode.
func NewInput(r io.Reader) *Input {
	return &Input{r: r, buf: make([]byte, 256)}
}

// NextEvent blocks until a complete key event has been read.
func (in *Input) NextEvent() (lineedit.KeyEvent, error) {
	for {
		if len(in.pending) > 0 {
			if ev, n := decode(in.pending, in.more); n > 0 {
				in.pending = in.pending[n:]
				return ev, nil
			}
		}
		n, err := in.r.Read(in.buf)
		if n > 0 {
			in.pending = append(in.pending, in.buf[:n]...)
			in.more = n == len(in.buf)
			continue
		}
		if err != nil {
			return lineedit.KeyEvent{}, err
		}
	}
}

// csiTilde maps the numeric parameter of ESC [ n ~ sequences.
var csiTilde = map[int]lineedit.KeySym{
	1:  lineedit.KeyHome,
	2:  lineedit.KeyInsert,
	3:  lineedit.KeyDelete,
	4:  lineedit.KeyEnd,
	5:  lineedit.KeyPrior,
	6:  lineedit.KeyNext,
	7:  lineedit.KeyHome,
	8:  lineedit.KeyEnd,
	11: lineedit.KeyF1, 12: lineedit.KeyF1 + 1, 13: lineedit.KeyF1 + 2,
	14: lineedit.KeyF1 + 3, 15: lineedit.KeyF1 + 4,
	17: lineedit.KeyF1 + 5, 18: lineedit.KeyF1 + 6, 19: lineedit.KeyF1 + 7,
	20: lineedit.KeyF1 + 8, 21: lineedit.KeyF1 + 9,
	23: lineedit.KeyF1 + 10, 24: lineedit.KeyF1 + 11,
}

// csiFinal maps the final byte of ESC [ and ESC O sequences.
var csiFinal = map[byte]lineedit.KeySym{
	'A': lineedit.KeyUp,
	'B': lineedit.KeyDown,
	'C': lineedit.KeyRight,
	'D': lineedit.KeyLeft,
	'H': lineedit.KeyHome,
	'F': lineedit.KeyEnd,
	'P': lineedit.KeyF1,
	'Q': lineedit.KeyF1 + 1,
	'R': lineedit.KeyF1 + 2,
	'S': lineedit.KeyF1 + 3,
}

// ss3Keypad maps ESC O sequences sent by the keypad in application mode.
var ss3Keypad = map[byte]lineedit.KeySym{
	'M': lineedit.KeyKPEnter,
	'j': lineedit.KeyKPMultiply,
	'k': lineedit.KeyKPAdd,
	'l': lineedit.KeyKPSeparator,
	'm': lineedit.KeyKPSubtract,
	'n': lineedit.KeyKPDecimal,
	'o': lineedit.KeyKPDivide,
}

// Decode reads one key event from the start of p and returns it with the
// number of bytes consumed. It returns 0 when p holds only the beginning of
// a multi-byte character. Escape sequences are assumed to be complete.
func Decode(p []byte) (lineedit.KeyEvent, int) {
	return decode(p, false)
}

// decode is Decode for input that may be cut short: when more is set, an
// unfinished escape sequence also returns 0 so the caller reads again.
func decode(p []byte, more bool) (lineedit.KeyEvent, int) {
	if len(p) == 0 {
		return lineedit.KeyEvent{}, 0
	}
	b := p[0]
	switch {
	case b == 27:
		return decodeEscape(p, more)
	case b == '\r':
		return lineedit.KeyEvent{Sym: lineedit.KeyReturn, Text: p[:1]}, 1
	case b == '\t':
		return lineedit.KeyEvent{Sym: lineedit.KeyTab, Text: p[:1]}, 1
	case b == 127:
		return lineedit.KeyEvent{Sym: lineedit.KeyBackSpace, Text: []byte{'\b'}}, 1
	case b == 0:
		return lineedit.KeyEvent{Sym: ' ', Mods: lineedit.ControlMask, Text: p[:1]}, 1
	case b < 27:
		// Ctrl+A .. Ctrl+Z, including Ctrl+H (8) and Ctrl+J (10)
		return lineedit.KeyEvent{Sym: lineedit.KeySym('a' + b - 1), Mods: lineedit.ControlMask, Text: p[:1]}, 1
	case b < 32:
		return lineedit.KeyEvent{Sym: lineedit.KeySym(b + 0x40), Mods: lineedit.ControlMask, Text: p[:1]}, 1
	case b < utf8.RuneSelf:
		return lineedit.KeyEvent{Sym: lineedit.KeySym(b), Text: p[:1]}, 1
	}

	if !utf8.FullRune(p) {
		return lineedit.KeyEvent{}, 0
	}
	r, size := utf8.DecodeRune(p)
	if r == utf8.RuneError {
		return lineedit.KeyEvent{Sym: lineedit.KeyVoid}, size
	}
	return lineedit.KeyEvent{Sym: lineedit.RuneKeySym(r), Text: p[:size]}, size
}

func decodeEscape(p []byte, more bool) (lineedit.KeyEvent, int) {
	if len(p) == 1 {
		if more {
			return lineedit.KeyEvent{}, 0
		}
		return lineedit.KeyEvent{Sym: lineedit.KeyEscape, Text: p[:1]}, 1
	}
	switch p[1] {
	case '[':
		return decodeCSI(p, more)
	case 'O':
		if len(p) < 3 {
			if more {
				return lineedit.KeyEvent{}, 0
			}
			return lineedit.KeyEvent{Sym: 'O', Mods: lineedit.Mod1Mask, Text: p[1:2]}, 2
		}
		c := p[2]
		if sym, ok := ss3Keypad[c]; ok {
			return lineedit.KeyEvent{Sym: sym}, 3
		}
		if c >= 'p' && c <= 'y' {
			return lineedit.KeyEvent{Sym: lineedit.KeyKP0 + lineedit.KeySym(c-'p')}, 3
		}
		if sym, ok := csiFinal[c]; ok {
			return lineedit.KeyEvent{Sym: sym}, 3
		}
		return lineedit.KeyEvent{Sym: lineedit.KeyVoid}, 3
	case 27:
		return lineedit.KeyEvent{Sym: lineedit.KeyEscape, Text: p[:1]}, 1
	}

	// Alt+key arrives as ESC followed by the key.
	ev, n := decode(p[1:], more)
	if n == 0 {
		return ev, 0
	}
	ev.Mods |= lineedit.Mod1Mask
	return ev, n + 1
}

// decodeCSI parses ESC [ params final. Unless more input is expected, an
// unterminated sequence is taken as whatever was read.
func decodeCSI(p []byte, more bool) (lineedit.KeyEvent, int) {
	params := []int{0}
	i := 2
	for ; i < len(p); i++ {
		c := p[i]
		switch {
		case c >= '0' && c <= '9':
			params[len(params)-1] = params[len(params)-1]*10 + int(c-'0')
			continue
		case c == ';':
			params = append(params, 0)
			continue
		}
		break
	}
	if i >= len(p) {
		if more {
			return lineedit.KeyEvent{}, 0
		}
		return lineedit.KeyEvent{Sym: lineedit.KeyVoid}, len(p)
	}

	final := p[i]
	n := i + 1
	var mods lineedit.Modifier
	if len(params) > 1 {
		mods = csiModifiers(params[1])
	}

	sym, ok := csiFinal[final]
	if final == '~' {
		sym, ok = csiTilde[params[0]]
	}
	if !ok {
		return lineedit.KeyEvent{Sym: lineedit.KeyVoid}, n
	}
	return lineedit.KeyEvent{Sym: sym, Mods: mods}, n
}

// csiModifiers decodes the xterm modifier parameter (1 + bit mask).
func csiModifiers(m int) lineedit.Modifier {
	var mods lineedit.Modifier
	if m <= 1 {
		return mods
	}
	m--
	if m&1 != 0 {
		mods |= lineedit.ShiftMask
	}
	if m&2 != 0 {
		mods |= lineedit.Mod1Mask
	}
	if m&4 != 0 {
		mods |= lineedit.ControlMask
	}
	return mods
}
