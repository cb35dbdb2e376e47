package lineedit

import "fmt"

// KeySym identifies a key using the X11 keysym encoding. Latin-1 printable
// characters use their own code point; other characters use 0x01000000
// plus the code point.
type KeySym uint32

// Modifier is a bit mask of held modifier keys, using the X11 mask bits.
type Modifier uint32

const (
	ShiftMask   Modifier = 1 << 0
	LockMask    Modifier = 1 << 1
	ControlMask Modifier = 1 << 2
	Mod1Mask    Modifier = 1 << 3 // Alt
)

// KeyEvent is one raw key press: the key symbol, the modifiers held and the
// text the key produced, if any.
type KeyEvent struct {
	Sym  KeySym
	Mods Modifier
	Text []byte
}

const (
	KeyBackSpace   KeySym = 0xff08
	KeyTab         KeySym = 0xff09
	KeyReturn      KeySym = 0xff0d
	KeyEscape      KeySym = 0xff1b
	KeyHome        KeySym = 0xff50
	KeyLeft        KeySym = 0xff51
	KeyUp          KeySym = 0xff52
	KeyRight       KeySym = 0xff53
	KeyDown        KeySym = 0xff54
	KeyPrior       KeySym = 0xff55
	KeyNext        KeySym = 0xff56
	KeyEnd         KeySym = 0xff57
	KeySelect      KeySym = 0xff60
	KeyInsert      KeySym = 0xff63
	KeyBreak       KeySym = 0xff6b
	KeyKPSpace     KeySym = 0xff80
	KeyKPEnter     KeySym = 0xff8d
	KeyKPF1        KeySym = 0xff91
	KeyKPF4        KeySym = 0xff94
	KeyKPMultiply  KeySym = 0xffaa
	KeyKPAdd       KeySym = 0xffab
	KeyKPSeparator KeySym = 0xffac
	KeyKPSubtract  KeySym = 0xffad
	KeyKPDecimal   KeySym = 0xffae
	KeyKPDivide    KeySym = 0xffaf
	KeyKP0         KeySym = 0xffb0
	KeyKP9         KeySym = 0xffb9
	KeyKPEqual     KeySym = 0xffbd
	KeyF1          KeySym = 0xffbe
	KeyF35         KeySym = 0xffe0
	KeyDelete      KeySym = 0xffff
	KeyVoid        KeySym = 0xffffff

	Key0 KeySym = '0'

	unicodeOffset KeySym = 0x01000000
)

// RuneKeySym returns the key symbol for a character key producing r.
func RuneKeySym(r rune) KeySym {
	if (r >= 0x20 && r <= 0x7e) || (r >= 0xa0 && r <= 0xff) {
		return KeySym(r)
	}
	return unicodeOffset + KeySym(r)
}

// IsFunctionKey reports whether k is one of F1 through F35.
func IsFunctionKey(k KeySym) bool {
	return k >= KeyF1 && k <= KeyF35
}

// IsKeypadKey reports whether k is on the numeric keypad.
func IsKeypadKey(k KeySym) bool {
	return k >= KeyKPSpace && k <= KeyKPEqual
}

// IsMiscFunctionKey reports whether k is in the Select..Break block.
func IsMiscFunctionKey(k KeySym) bool {
	return k >= KeySelect && k <= KeyBreak
}

// IsPFKey reports whether k is one of the keypad PF keys.
func IsPFKey(k KeySym) bool {
	return k >= KeyKPF1 && k <= KeyKPF4
}

// IsPrivateKeypadKey reports whether k is a vendor keypad key.
func IsPrivateKeypadKey(k KeySym) bool {
	return k >= 0x11000000 && k <= 0x1100ffff
}

var keyNames = map[KeySym]string{
	KeyBackSpace: "BackSpace",
	KeyTab:       "Tab",
	KeyReturn:    "Return",
	KeyEscape:    "Escape",
	KeyHome:      "Home",
	KeyLeft:      "Left",
	KeyUp:        "Up",
	KeyRight:     "Right",
	KeyDown:      "Down",
	KeyPrior:     "Prior",
	KeyNext:      "Next",
	KeyEnd:       "End",
	KeyInsert:    "Insert",
	KeyKPEnter:   "KP_Enter",
	KeyDelete:    "Delete",
	KeyVoid:      "VoidSymbol",
}

func (k KeySym) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	switch {
	case IsFunctionKey(k):
		return fmt.Sprintf("F%d", k-KeyF1+1)
	case k >= KeyKP0 && k <= KeyKP9:
		return fmt.Sprintf("KP_%d", k-KeyKP0)
	case k > 0x20 && k <= 0x7e:
		return string(rune(k))
	case k == 0x20:
		return "space"
	case k >= unicodeOffset && k <= unicodeOffset+0x10ffff:
		return fmt.Sprintf("U%04X", uint32(k-unicodeOffset))
	}
	return fmt.Sprintf("0x%x", uint32(k))
}

func (m Modifier) String() string {
	var s string
	if m&ControlMask != 0 {
		s += "C-"
	}
	if m&Mod1Mask != 0 {
		s += "M-"
	}
	if m&ShiftMask != 0 {
		s += "S-"
	}
	return s
}
