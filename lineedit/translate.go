package lineedit

import "strings"

// Clipboard supplies text for Ctrl+Y. Text returns false when nothing can
// be pasted, whatever the reason.
type Clipboard interface {
	Text() (string, bool)
}

// controlBinding is either a substitute key symbol or a direct action.
type controlBinding struct {
	sym    KeySym
	action ActionKind
}

// controlKeys maps Ctrl+letter to its editing meaning. Control-modified
// keys not listed here are ignored.
var controlKeys = map[KeySym]controlBinding{
	'a': {sym: KeyHome},
	'b': {sym: KeyLeft},
	'c': {action: Cancel},
	'e': {sym: KeyEnd},
	'f': {sym: KeyRight},
	'h': {sym: KeyBackSpace},
	'j': {sym: KeyReturn},
	'm': {sym: KeyReturn},
	'k': {action: KillToEnd},
	'u': {action: KillToStart},
	'w': {action: DeleteWordBackward},
	'y': {action: PasteRequest},
}

var plainKeys = map[KeySym]ActionKind{
	KeyBackSpace: DeleteBackwardChar,
	KeyDelete:    DeleteForwardChar,
	KeyHome:      MoveHome,
	KeyEnd:       MoveEnd,
	KeyLeft:      MoveLeft,
	KeyRight:     MoveRight,
	KeyEscape:    Cancel,
	KeyReturn:    Submit,
}

// Translate maps a key event to the action it requests. It has no side
// effects; PasteRequest is left for the caller to resolve with ResolvePaste.
func Translate(ev KeyEvent) Action {
	sym := ev.Sym
	switch {
	case sym == KeyKPEnter:
		sym = KeyReturn
	case sym >= KeyKP0 && sym <= KeyKP9:
		sym = sym - KeyKP0 + Key0
	case IsFunctionKey(sym), IsKeypadKey(sym), IsMiscFunctionKey(sym),
		IsPFKey(sym), IsPrivateKeypadKey(sym):
		return Action{Kind: Ignore}
	}

	if ev.Mods&ControlMask != 0 {
		b, ok := controlKeys[foldCase(sym)]
		if !ok {
			return Action{Kind: Ignore}
		}
		if b.sym == 0 {
			return Action{Kind: b.action}
		}
		sym = b.sym
	}

	if kind, ok := plainKeys[sym]; ok {
		return Action{Kind: kind}
	}
	if len(ev.Text) > 0 {
		return Action{Kind: InsertBytes, Text: ev.Text}
	}
	return Action{Kind: Ignore}
}

// ResolvePaste turns a paste request into an insertion of the first line of
// the clipboard, without its newline. An unavailable or empty clipboard
// resolves to Ignore.
func ResolvePaste(cb Clipboard) Action {
	if cb == nil {
		return Action{Kind: Ignore}
	}
	text, ok := cb.Text()
	if !ok {
		return Action{Kind: Ignore}
	}
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	text = strings.ToValidUTF8(text, "�")
	if text == "" {
		return Action{Kind: Ignore}
	}
	return Action{Kind: InsertBytes, Text: []byte(text)}
}

func foldCase(k KeySym) KeySym {
	if k >= 'A' && k <= 'Z' {
		return k + ('a' - 'A')
	}
	return k
}
