package lineedit

// ActionKind identifies a logical editing command.
type ActionKind int

const (
	Ignore ActionKind = iota
	InsertBytes
	MoveLeft
	MoveRight
	MoveHome
	MoveEnd
	DeleteBackwardChar
	DeleteForwardChar
	KillToStart
	KillToEnd
	DeleteWordBackward
	PasteRequest
	Submit
	Cancel
)

var actionNames = [...]string{
	Ignore:             "Ignore",
	InsertBytes:        "InsertBytes",
	MoveLeft:           "MoveLeft",
	MoveRight:          "MoveRight",
	MoveHome:           "MoveHome",
	MoveEnd:            "MoveEnd",
	DeleteBackwardChar: "DeleteBackwardChar",
	DeleteForwardChar:  "DeleteForwardChar",
	KillToStart:        "KillToStart",
	KillToEnd:          "KillToEnd",
	DeleteWordBackward: "DeleteWordBackward",
	PasteRequest:       "PasteRequest",
	Submit:             "Submit",
	Cancel:             "Cancel",
}

func (k ActionKind) String() string {
	if k >= 0 && int(k) < len(actionNames) {
		return actionNames[k]
	}
	return "ActionKind(?)"
}

// Action is a logical editing command. Text is set only for InsertBytes.
type Action struct {
	Kind ActionKind
	Text []byte
}

// Apply performs the action on e. Returns true if the text or cursor
// changed. Submit, Cancel, PasteRequest and Ignore never touch the editor.
func (a Action) Apply(e *Editor) bool {
	switch a.Kind {
	case InsertBytes:
		return e.Insert(a.Text)
	case MoveLeft:
		return e.Left()
	case MoveRight:
		return e.Right()
	case MoveHome:
		return e.Home()
	case MoveEnd:
		return e.End()
	case DeleteBackwardChar:
		return e.DeleteBackward()
	case DeleteForwardChar:
		return e.DeleteForward()
	case KillToStart:
		return e.KillToStart()
	case KillToEnd:
		return e.KillToEnd()
	case DeleteWordBackward:
		return e.DeleteWordBackward()
	}
	return false
}
