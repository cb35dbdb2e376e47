// Package prompt drives a line editor from a stream of key events until the
// user submits or cancels.
package prompt

import (
	"fmt"
	"io"

	"promptline/lineedit"
)

// State is the lifecycle of a prompt.
type State int

const (
	Running State = iota
	Submitted
	Cancelled
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Submitted:
		return "submitted"
	case Cancelled:
		return "cancelled"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// EventSource blocks until the next key event is available.
type EventSource interface {
	NextEvent() (lineedit.KeyEvent, error)
}

// Renderer draws the current text and cursor offset.
type Renderer interface {
	Render(text []byte, cursor int)
}

// RenderFunc adapts a function to the Renderer interface.
type RenderFunc func(text []byte, cursor int)

// Render calls f(text, cursor).
func (f RenderFunc) Render(text []byte, cursor int) {
	f(text, cursor)
}

// Result is the outcome of a finished prompt.
type Result struct {
	State State
	Text  string // set only when State is Submitted
}

// Controller applies translated key events to an editor. It owns the
// editor for its whole life and is not safe for concurrent use.
type Controller struct {
	editor    *lineedit.Editor
	renderer  Renderer
	clipboard lineedit.Clipboard
	state     State
	text      string
}

// New creates a Controller in the Running state. renderer and clipboard may
// be nil.
func New(editor *lineedit.Editor, renderer Renderer, clipboard lineedit.Clipboard) *Controller {
	return &Controller{
		editor:    editor,
		renderer:  renderer,
		clipboard: clipboard,
	}
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Result returns the outcome so far.
func (c *Controller) Result() Result {
	return Result{State: c.state, Text: c.text}
}

// HandleKey translates ev and applies the resulting action.
func (c *Controller) HandleKey(ev lineedit.KeyEvent) State {
	return c.Apply(lineedit.Translate(ev))
}

// Apply performs a single action. Once the prompt has been submitted or
// cancelled, further actions are ignored. The renderer is called only when
// the text or cursor actually changed.
func (c *Controller) Apply(a lineedit.Action) State {
	if c.state != Running {
		return c.state
	}

	switch a.Kind {
	case lineedit.Submit:
		c.state = Submitted
		c.text = c.editor.Text()
		return c.state
	case lineedit.Cancel:
		c.state = Cancelled
		return c.state
	case lineedit.PasteRequest:
		a = lineedit.ResolvePaste(c.clipboard)
	}

	if a.Apply(c.editor) {
		c.render()
	}
	return c.state
}

// Run draws the initial text and then processes events until the prompt
// is submitted or cancelled. An error from the event source ends the run
// in the Cancelled state.
func (c *Controller) Run(src EventSource) (Result, error) {
	c.render()
	for c.state == Running {
		ev, err := src.NextEvent()
		if err != nil {
			c.state = Cancelled
			return c.Result(), fmt.Errorf("reading key event: %w", err)
		}
		c.HandleKey(ev)
	}
	return c.Result(), nil
}

func (c *Controller) render() {
	if c.renderer != nil {
		c.renderer.Render(c.editor.Bytes(), c.editor.Cursor())
	}
}

// Exit status codes for a finished prompt.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// Finish writes the submitted text to w, without a trailing newline, and
// returns the process exit status. A cancelled prompt writes nothing.
func Finish(w io.Writer, res Result) int {
	if res.State != Submitted {
		return ExitFailure
	}
	if _, err := io.WriteString(w, res.Text); err != nil {
		return ExitFailure
	}
	return ExitSuccess
}
