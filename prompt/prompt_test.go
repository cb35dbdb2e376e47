package prompt

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"promptline/lineedit"
)

type frame struct {
	text   string
	cursor int
}

type recorder struct {
	frames []frame
}

func (r *recorder) Render(text []byte, cursor int) {
	r.frames = append(r.frames, frame{string(text), cursor})
}

type script struct {
	events []lineedit.KeyEvent
}

func (s *script) NextEvent() (lineedit.KeyEvent, error) {
	if len(s.events) == 0 {
		return lineedit.KeyEvent{}, io.EOF
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev, nil
}

type fixedClipboard struct {
	text string
	ok   bool
}

func (c fixedClipboard) Text() (string, bool) {
	return c.text, c.ok
}

func typed(s string) []lineedit.KeyEvent {
	var evs []lineedit.KeyEvent
	for _, r := range s {
		evs = append(evs, lineedit.KeyEvent{Sym: lineedit.RuneKeySym(r), Text: []byte(string(r))})
	}
	return evs
}

func key(sym lineedit.KeySym) lineedit.KeyEvent {
	return lineedit.KeyEvent{Sym: sym}
}

func ctrl(r rune) lineedit.KeyEvent {
	return lineedit.KeyEvent{Sym: lineedit.KeySym(r), Mods: lineedit.ControlMask, Text: []byte{byte(r) & 0x1f}}
}

func TestSubmit(t *testing.T) {
	e := lineedit.New(32)
	e.Set("hello")
	c := New(e, nil, nil)

	if got := c.HandleKey(key(lineedit.KeyReturn)); got != Submitted {
		t.Fatalf("expected submitted, got %v", got)
	}
	res := c.Result()
	if res.Text != "hello" {
		t.Errorf("expected 'hello', got %q", res.Text)
	}

	var out bytes.Buffer
	if code := Finish(&out, res); code != ExitSuccess {
		t.Errorf("expected exit %d, got %d", ExitSuccess, code)
	}
	if out.String() != "hello" {
		t.Errorf("expected stdout 'hello', got %q", out.String())
	}
}

func TestCancel(t *testing.T) {
	e := lineedit.New(32)
	e.Set("hello")
	c := New(e, nil, nil)

	if got := c.HandleKey(key(lineedit.KeyEscape)); got != Cancelled {
		t.Fatalf("expected cancelled, got %v", got)
	}

	var out bytes.Buffer
	if code := Finish(&out, c.Result()); code != ExitFailure {
		t.Errorf("expected exit %d, got %d", ExitFailure, code)
	}
	if out.Len() != 0 {
		t.Errorf("expected no output, got %q", out.String())
	}
}

func TestCtrlCCancels(t *testing.T) {
	c := New(lineedit.New(32), nil, nil)
	if got := c.HandleKey(ctrl('c')); got != Cancelled {
		t.Errorf("expected cancelled, got %v", got)
	}
}

func TestTerminalStateIgnoresFurtherActions(t *testing.T) {
	e := lineedit.New(32)
	e.Set("abc")
	r := &recorder{}
	c := New(e, r, nil)

	c.HandleKey(ctrl('m'))
	c.HandleKey(key(lineedit.KeyBackSpace))
	c.HandleKey(key(lineedit.KeyEscape))

	if c.State() != Submitted {
		t.Errorf("expected submitted, got %v", c.State())
	}
	if e.Text() != "abc" {
		t.Errorf("expected editor untouched, got %q", e.Text())
	}
	if len(r.frames) != 0 {
		t.Errorf("expected no renders, got %d", len(r.frames))
	}
}

func TestRenderOnlyOnChange(t *testing.T) {
	r := &recorder{}
	c := New(lineedit.New(32), r, nil)

	c.HandleKey(key(lineedit.KeyLeft))      // at start: no-op
	c.HandleKey(key(lineedit.KeyBackSpace)) // at start: no-op
	c.HandleKey(key(lineedit.KeyUp))        // ignored
	c.HandleKey(key(lineedit.KeyF1))        // ignored
	if len(r.frames) != 0 {
		t.Fatalf("expected no renders, got %v", r.frames)
	}

	for _, ev := range typed("hé") {
		c.HandleKey(ev)
	}
	c.HandleKey(key(lineedit.KeyLeft))
	c.HandleKey(key(lineedit.KeyHome))
	c.HandleKey(key(lineedit.KeyHome)) // already home

	want := []frame{{"h", 1}, {"hé", 3}, {"hé", 1}, {"hé", 0}}
	if len(r.frames) != len(want) {
		t.Fatalf("expected %d renders, got %v", len(want), r.frames)
	}
	for i, f := range want {
		if r.frames[i] != f {
			t.Errorf("frame %d: expected %v, got %v", i, f, r.frames[i])
		}
	}
}

func TestControlKills(t *testing.T) {
	e := lineedit.New(32)
	e.Set("abc")
	c := New(e, nil, nil)
	c.HandleKey(ctrl('u'))
	if e.Text() != "" || e.Cursor() != 0 {
		t.Errorf("Ctrl+U: expected empty@0, got %q@%d", e.Text(), e.Cursor())
	}

	e.Set("abc")
	e.Home()
	c.HandleKey(ctrl('k'))
	if e.Text() != "" {
		t.Errorf("Ctrl+K: expected empty, got %q", e.Text())
	}

	e.Set("foo bar ")
	c.HandleKey(ctrl('w'))
	if e.Text() != "foo " || e.Cursor() != 4 {
		t.Errorf("Ctrl+W: expected 'foo '@4, got %q@%d", e.Text(), e.Cursor())
	}
}

func TestPaste(t *testing.T) {
	e := lineedit.New(32)
	e.Set("say: ")
	r := &recorder{}
	c := New(e, r, fixedClipboard{text: "hello\n", ok: true})

	c.HandleKey(ctrl('y'))
	if e.Text() != "say: hello" {
		t.Errorf("expected 'say: hello', got %q", e.Text())
	}
	if len(r.frames) != 1 {
		t.Errorf("expected 1 render, got %d", len(r.frames))
	}
}

func TestPasteUnavailable(t *testing.T) {
	e := lineedit.New(32)
	e.Set("abc")
	r := &recorder{}
	c := New(e, r, fixedClipboard{})

	if got := c.HandleKey(ctrl('y')); got != Running {
		t.Errorf("expected running, got %v", got)
	}
	if e.Text() != "abc" || len(r.frames) != 0 {
		t.Errorf("expected no change and no render, got %q with %d renders", e.Text(), len(r.frames))
	}

	// No clipboard configured at all.
	c = New(e, r, nil)
	c.HandleKey(ctrl('y'))
	if e.Text() != "abc" {
		t.Errorf("expected 'abc', got %q", e.Text())
	}
}

func TestRun(t *testing.T) {
	r := &recorder{}
	c := New(lineedit.New(32), r, nil)
	events := append(typed("héllo"), key(lineedit.KeyLeft), key(lineedit.KeyKPEnter))
	src := &script{events: events}

	res, err := c.Run(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.State != Submitted || res.Text != "héllo" {
		t.Errorf("expected submitted 'héllo', got %v %q", res.State, res.Text)
	}
	// Initial frame, five inserts and one move.
	if len(r.frames) != 7 {
		t.Errorf("expected 7 renders, got %d", len(r.frames))
	}
	if last := r.frames[len(r.frames)-1]; last.cursor != 5 {
		t.Errorf("expected final cursor 5, got %d", last.cursor)
	}
}

func TestRunStopsAtTerminalState(t *testing.T) {
	src := &script{events: append([]lineedit.KeyEvent{key(lineedit.KeyEscape)}, typed("more")...)}
	c := New(lineedit.New(32), nil, nil)

	res, err := c.Run(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.State != Cancelled {
		t.Errorf("expected cancelled, got %v", res.State)
	}
	if len(src.events) != 4 {
		t.Errorf("expected remaining events untouched, %d left", len(src.events))
	}
}

func TestRunSourceError(t *testing.T) {
	c := New(lineedit.New(32), nil, nil)
	res, err := c.Run(&script{events: typed("ab")})
	if !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF, got %v", err)
	}
	if res.State != Cancelled {
		t.Errorf("expected cancelled, got %v", res.State)
	}
}

func TestRenderFunc(t *testing.T) {
	var got frame
	r := RenderFunc(func(text []byte, cursor int) {
		got = frame{string(text), cursor}
	})
	c := New(lineedit.New(32), r, nil)
	c.HandleKey(typed("x")[0])
	if got != (frame{"x", 1}) {
		t.Errorf("expected x@1, got %v", got)
	}
}
