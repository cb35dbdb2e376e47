// Keydump prints each key pressed as the key event it decodes to and the
// editing action it translates to. Press Escape or Ctrl+C to quit.
package main

import (
	"fmt"
	"os"

	"promptline/lineedit"
	"promptline/render"
)

func main() {
	in, out, err := render.OpenTTY()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	term, err := render.NewTerminal(in)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	if err := term.EnterRawMode(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	defer term.RestoreMode()

	fmt.Fprint(out, "Press keys (Escape or Ctrl+C to quit)\r\n")
	src := render.NewInput(in)
	for {
		ev, err := src.NextEvent()
		if err != nil {
			fmt.Fprintf(out, "read error: %v\r\n", err)
			return
		}
		action := lineedit.Translate(ev)
		fmt.Fprintf(out, "%-14s text=%-10q -> %v", ev.Mods.String()+ev.Sym.String(), ev.Text, action.Kind)
		if action.Kind == lineedit.InsertBytes {
			fmt.Fprintf(out, "(%q)", action.Text)
		}
		fmt.Fprint(out, "\r\n")
		if action.Kind == lineedit.Cancel {
			return
		}
	}
}
