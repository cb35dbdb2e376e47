// Package clipboard provides sources of paste text: the desktop clipboard
// and external helper commands such as sselp, xclip or pbpaste.
package clipboard

import (
	"fmt"
	"os/exec"

	sysclip "github.com/atotto/clipboard"

	"promptline/lineedit"
)

// Provider names accepted by New.
const (
	ProviderAuto    = "auto"
	ProviderCommand = "command"
	ProviderSystem  = "system"
)

// System reads the desktop clipboard.
type System struct{}

// Text returns the clipboard contents, or false if the clipboard is
// unsupported, unreadable or empty.
func (System) Text() (string, bool) {
	if sysclip.Unsupported {
		return "", false
	}
	text, err := sysclip.ReadAll()
	if err != nil || text == "" {
		return "", false
	}
	return text, true
}

// Command runs an external program and uses its standard output.
type Command struct {
	Name string
	Args []string
}

// Text runs the command and returns its output. A missing program, a
// non-zero exit or empty output all report false.
func (c Command) Text() (string, bool) {
	if c.Name == "" {
		return "", false
	}
	out, err := exec.Command(c.Name, c.Args...).Output()
	if err != nil || len(out) == 0 {
		return "", false
	}
	return string(out), true
}

// Chain tries each clipboard in order and returns the first text found.
type Chain []lineedit.Clipboard

// Text returns the first available text.
func (ch Chain) Text() (string, bool) {
	for _, cb := range ch {
		if text, ok := cb.Text(); ok {
			return text, true
		}
	}
	return "", false
}

// New builds the clipboard named by provider. For "auto" the command is
// tried first and the desktop clipboard second.
func New(provider, command string, args []string) (lineedit.Clipboard, error) {
	switch provider {
	case ProviderCommand:
		return Command{Name: command, Args: args}, nil
	case ProviderSystem:
		return System{}, nil
	case ProviderAuto, "":
		return Chain{Command{Name: command, Args: args}, System{}}, nil
	}
	return nil, fmt.Errorf("unknown clipboard provider %q", provider)
}
