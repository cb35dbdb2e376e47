// Promptline reads one line of text from the terminal and prints it.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"promptline/clipboard"
	"promptline/config"
	"promptline/lineedit"
	"promptline/prompt"
	"promptline/render"
)

const version = "0.1.0"

// options holds command-line settings; zero values defer to config.
type options struct {
	prompt     string
	capacity   int
	text       string
	hasText    bool
	initConfig bool
	help       bool
	version    bool
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("promptline: ")

	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		printUsage(os.Stderr)
		os.Exit(prompt.ExitFailure)
	}

	switch {
	case opts.help:
		printUsage(os.Stdout)
		return
	case opts.version:
		fmt.Printf("promptline-%s\n", version)
		return
	case opts.initConfig:
		fmt.Print(config.DefaultTOML())
		return
	}

	os.Exit(run(opts))
}

func parseArgs(args []string) (options, error) {
	var opts options
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-p", "--prompt":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s requires an argument", arg)
			}
			i++
			opts.prompt = args[i]
		case "-n", "--capacity":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s requires an argument", arg)
			}
			i++
			n, err := strconv.Atoi(args[i])
			if err != nil || n < 2 {
				return opts, fmt.Errorf("invalid capacity %q", args[i])
			}
			opts.capacity = n
		case "--init-config":
			opts.initConfig = true
		case "-h", "--help":
			opts.help = true
		case "-v", "--version":
			opts.version = true
		default:
			if opts.hasText {
				return opts, fmt.Errorf("unexpected argument %q", arg)
			}
			opts.text = arg
			opts.hasText = true
		}
	}
	return opts, nil
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `Promptline - single-line terminal prompt

Usage: promptline [options] [text]

Options:
  -p, --prompt <label>   Show a label before the text
  -n, --capacity <n>     Buffer size in bytes (text holds at most n-1)
  --init-config          Output default config (redirect to ~/.config/promptline/config.toml)
  -v, --version          Show version
  -h, --help             Show this help

The entered text is written to stdout on Enter (exit 0).
Escape or Ctrl+C cancels (exit 1, no output).`)
}

// configOrDefault reports a config load failure and falls back to the
// defaults so that a broken config file never blocks the prompt.
func configOrDefault(cfg *config.Config, err error) *config.Config {
	if err != nil {
		log.Printf("%s\n\nUsing default settings.", config.FormatError(err))
		return config.Default()
	}
	return cfg
}

// run edits one line on the terminal and returns the exit status.
func run(opts options) int {
	cfg := configOrDefault(config.Load())
	if opts.prompt != "" {
		cfg.Display.Prompt = opts.prompt
	}
	if opts.capacity != 0 {
		cfg.Buffer.Capacity = opts.capacity
	}

	cb, err := clipboard.New(cfg.Clipboard.Provider, cfg.Clipboard.Command, cfg.Clipboard.Args)
	if err != nil {
		log.Printf("clipboard: %v; paste disabled", err)
	}

	in, out, err := render.OpenTTY()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return prompt.ExitFailure
	}
	if in != os.Stdin {
		defer in.Close()
	}

	term, err := render.NewTerminal(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: initializing terminal: %v\n", err)
		return prompt.ExitFailure
	}
	if err := term.EnterRawMode(); err != nil {
		fmt.Fprintf(os.Stderr, "error: entering raw mode: %v\n", err)
		return prompt.ExitFailure
	}

	width, err := term.Width()
	if err != nil {
		width = 0
	}
	line := render.NewLine(out, cfg.Display.Prompt, width, cfg.Display.Cursor == config.CursorBlock)

	editor := lineedit.New(cfg.Buffer.Capacity)
	if opts.hasText {
		editor.Set(opts.text)
	}

	ctl := prompt.New(editor, line, cb)
	res, err := ctl.Run(render.NewInput(in))

	line.Clear()
	term.RestoreMode()
	if err != nil {
		log.Print(err)
	}
	return prompt.Finish(os.Stdout, res)
}
