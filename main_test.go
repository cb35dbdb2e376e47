package main

import (
	"bytes"
	"errors"
	"log"
	"os"
	"strings"
	"testing"

	"promptline/config"
)

func TestParseArgs(t *testing.T) {
	opts, err := parseArgs([]string{"-p", "name:", "-n", "64", "seed text"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.prompt != "name:" {
		t.Errorf("expected prompt 'name:', got %q", opts.prompt)
	}
	if opts.capacity != 64 {
		t.Errorf("expected capacity 64, got %d", opts.capacity)
	}
	if !opts.hasText || opts.text != "seed text" {
		t.Errorf("expected seed 'seed text', got %q (%v)", opts.text, opts.hasText)
	}
}

func TestParseArgsFlags(t *testing.T) {
	opts, err := parseArgs([]string{"--init-config", "-v", "-h"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !opts.initConfig || !opts.version || !opts.help {
		t.Errorf("expected all flags set, got %+v", opts)
	}
}

func TestParseArgsErrors(t *testing.T) {
	tests := [][]string{
		{"-p"},
		{"-n"},
		{"-n", "abc"},
		{"-n", "1"},
		{"one", "two"},
	}
	for _, args := range tests {
		if _, err := parseArgs(args); err == nil {
			t.Errorf("%q: expected error", args)
		}
	}
}

func TestParseArgsEmptySeed(t *testing.T) {
	opts, err := parseArgs([]string{""})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !opts.hasText || opts.text != "" {
		t.Errorf("expected empty seed to be recorded, got %+v", opts)
	}
}

func TestConfigOrDefault(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	cfg := configOrDefault(nil, errors.New("unknown cursor style \"beam\""))
	if cfg == nil || cfg.Buffer.Capacity != config.Default().Buffer.Capacity {
		t.Fatalf("expected default config, got %+v", cfg)
	}
	out := buf.String()
	if !strings.Contains(out, "Configuration error:") || !strings.Contains(out, `"beam"`) {
		t.Errorf("expected formatted config error in log, got %q", out)
	}

	buf.Reset()
	user := config.Default()
	user.Display.Prompt = "run:"
	if got := configOrDefault(user, nil); got != user {
		t.Error("expected loaded config to be returned unchanged")
	}
	if buf.Len() != 0 {
		t.Errorf("expected nothing logged, got %q", buf.String())
	}
}
