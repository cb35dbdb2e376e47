// Package config provides configuration loading for promptline using TOML.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"promptline/clipboard"
	"promptline/lineedit"
)

// Buffer settings
type Buffer struct {
	Capacity int `toml:"capacity"` // bytes, including one reserved byte
}

// Clipboard settings for Ctrl+Y
type Clipboard struct {
	Provider string   `toml:"provider"` // "auto", "command" or "system"
	Command  string   `toml:"command"`
	Args     []string `toml:"args"`
}

// Cursor styles for Display.Cursor
const (
	CursorBar   = "bar"   // terminal cursor between characters
	CursorBlock = "block" // reverse-video cell on the character
)

// Display settings
type Display struct {
	Prompt string `toml:"prompt"`
	Cursor string `toml:"cursor"` // "bar" or "block"
}

// Config is the main configuration struct
type Config struct {
	Buffer    Buffer    `toml:"buffer"`
	Clipboard Clipboard `toml:"clipboard"`
	Display   Display   `toml:"display"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Buffer: Buffer{
			Capacity: lineedit.DefaultCapacity,
		},
		Clipboard: Clipboard{
			Provider: clipboard.ProviderAuto,
			Command:  "sselp",
		},
		Display: Display{
			Cursor: CursorBar,
		},
	}
}

// configDir returns the configuration directory path.
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "promptline"), nil
}

// ConfigPath returns the path to the user's config file.
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load loads configuration, layering user config on top of defaults.
// Returns the default config if no user config exists.
func Load() (*Config, error) {
	configPath, err := ConfigPath()
	if err != nil {
		return Default(), nil // Return defaults if we can't determine path
	}
	return LoadFile(configPath)
}

// LoadFile loads the config file at path on top of defaults. A missing
// file yields the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	userCfg, err := loadFromTOML(path)
	if err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}

	result := merge(cfg, userCfg)
	if err := result.Validate(); err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}
	return result, nil
}

// loadFromTOML loads a TOML config file and returns the config.
func loadFromTOML(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config TOML: %w", err)
	}
	return &cfg, nil
}

// merge layers user config on top of defaults.
// Only non-zero values from user config override defaults.
func merge(defaults, user *Config) *Config {
	result := *defaults

	if user.Buffer.Capacity != 0 {
		result.Buffer.Capacity = user.Buffer.Capacity
	}

	mergeString(&result.Clipboard.Provider, user.Clipboard.Provider)
	mergeString(&result.Clipboard.Command, user.Clipboard.Command)
	if user.Clipboard.Args != nil {
		result.Clipboard.Args = user.Clipboard.Args
	}

	mergeString(&result.Display.Prompt, user.Display.Prompt)
	mergeString(&result.Display.Cursor, user.Display.Cursor)

	return &result
}

func mergeString(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}

// Validate reports settings that cannot be used.
func (c *Config) Validate() error {
	if c.Buffer.Capacity < 2 {
		return fmt.Errorf("buffer capacity must be at least 2, got %d", c.Buffer.Capacity)
	}
	switch c.Clipboard.Provider {
	case clipboard.ProviderAuto, clipboard.ProviderCommand, clipboard.ProviderSystem:
	default:
		return fmt.Errorf("unknown clipboard provider %q", c.Clipboard.Provider)
	}
	switch c.Display.Cursor {
	case CursorBar, CursorBlock:
	default:
		return fmt.Errorf("unknown cursor style %q", c.Display.Cursor)
	}
	return nil
}

// DefaultTOML returns the default configuration as a TOML string.
// Used for --init-config to generate a user config file.
func DefaultTOML() string {
	return `# promptline configuration
# Save to ~/.config/promptline/config.toml and customize
# Only include settings you want to change from defaults

[buffer]
capacity = 4096               # Maximum text size in bytes (one byte is reserved)

# Ctrl+Y pastes the first line of the clipboard
[clipboard]
provider = "auto"             # "auto" (command, then system clipboard), "command" or "system"
command = "sselp"             # Helper printing the selection to stdout (e.g. "xclip", "pbpaste")
args = []                     # Arguments for the helper (e.g. ["-o", "-selection", "primary"])

[display]
prompt = ""                   # Label shown before the text
cursor = "bar"                # "bar" (terminal cursor) or "block" (highlighted character)
`
}

// FormatError formats a configuration error for user display.
func FormatError(err error) string {
	return fmt.Sprintf("Configuration error:\n\n%s", err.Error())
}
