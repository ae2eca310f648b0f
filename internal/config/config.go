package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
)

// Config holds every user-tunable setting.
type Config struct {
	Editor  EditorConfig  `toml:"editor"`
	Logging LoggingConfig `toml:"logging"`
	Theme   ThemeConfig   `toml:"theme"`
	Keys    KeysConfig    `toml:"keys"`
	State   StateConfig   `toml:"state"`
}

// EditorConfig holds editing and display settings.
type EditorConfig struct {
	// TabWidth is the number of cells a tab advances to the next stop.
	TabWidth int `toml:"tab_width"`
	// RestoreCursor reopens files at the position they were closed at.
	RestoreCursor bool `toml:"restore_cursor"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
	// File receives log output. Empty disables logging, since the
	// terminal itself belongs to the editor.
	File string `toml:"file"`
}

// ThemeConfig holds colors as "#rrggbb" strings.
type ThemeConfig struct {
	Foreground       string `toml:"foreground"`
	Background       string `toml:"background"`
	Cursor           string `toml:"cursor"`
	StatusForeground string `toml:"status_foreground"`
	StatusBackground string `toml:"status_background"`
}

// KeysConfig holds application key bindings.
type KeysConfig struct {
	Save []string `toml:"save"`
	Quit []string `toml:"quit"`
}

// StateConfig locates the file that remembers cursor positions.
type StateConfig struct {
	File string `toml:"file"`
}

// Palette is a ThemeConfig with every color parsed.
type Palette struct {
	Foreground       colorful.Color
	Background       colorful.Color
	Cursor           colorful.Color
	StatusForeground colorful.Color
	StatusBackground colorful.Color
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Editor: EditorConfig{
			TabWidth:      4,
			RestoreCursor: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Theme: ThemeConfig{
			Foreground:       "#d0d0d0",
			Background:       "#1c1c1c",
			Cursor:           "#ffaf00",
			StatusForeground: "#1c1c1c",
			StatusBackground: "#87afd7",
		},
		Keys: KeysConfig{
			Save: []string{"<C-s>"},
			Quit: []string{"<C-q>"},
		},
		State: StateConfig{
			File: defaultStateFile(),
		},
	}
}

// DefaultPath returns the user settings file location, or "" when the
// platform has no user config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "rite", "config.toml")
}

func defaultStateFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "rite", "state.json")
}

// Load reads the settings file at path over the defaults.
// A missing file yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse decodes TOML settings over the defaults. Unknown keys are errors.
// Source names the data in error messages.
func Parse(source string, data []byte) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, newParseError(source, err)
	}
	return cfg, nil
}

func newParseError(source string, err error) *ParseError {
	pe := &ParseError{Path: source, Message: err.Error(), Err: err}

	var derr *toml.DecodeError
	var serr *toml.StrictMissingError
	switch {
	case errors.As(err, &derr):
		pe.Line, pe.Column = derr.Position()
	case errors.As(err, &serr) && len(serr.Errors) > 0:
		pe.Line, pe.Column = serr.Errors[0].Position()
		pe.Message = "unknown setting " + strings.Join(serr.Errors[0].Key(), ".")
	}
	return pe
}

// Resolve loads the settings file, applies environment overrides and
// validates the result.
func Resolve(path string) (Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every setting and returns the first failure.
func (c Config) Validate() error {
	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > 16 {
		return &ValidationError{Path: "editor.tab_width", Message: "must be between 1 and 16", Value: c.Editor.TabWidth}
	}
	if !ValidLogLevel(c.Logging.Level) {
		return &ValidationError{Path: "logging.level", Message: "must be debug, info, warn or error", Value: c.Logging.Level}
	}
	if _, err := c.Theme.Palette(); err != nil {
		return err
	}
	if len(c.Keys.Quit) == 0 {
		return &ValidationError{Path: "keys.quit", Message: "at least one quit binding is required", Value: c.Keys.Quit}
	}
	return nil
}

// ValidLogLevel reports whether level names a log level. Case is ignored
// and "warning" is accepted for "warn".
func ValidLogLevel(level string) bool {
	switch strings.ToLower(level) {
	case "debug", "info", "warn", "warning", "error":
		return true
	}
	return false
}

// Palette parses every theme color.
func (t ThemeConfig) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		path string
		hex  string
		dst  *colorful.Color
	}{
		{"theme.foreground", t.Foreground, &p.Foreground},
		{"theme.background", t.Background, &p.Background},
		{"theme.cursor", t.Cursor, &p.Cursor},
		{"theme.status_foreground", t.StatusForeground, &p.StatusForeground},
		{"theme.status_background", t.StatusBackground, &p.StatusBackground},
	}
	for _, f := range fields {
		c, err := colorful.Hex(f.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("%w: %w", ErrInvalidColor, &ValidationError{Path: f.path, Message: err.Error(), Value: f.hex})
		}
		*f.dst = c
	}
	return p, nil
}
