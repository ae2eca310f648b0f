package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 4, cfg.Editor.TabWidth)
	assert.True(t, cfg.Editor.RestoreCursor)
	assert.Equal(t, []string{"<C-s>"}, cfg.Keys.Save)
	assert.Equal(t, []string{"<C-q>"}, cfg.Keys.Quit)
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[editor]
tab_width = 8

[theme]
cursor = "#ff0000"

[keys]
save = ["<C-w>", "Ctrl+S"]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Editor.TabWidth)
	assert.Equal(t, "#ff0000", cfg.Theme.Cursor)
	assert.Equal(t, []string{"<C-w>", "Ctrl+S"}, cfg.Keys.Save)

	// Untouched settings keep their defaults.
	assert.True(t, cfg.Editor.RestoreCursor)
	assert.Equal(t, Default().Theme.Background, cfg.Theme.Background)
	assert.Equal(t, []string{"<C-q>"}, cfg.Keys.Quit)
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse("bad.toml", []byte("[editor]\ntab_width = = 3\n"))
	require.Error(t, err)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "bad.toml", pe.Path)
	assert.Equal(t, 2, pe.Line)
	assert.Contains(t, pe.Error(), "bad.toml")
}

func TestParseUnknownSetting(t *testing.T) {
	_, err := Parse("x.toml", []byte("[editor]\nfont_size = 12\n"))

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Contains(t, pe.Message, "font_size")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		path   string
	}{
		{"tab width zero", func(c *Config) { c.Editor.TabWidth = 0 }, "editor.tab_width"},
		{"tab width huge", func(c *Config) { c.Editor.TabWidth = 99 }, "editor.tab_width"},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"bad color", func(c *Config) { c.Theme.Background = "blue" }, "theme.background"},
		{"no quit", func(c *Config) { c.Keys.Quit = nil }, "keys.quit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidationFailed)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.path, ve.Path)
		})
	}
}

func TestValidLogLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "warning", "error", "DEBUG", "Warn"} {
		assert.True(t, ValidLogLevel(level), level)
	}
	for _, level := range []string{"", "loud", "trace"} {
		assert.False(t, ValidLogLevel(level), level)
	}
}

func TestPaletteParsesColors(t *testing.T) {
	p, err := ThemeConfig{
		Foreground:       "#ffffff",
		Background:       "#000000",
		Cursor:           "#ff0000",
		StatusForeground: "#00ff00",
		StatusBackground: "#0000ff",
	}.Palette()
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", p.Cursor.Hex())
	assert.Equal(t, "#0000ff", p.StatusBackground.Hex())

	_, err = ThemeConfig{Foreground: "#zzzzzz"}.Palette()
	assert.ErrorIs(t, err, ErrInvalidColor)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFile, "/tmp/rite.log")
	t.Setenv(EnvTabWidth, "2")
	t.Setenv(EnvStateFile, "")

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/rite.log", cfg.Logging.File)
	assert.Equal(t, 2, cfg.Editor.TabWidth)
	assert.Equal(t, "", cfg.State.File)
}

func TestApplyEnvBadTabWidth(t *testing.T) {
	t.Setenv(EnvTabWidth, "wide")

	cfg := Default()
	err := cfg.ApplyEnv()
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestResolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[editor]\ntab_width = 3\n"), 0o644))
	t.Setenv(EnvLogLevel, "warn")

	cfg, err := Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Editor.TabWidth)
	assert.Equal(t, "warn", cfg.Logging.Level)

	t.Setenv(EnvLogLevel, "shout")
	_, err = Resolve(path)
	assert.ErrorIs(t, err, ErrValidationFailed)
}
