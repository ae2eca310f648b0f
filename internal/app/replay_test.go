package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/rite/internal/config"
	"github.com/dshills/rite/internal/engine"
	"github.com/dshills/rite/internal/input/key"
	"github.com/dshills/rite/internal/state"
)

// newTestApp creates an application editing a file with the given content
// in a temporary directory. Configuration and state stay inside that
// directory.
func newTestApp(t *testing.T, content string, opts Options) *Application {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(config.EnvStateFile, filepath.Join(dir, "state.json"))
	t.Setenv(config.EnvLogFile, "")

	if opts.File == "" {
		opts.File = filepath.Join(dir, "doc.txt")
		require.NoError(t, os.WriteFile(opts.File, []byte(content), 0o644))
	}
	if opts.ConfigPath == "" {
		opts.ConfigPath = filepath.Join(dir, "config.toml")
	}

	app, err := New(opts)
	require.NoError(t, err)
	t.Cleanup(app.Shutdown)
	return app
}

func TestReplayEdits(t *testing.T) {
	app := newTestApp(t, "", Options{})

	var out strings.Builder
	require.NoError(t, app.Replay("hello<CR>world<Left><Left><Up>", &out))

	assert.Equal(t, "hello\nworld\n-- 1:4 (11 chars)\n", out.String())
	assert.True(t, app.Document().IsModified())
}

func TestReplayBackspaceAndRawNewlines(t *testing.T) {
	app := newTestApp(t, "ab", Options{})

	var out strings.Builder
	require.NoError(t, app.Replay("<Right><Right>\n<BS>c<Space>d", &out))

	assert.Equal(t, "ac d\n-- 1:5 (4 chars)\n", out.String())
}

func TestReplaySaveAndQuit(t *testing.T) {
	app := newTestApp(t, "", Options{})

	var out strings.Builder
	require.NoError(t, app.Replay("ab<C-s>cd<C-q>ef", &out))

	assert.Equal(t, "abcd\n-- 1:5 (4 chars)\n", out.String())

	data, err := os.ReadFile(app.Document().Path)
	require.NoError(t, err)
	assert.Equal(t, "ab", string(data))
	assert.True(t, app.Document().IsModified())
}

func TestReplayInvalidScript(t *testing.T) {
	app := newTestApp(t, "", Options{})

	err := app.Replay("a<Bogus>", &strings.Builder{})
	assert.ErrorIs(t, err, key.ErrInvalidSpec)
}

func TestReplayWithVerification(t *testing.T) {
	app := newTestApp(t, "one\ntwo\nthree", Options{Debug: true})

	var out strings.Builder
	require.NoError(t, app.Replay("<Down><Down><Right><Right><Right><Right><Up><BS><CR>x", &out))

	assert.Equal(t, "one\ntw\nx\nthree\n-- 3:2 (14 chars)\n", out.String())
	require.NoError(t, app.Document().Session.Verify())
}

func TestReplayIsRepeatable(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(file, []byte("abcd"), 0o644))
	statePath := filepath.Join(dir, "state.json")
	require.NoError(t, state.NewStore(statePath).Save(file, engine.Point{Column: 4}))
	before, err := os.ReadFile(statePath)
	require.NoError(t, err)

	t.Setenv(config.EnvStateFile, statePath)
	t.Setenv(config.EnvLogFile, "")

	replay := func(script string) string {
		t.Helper()
		app, err := New(Options{File: file, ConfigPath: filepath.Join(dir, "config.toml"), Replay: true})
		require.NoError(t, err)
		defer app.Shutdown()

		var out strings.Builder
		require.NoError(t, app.Replay(script, &out))
		return out.String()
	}

	first := replay("X")
	assert.Equal(t, "Xabcd\n-- 1:2 (5 chars)\n", first)
	assert.Equal(t, "abcd\n-- 1:4 (4 chars)\n", replay("<Right><Right><Right>"))
	assert.Equal(t, first, replay("X"))

	after, err := os.ReadFile(statePath)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}
