package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/dshills/rite/internal/engine"
)

func TestLoadWithoutStateFile(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "state.json"))

	p, ok, err := s.Load("notes.txt")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, engine.Point{}, p)
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(filepath.Join(dir, "nested", "state.json"))
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")

	require.NoError(t, s.Save(a, engine.Point{Line: 3, Column: 7}))
	require.NoError(t, s.Save(b, engine.Point{Line: 1}))
	require.NoError(t, s.Save(a, engine.Point{Line: 4, Column: 2}))

	p, ok, err := s.Load(a)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, engine.Point{Line: 4, Column: 2}, p)

	p, ok, err = s.Load(b)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, engine.Point{Line: 1}, p)

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.True(t, gjson.ValidBytes(data))
	assert.Equal(t, a, gjson.GetBytes(data, "files."+Key(a)+".path").String())
}

func TestKeyIsStable(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "x.go")

	assert.Equal(t, Key(file), Key(file))
	assert.NotEqual(t, Key(file), Key(filepath.Join(dir, "y.go")))

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, Key(filepath.Join(wd, "rel.txt")), Key("rel.txt"))
}

func TestForget(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, s.Forget("nothing.txt"))

	require.NoError(t, s.Save("x.txt", engine.Point{Line: 2}))
	require.NoError(t, s.Forget("x.txt"))

	_, ok, err := s.Load("x.txt")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCorruptStateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	s := NewStore(path)

	_, _, err := s.Load("x.txt")
	assert.ErrorIs(t, err, ErrCorrupt)

	// Saving starts a fresh document.
	require.NoError(t, s.Save("x.txt", engine.Point{Line: 5, Column: 1}))
	p, ok, err := s.Load("x.txt")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, engine.Point{Line: 5, Column: 1}, p)
}
