package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/rite/internal/engine"
	"github.com/dshills/rite/internal/input/key"
)

func TestResolveEditingKeys(t *testing.T) {
	km, err := NewKeymap(DefaultBindings())
	require.NoError(t, err)

	tests := []struct {
		spec string
		want Action
	}{
		{"<Left>", edit(engine.MoveLeft())},
		{"<Right>", edit(engine.MoveRight())},
		{"<Up>", edit(engine.MoveUp())},
		{"<Down>", edit(engine.MoveDown())},
		{"<BS>", edit(engine.DeleteBackward())},
		{"<CR>", edit(engine.InsertNewline())},
		{"<Tab>", edit(engine.InsertChar('\t'))},
		{"<Space>", edit(engine.InsertChar(' '))},
		{"x", edit(engine.InsertChar('x'))},
		{"é", edit(engine.InsertChar('é'))},
		{"<C-s>", Action{Kind: ActionSave}},
		{"<C-q>", Action{Kind: ActionQuit}},
		{"<C-x>", Action{}},
		{"<Esc>", Action{}},
		{"<Home>", Action{}},
	}

	for _, tt := range tests {
		got := km.Resolve(key.MustParse(tt.spec))
		assert.Equal(t, tt.want, got, "spec %s", tt.spec)
	}
}

func TestShiftedRuneInserts(t *testing.T) {
	km, err := NewKeymap(DefaultBindings())
	require.NoError(t, err)

	got := km.Resolve(key.NewRuneEvent('A', key.ModShift))
	assert.Equal(t, edit(engine.InsertChar('A')), got)
}

func TestCustomBindings(t *testing.T) {
	km, err := NewKeymap(Bindings{Save: []string{"Ctrl+W", "<C-s>"}, Quit: []string{"<Esc>"}})
	require.NoError(t, err)

	assert.Equal(t, ActionSave, km.Resolve(key.MustParse("<C-w>")).Kind)
	assert.Equal(t, ActionSave, km.Resolve(key.MustParse("<C-s>")).Kind)
	assert.Equal(t, ActionQuit, km.Resolve(key.MustParse("<Esc>")).Kind)
}

func TestBindingOverridesEditingKey(t *testing.T) {
	km, err := NewKeymap(Bindings{Quit: []string{"q"}})
	require.NoError(t, err)

	assert.Equal(t, ActionQuit, km.Resolve(key.MustParse("q")).Kind)
}

func TestNewKeymapErrors(t *testing.T) {
	_, err := NewKeymap(Bindings{Save: []string{"<Bogus>"}})
	assert.ErrorIs(t, err, key.ErrInvalidSpec)

	_, err = NewKeymap(Bindings{Save: []string{"<C-s>"}, Quit: []string{"<C-s>"}})
	assert.ErrorContains(t, err, "already bound to save")
}

func TestResolveAll(t *testing.T) {
	km, err := NewKeymap(DefaultBindings())
	require.NoError(t, err)

	events, err := key.ParseScript("a<Esc><Left><C-q>")
	require.NoError(t, err)

	actions := km.ResolveAll(events)
	require.Len(t, actions, 3)
	assert.Equal(t, "edit:insert_char('a')", actions[0].String())
	assert.Equal(t, "edit:move_left", actions[1].String())
	assert.Equal(t, "quit", actions[2].String())
}
