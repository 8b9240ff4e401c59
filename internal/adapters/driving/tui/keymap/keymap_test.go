package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_Bindings(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		key     string
	}{
		{"quit", km.Quit, "ctrl+c"},
		{"help", km.Help, "f1"},
		{"next", km.Next, "tab"},
		{"prev", km.Prev, "shift+tab"},
		{"up", km.Up, "up"},
		{"down", km.Down, "down"},
		{"select", km.Select, "enter"},
		{"close", km.Close, "esc"},
		{"search", km.Search, "ctrl+r"},
		{"clear", km.Clear, "ctrl+u"},
		{"submit", km.Submit, "ctrl+s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, tt.binding.Keys(), tt.key)
			assert.NotEmpty(t, tt.binding.Help().Desc)
		})
	}
}

func TestDefaultKeyMap_PrintableKeysAreFree(t *testing.T) {
	km := DefaultKeyMap()

	// Letters must reach the text input.
	for _, group := range km.FullHelp() {
		for _, b := range group {
			for _, k := range b.Keys() {
				assert.Greater(t, len(k), 1, "binding %q shadows a printable key", k)
			}
		}
	}
}

func TestKeyMap_ShortHelp(t *testing.T) {
	km := DefaultKeyMap()

	help := km.ShortHelp()

	assert.Len(t, help, 4)
}

func TestKeyMap_DropdownHelp(t *testing.T) {
	km := DefaultKeyMap()

	help := km.DropdownHelp()

	require.Len(t, help, 4)
	assert.Equal(t, km.Down, help[0])
}

func TestKeyMap_FullHelp(t *testing.T) {
	km := DefaultKeyMap()

	help := km.FullHelp()

	require.Len(t, help, 3)
	assert.Len(t, help[0], 4)
	assert.Len(t, help[1], 4)
	assert.Len(t, help[2], 3)
}

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("tab", km.Next))
	assert.True(t, Matches("ctrl+s", km.Submit))
	assert.False(t, Matches("q", km.Quit))
	assert.False(t, Matches("", km.Select))
}
