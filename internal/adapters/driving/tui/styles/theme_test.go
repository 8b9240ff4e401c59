package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	require.NotNil(t, theme)
	assert.NotEmpty(t, string(theme.Primary))
	assert.NotEmpty(t, string(theme.Secondary))
	assert.NotEmpty(t, string(theme.Foreground))
	assert.NotEmpty(t, string(theme.Muted))
	assert.NotEmpty(t, string(theme.Success))
	assert.NotEmpty(t, string(theme.Warning))
	assert.NotEmpty(t, string(theme.Error))
	assert.NotEmpty(t, string(theme.Border))
}

func TestDefaultTheme_AccentsAreDistinct(t *testing.T) {
	theme := DefaultTheme()

	accents := []lipgloss.Color{theme.Primary, theme.Secondary, theme.Success, theme.Warning, theme.Error}

	seen := make(map[string]bool)
	for _, c := range accents {
		s := string(c)
		assert.False(t, seen[s], "duplicate accent: %s", s)
		seen[s] = true
	}
}

func TestNewStyles_WithTheme(t *testing.T) {
	theme := DefaultTheme()
	s := NewStyles(theme)

	require.NotNil(t, s)
	assert.Equal(t, theme, s.Theme())
}

func TestNewStyles_NilTheme(t *testing.T) {
	s := NewStyles(nil)

	require.NotNil(t, s)
	assert.NotNil(t, s.Theme())
}

func TestStyles_RenderKeepsText(t *testing.T) {
	s := DefaultStyles()

	assert.Contains(t, s.Label.Render("Account"), "Account")
	assert.Contains(t, s.Highlighted.Render("ACME"), "ACME")
	assert.Contains(t, s.Error.Render("此字段为必填项"), "此字段为必填项")
	assert.Contains(t, s.FocusedInput.Render("abc"), "abc")
}
