// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/searchfield/internal/adapters/driving/tui/styles"
)

// FieldInput wraps a bubbles textinput with a label and a disabled state.
type FieldInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	label     string
	disabled  bool
	width     int
}

// NewFieldInput creates an unfocused input labelled label.
func NewFieldInput(s *styles.Styles, label string) *FieldInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 40

	return &FieldInput{
		textinput: ti,
		styles:    s,
		label:     label,
		width:     50,
	}
}

// Init initialises the input.
func (f *FieldInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages. A disabled input ignores them.
func (f *FieldInput) Update(msg tea.Msg) (*FieldInput, tea.Cmd) {
	if f.disabled {
		return f, nil
	}
	var cmd tea.Cmd
	f.textinput, cmd = f.textinput.Update(msg)
	return f, cmd
}

// View renders the label above the framed input.
func (f *FieldInput) View() string {
	label := f.styles.Label.Render(f.label)
	frame := f.styles.InputField
	if f.textinput.Focused() {
		frame = f.styles.FocusedInput
	}
	body := f.textinput.View()
	if f.disabled {
		body = f.styles.Muted.Render(f.textinput.Value() + " (disabled)")
	}
	return lipgloss.JoinVertical(lipgloss.Left, label, frame.Render(body))
}

// Label returns the label.
func (f *FieldInput) Label() string {
	return f.label
}

// Value returns the current input value.
func (f *FieldInput) Value() string {
	return f.textinput.Value()
}

// SetValue sets the input value and moves the cursor to the end.
func (f *FieldInput) SetValue(value string) {
	f.textinput.SetValue(value)
	f.textinput.CursorEnd()
}

// SetPlaceholder sets the hint shown while the input is empty.
func (f *FieldInput) SetPlaceholder(text string) {
	f.textinput.Placeholder = text
}

// Placeholder returns the placeholder.
func (f *FieldInput) Placeholder() string {
	return f.textinput.Placeholder
}

// SetDisabled enables or disables the input. Disabling blurs it.
func (f *FieldInput) SetDisabled(disabled bool) {
	f.disabled = disabled
	if disabled {
		f.textinput.Blur()
	}
}

// Disabled reports whether the input is disabled.
func (f *FieldInput) Disabled() bool {
	return f.disabled
}

// Focus sets focus on the input. A disabled input stays blurred.
func (f *FieldInput) Focus() tea.Cmd {
	if f.disabled {
		return nil
	}
	return f.textinput.Focus()
}

// Blur removes focus from the input.
func (f *FieldInput) Blur() {
	f.textinput.Blur()
}

// Focused returns whether the input is focused.
func (f *FieldInput) Focused() bool {
	return f.textinput.Focused()
}

// SetWidth sets the width of the input.
func (f *FieldInput) SetWidth(width int) {
	f.width = width
	// Account for border and padding
	inputWidth := width - 6
	if inputWidth < 20 {
		inputWidth = 20
	}
	f.textinput.Width = inputWidth
}

// Width returns the current width.
func (f *FieldInput) Width() int {
	return f.width
}

// Reset clears the input.
func (f *FieldInput) Reset() {
	f.textinput.Reset()
}
