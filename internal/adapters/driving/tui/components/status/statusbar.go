// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/searchfield/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/searchfield/internal/adapters/driving/tui/styles"
)

// State represents the form state shown on the left of the bar.
type State string

const (
	StateReady     State = "ready"
	StateSearching State = "searching"
	StateInvalid   State = "invalid"
	StateValid     State = "valid"
	StateError     State = "error"
)

// Bar displays the form state and keybinding hints.
type Bar struct {
	styles       *styles.Styles
	keymap       *keymap.KeyMap
	state        State
	message      string
	errors       map[string]string
	dropdownOpen bool
	width        int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		width:  80,
	}
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	switch s.state {
	case StateSearching:
		return s.styles.Muted.Render("Searching...")
	case StateInvalid:
		return s.styles.Error.Render(s.errorSummary())
	case StateValid:
		return s.styles.Success.Render("All fields valid")
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render(fmt.Sprintf("Error: %s", s.message))
		}
		return s.styles.Error.Render("Error")
	case StateReady:
	}
	if s.message != "" {
		return s.styles.Normal.Render(s.message)
	}
	return s.styles.Muted.Render("Ready")
}

// errorSummary shows the first error by field name and how many others exist.
func (s *Bar) errorSummary() string {
	if len(s.errors) == 0 {
		return "Invalid"
	}
	names := make([]string, 0, len(s.errors))
	for name := range s.errors {
		names = append(names, name)
	}
	sort.Strings(names)

	summary := fmt.Sprintf("%s: %s", names[0], s.errors[names[0]])
	if len(names) > 1 {
		summary += fmt.Sprintf(" (+%d more)", len(names)-1)
	}
	return summary
}

func (s *Bar) renderRight() string {
	var bindings []key.Binding
	if s.dropdownOpen {
		bindings = s.keymap.DropdownHelp()
	} else {
		bindings = s.keymap.ShortHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets a custom message.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetErrors replaces the form errors and switches to StateInvalid or StateValid.
func (s *Bar) SetErrors(errs map[string]string) {
	s.errors = errs
	if len(errs) > 0 {
		s.state = StateInvalid
	} else {
		s.state = StateValid
	}
}

// Errors returns the form errors last shown.
func (s *Bar) Errors() map[string]string {
	return s.errors
}

// SetDropdownOpen switches the hints to dropdown navigation.
func (s *Bar) SetDropdownOpen(open bool) {
	s.dropdownOpen = open
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the status bar to default state.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
	s.errors = nil
}
