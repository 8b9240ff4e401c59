// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

// FieldUpdated is posted when a search field redrew its widget from
// outside the program loop (debounce timer, network result, blur close).
type FieldUpdated struct {
	Field string
}

// FocusChanged is sent when focus moves to another field.
type FocusChanged struct {
	Field string
}

// SearchRequested asks for an immediate search on a field.
type SearchRequested struct {
	Field string
}

// FormValidated carries the outcome of validating every field.
type FormValidated struct {
	// Results is the per-field outcome.
	Results map[string]bool

	// Errors is the form-error map after validation.
	Errors map[string]string
}

// Valid reports whether every field passed.
func (m FormValidated) Valid() bool {
	for _, ok := range m.Results {
		if !ok {
			return false
		}
	}
	return true
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewForm is the form of search fields.
	ViewForm ViewType = iota
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewForm:
		return "form"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
