package driving

import (
	"context"

	"github.com/custodia-labs/searchfield/internal/core/domain"
	"github.com/custodia-labs/searchfield/internal/core/ports/driven"
)

// SearchField is one interactive search input with its dropdown.
//
// Every method is safe for concurrent use. Before a successful Attach and
// after Destroy every method is a no-op.
type SearchField interface {
	// ID returns the unique instance identifier.
	ID() string

	// Name returns the field name used as the error sink key.
	Name() string

	// Attach binds the field to its rendering surface. Only the first call has effect.
	// A nil view returns domain.ErrViewRequired and leaves the field inert.
	Attach(view driven.View) error

	// Input handles a text edit.
	Input(text string)

	// Focus handles the input gaining focus.
	Focus()

	// Blur handles the input losing focus.
	Blur()

	// Change handles a committed edit (e.g. leaving a modified input).
	Change()

	// Key handles a navigation key and reports whether it was consumed.
	Key(key domain.Key) bool

	// Pick commits the item at index, as a pointer selection.
	Pick(index int)

	// Search runs a search for the current text immediately.
	Search(ctx context.Context)

	// SetSource switches the endpoint and drops cached results of the old one.
	SetSource(apiURL string)

	// SetValue sets the text and selection without searching.
	SetValue(text string, item *domain.SearchItem)

	// Value returns the text and selection.
	Value() domain.Value

	// Clear resets the text, selection and validation state.
	Clear()

	// SetDisabled enables or disables the field. Disabling clears it.
	SetDisabled(disabled bool)

	// Validate runs the validation pipeline and reports whether the field is valid.
	Validate() bool

	// Validation returns the last validation outcome.
	Validation() domain.ValidationState

	// State returns a snapshot of the field.
	State() domain.FieldState

	// Destroy releases timers, cache and view. Later calls are no-ops.
	Destroy()
}

// FieldRegistry gives pages explicit access to their fields by name.
type FieldRegistry interface {
	// Register adds field under name, replacing any previous field.
	Register(name string, field SearchField)

	// Get returns the field registered under name.
	Get(name string) (SearchField, bool)

	// Names returns registered names in registration order.
	Names() []string

	// ValidateAll validates every field and returns the per-field outcome.
	ValidateAll() map[string]bool

	// DestroyAll destroys and unregisters every field.
	DestroyAll()
}
