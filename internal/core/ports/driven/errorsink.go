package driven

// ErrorSink is the owning form's error map.
// Each field writes only under its own key.
type ErrorSink interface {
	// Set records message for field.
	Set(field, message string)

	// Clear removes the entry for field.
	Clear(field string)

	// Get returns the message for field.
	Get(field string) (string, bool)

	// All returns a copy of every entry.
	All() map[string]string
}
