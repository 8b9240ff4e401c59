package memory

import (
	"sync"

	"github.com/custodia-labs/searchfield/internal/core/ports/driven"
)

// Ensure FormErrors implements the interface.
var _ driven.ErrorSink = (*FormErrors)(nil)

// FormErrors is a form's error map shared by its fields.
type FormErrors struct {
	mu     sync.RWMutex
	errors map[string]string
}

// NewFormErrors creates an empty error map.
func NewFormErrors() *FormErrors {
	return &FormErrors{errors: make(map[string]string)}
}

// Set records message for field.
func (s *FormErrors) Set(field, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors[field] = message
}

// Clear removes field's entry.
func (s *FormErrors) Clear(field string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.errors, field)
}

// Get returns field's message.
func (s *FormErrors) Get(field string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	msg, ok := s.errors[field]
	return msg, ok
}

// All returns a copy of every entry.
func (s *FormErrors) All() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.errors))
	for k, v := range s.errors {
		out[k] = v
	}
	return out
}
