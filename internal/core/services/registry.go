package services

import (
	"sync"

	"github.com/custodia-labs/searchfield/internal/core/ports/driving"
)

// Ensure FieldRegistry implements the interface.
var _ driving.FieldRegistry = (*FieldRegistry)(nil)

// FieldRegistry holds a page's fields by name.
type FieldRegistry struct {
	mu     sync.RWMutex
	fields map[string]driving.SearchField
	order  []string
}

// NewFieldRegistry creates an empty registry.
func NewFieldRegistry() *FieldRegistry {
	return &FieldRegistry{fields: make(map[string]driving.SearchField)}
}

// Register adds field under name. A field already registered under name is destroyed.
func (r *FieldRegistry) Register(name string, field driving.SearchField) {
	r.mu.Lock()
	old, exists := r.fields[name]
	r.fields[name] = field
	if !exists {
		r.order = append(r.order, name)
	}
	r.mu.Unlock()

	if exists && old != field {
		old.Destroy()
	}
}

// Get returns the field registered under name.
func (r *FieldRegistry) Get(name string) (driving.SearchField, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.fields[name]
	return f, ok
}

// Names returns names in registration order.
func (r *FieldRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

// ValidateAll validates every field.
func (r *FieldRegistry) ValidateAll() map[string]bool {
	results := make(map[string]bool)
	for _, name := range r.Names() {
		if f, ok := r.Get(name); ok {
			results[name] = f.Validate()
		}
	}
	return results
}

// DestroyAll destroys and unregisters every field.
func (r *FieldRegistry) DestroyAll() {
	r.mu.Lock()
	fields := r.fields
	r.fields = make(map[string]driving.SearchField)
	r.order = nil
	r.mu.Unlock()

	for _, f := range fields {
		f.Destroy()
	}
}
