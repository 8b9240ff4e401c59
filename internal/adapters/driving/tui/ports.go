// Package tui provides an interactive terminal form of search fields.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/searchfield/internal/core/ports/driven"
	"github.com/custodia-labs/searchfield/internal/core/ports/driving"
)

// Ports aggregates what the TUI needs from the core.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Fields holds the search fields of the form, in display order.
	Fields driving.FieldRegistry

	// Errors is the form-error map the fields write to. Optional.
	Errors driven.ErrorSink

	// Labels maps field names to display labels. Optional.
	Labels map[string]string
}

// NewPorts creates a new Ports aggregate.
func NewPorts(fields driving.FieldRegistry, errs driven.ErrorSink, labels map[string]string) *Ports {
	return &Ports{
		Fields: fields,
		Errors: errs,
		Labels: labels,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Fields == nil {
		return ErrMissingFieldRegistry
	}
	if len(p.Fields.Names()) == 0 {
		return ErrNoFields
	}
	return nil
}
