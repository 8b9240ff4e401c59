package mcp

import (
	"github.com/custodia-labs/searchfield/internal/core/ports/driving"
)

// Ports aggregates the driving ports required by the MCP server.
type Ports struct {
	// Lookup runs searches and field checks.
	Lookup driving.LookupService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Lookup == nil {
		return ErrMissingLookupService
	}
	return nil
}
