// Package mcp provides an MCP (Model Context Protocol) server adapter.
// It lets AI assistants look up admin records and check field values.
package mcp

import "errors"

// ErrMissingLookupService is returned when the lookup service is not provided.
var ErrMissingLookupService = errors.New("mcp: lookup service is required")
