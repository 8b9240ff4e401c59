package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/searchfield/internal/core/domain"
	"github.com/custodia-labs/searchfield/internal/core/ports/driving"
)

// LookupInput is the input schema for the lookup tool.
type LookupInput struct {
	Target string `json:"target" jsonschema:"configured field name, preset (account, domain, server, user, node, tag) or endpoint URL"`
	Query  string `json:"query" jsonschema:"the search text"`
	Size   int    `json:"size,omitempty" jsonschema:"page-size hint sent to the endpoint (default from config)"`
}

// LookupOutput is the output schema for the lookup tool.
type LookupOutput struct {
	Items []ItemOutput `json:"items"`
	Count int          `json:"count"`
}

// ItemOutput is one search result.
type ItemOutput struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CheckInput is the input schema for the check tool.
type CheckInput struct {
	Field string `json:"field" jsonschema:"name of a configured field"`
	Text  string `json:"text" jsonschema:"candidate value to validate"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "lookup",
		Description: "Search an admin endpoint the way a search field would and return matching items",
	}, s.handleLookup)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "check",
		Description: "Validate a value against the rules of a configured search field",
	}, s.handleCheck)
}

// handleLookup handles the lookup tool invocation.
func (s *Server) handleLookup(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input LookupInput,
) (*mcp.CallToolResult, LookupOutput, error) {
	items, err := s.ports.Lookup.Lookup(ctx, driving.LookupRequest{
		Target: input.Target,
		Query:  input.Query,
		Size:   input.Size,
	})
	if err != nil {
		return nil, LookupOutput{}, err
	}
	return nil, toLookupOutput(items), nil
}

func toLookupOutput(items []domain.SearchItem) LookupOutput {
	output := LookupOutput{
		Items: make([]ItemOutput, len(items)),
		Count: len(items),
	}
	for i, item := range items {
		output.Items[i] = ItemOutput{ID: item.ID, Name: item.Name}
	}
	return output
}

// handleCheck handles the check tool invocation.
func (s *Server) handleCheck(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CheckInput,
) (*mcp.CallToolResult, driving.CheckResult, error) {
	result, err := s.ports.Lookup.Check(ctx, input.Field, input.Text)
	if err != nil {
		return nil, driving.CheckResult{}, err
	}
	return nil, result, nil
}
