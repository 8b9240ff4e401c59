package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/searchfield/internal/core/domain"
)

// uriScheme is the custom URI scheme for searchfield resources.
const uriScheme = "searchfield://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "fields",
		Name:        "fields",
		Description: "Configured search fields with their endpoints and rules",
		MIMEType:    "application/json",
	}, s.handleFieldsResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "presets",
		Name:        "presets",
		Description: "Names of the built-in field presets",
		MIMEType:    "application/json",
	}, s.handlePresetsResource)
}

type fieldInfo struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Preset   string   `json:"preset,omitempty"`
	APIURL   string   `json:"api_url,omitempty"`
	Disabled bool     `json:"disabled,omitempty"`
	Rules    []string `json:"rules,omitempty"`
}

// handleFieldsResource lists the configured fields. Tokens never leave the server.
func (s *Server) handleFieldsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	fields := s.ports.Lookup.Fields()
	infos := make([]fieldInfo, len(fields))
	for i, f := range fields {
		info := fieldInfo{
			Name:     f.Name,
			Label:    f.DisplayLabel(),
			Preset:   f.Preset,
			APIURL:   f.APIURL,
			Disabled: f.Disabled,
		}
		if f.Validation.Enabled {
			for _, r := range f.Validation.Rules {
				info.Rules = append(info.Rules, r.Type)
			}
		}
		infos[i] = info
	}
	return jsonResource(req.Params.URI, infos)
}

// handlePresetsResource lists the preset names.
func (s *Server) handlePresetsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return jsonResource(req.Params.URI, domain.PresetNames())
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
