package mcp

import (
	"context"

	"github.com/custodia-labs/searchfield/internal/core/domain"
	"github.com/custodia-labs/searchfield/internal/core/ports/driving"
)

// mockLookupService is a mock implementation of driving.LookupService.
type mockLookupService struct {
	items  []domain.SearchItem
	check  driving.CheckResult
	fields []domain.FieldSettings
	err    error

	lastRequest driving.LookupRequest
}

func (m *mockLookupService) Lookup(_ context.Context, req driving.LookupRequest) ([]domain.SearchItem, error) {
	m.lastRequest = req
	return m.items, m.err
}

func (m *mockLookupService) Check(_ context.Context, field, text string) (driving.CheckResult, error) {
	if m.err != nil {
		return driving.CheckResult{}, m.err
	}
	result := m.check
	result.Field, result.Text = field, text
	return result, nil
}

func (m *mockLookupService) Fields() []domain.FieldSettings {
	return m.fields
}
