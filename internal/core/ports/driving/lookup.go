package driving

import (
	"context"

	"github.com/custodia-labs/searchfield/internal/core/domain"
)

// LookupRequest is a one-shot search.
type LookupRequest struct {
	// Target is a preset name or an endpoint URL.
	Target string

	// Query is the search text.
	Query string

	// Size overrides the page-size hint when positive.
	Size int
}

// CheckResult is the outcome of validating a candidate value.
type CheckResult struct {
	Field   string   `json:"field"`
	Text    string   `json:"text"`
	Valid   bool     `json:"valid"`
	Message string   `json:"message,omitempty"`
	Errors  []string `json:"errors,omitempty"`

	// Selection is the matching item when the field requires a selection.
	Selection *domain.SearchItem `json:"selection,omitempty"`
}

// LookupService runs searches and validation outside an interactive field.
type LookupService interface {
	// Lookup searches Target for Query.
	// Queries below the effective minimum length return domain.ErrQueryTooShort.
	Lookup(ctx context.Context, req LookupRequest) ([]domain.SearchItem, error)

	// Check validates text against the rules of a configured field.
	// When the field has a remote source, an item whose display text equals
	// text counts as the selection.
	Check(ctx context.Context, field, text string) (CheckResult, error)

	// Fields returns the configured field settings.
	Fields() []domain.FieldSettings
}
