package driven

import (
	"context"

	"github.com/custodia-labs/searchfield/internal/core/domain"
)

// SearchRequest describes one remote search.
type SearchRequest struct {
	// URL is the endpoint, absolute or relative to the API base.
	URL string

	// SearchParam and SizeParam name the query-string parameters.
	SearchParam string
	SizeParam   string

	// Size is the page-size hint.
	Size int

	// Text is the search text, sent verbatim.
	Text string
}

// RecordFetcher issues remote searches.
type RecordFetcher interface {
	// Fetch returns the raw records of the response.
	// Transport errors and non-success statuses wrap domain.ErrNetworkFailure.
	// A body without a records array wraps domain.ErrResponseShape.
	Fetch(ctx context.Context, req SearchRequest) ([]domain.RawRecord, error)
}
