package driven

import "github.com/custodia-labs/searchfield/internal/core/domain"

// ResultCache memoizes search results keyed by (source, lower(query)).
// Entries older than the cache expiration are treated as absent.
type ResultCache interface {
	// Get returns cached items. An expired entry is evicted and reported as a miss.
	Get(source, query string) ([]domain.SearchItem, bool)

	// Put stores items for the key.
	Put(source, query string, items []domain.SearchItem)

	// Clear drops every entry.
	Clear()

	// InvalidateSource drops every entry whose source is source.
	InvalidateSource(source string)

	// Len returns the number of stored entries, expired ones included.
	Len() int
}
