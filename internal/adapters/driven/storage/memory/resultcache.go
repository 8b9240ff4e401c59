package memory

import (
	"strings"
	"sync"
	"time"

	"github.com/custodia-labs/searchfield/internal/core/domain"
	"github.com/custodia-labs/searchfield/internal/core/ports/driven"
)

// Ensure ResultCache implements the interface.
var _ driven.ResultCache = (*ResultCache)(nil)

type cacheKey struct {
	source string
	query  string
}

type cacheEntry struct {
	items    []domain.SearchItem
	storedAt time.Time
}

// ResultCache is an in-memory driven.ResultCache owned by one field.
// Entries are evicted lazily on lookup once they reach the expiration age.
type ResultCache struct {
	mu         sync.Mutex
	clock      driven.Clock
	expiration time.Duration
	entries    map[cacheKey]cacheEntry
}

// NewResultCache creates a cache. A non-positive expiration uses domain.DefaultCacheExpiration.
func NewResultCache(clock driven.Clock, expiration time.Duration) *ResultCache {
	if expiration <= 0 {
		expiration = domain.DefaultCacheExpiration
	}
	return &ResultCache{
		clock:      clock,
		expiration: expiration,
		entries:    make(map[cacheKey]cacheEntry),
	}
}

func key(source, query string) cacheKey {
	return cacheKey{source: source, query: strings.ToLower(query)}
}

// Get returns a copy of the cached items.
func (c *ResultCache) Get(source, query string) ([]domain.SearchItem, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	k := key(source, query)
	entry, ok := c.entries[k]
	if !ok {
		return nil, false
	}
	if c.clock.Now().Sub(entry.storedAt) >= c.expiration {
		delete(c.entries, k)
		return nil, false
	}
	return append([]domain.SearchItem{}, entry.items...), true
}

// Put stores a copy of items.
func (c *ResultCache) Put(source, query string, items []domain.SearchItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key(source, query)] = cacheEntry{
		items:    append([]domain.SearchItem{}, items...),
		storedAt: c.clock.Now(),
	}
}

// Clear drops every entry.
func (c *ResultCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[cacheKey]cacheEntry)
}

// InvalidateSource drops every entry stored for source.
func (c *ResultCache) InvalidateSource(source string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if k.source == source {
			delete(c.entries, k)
		}
	}
}

// Len returns the number of stored entries.
func (c *ResultCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
