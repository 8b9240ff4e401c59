package services

import (
	"context"
	"fmt"
	"strconv"

	"golang.org/x/sync/singleflight"

	"github.com/custodia-labs/searchfield/internal/core/domain"
	"github.com/custodia-labs/searchfield/internal/core/ports/driven"
	"github.com/custodia-labs/searchfield/internal/logger"
)

// Gateway runs remote searches through an optional result cache.
//
// Identical concurrent searches share one request. Failures are never
// cached and always come back with an empty, non-nil item slice so the
// caller can render them directly.
type Gateway struct {
	fetcher driven.RecordFetcher
	cache   driven.ResultCache
	group   singleflight.Group
}

// NewGateway creates a gateway. cache may be nil to disable caching.
func NewGateway(fetcher driven.RecordFetcher, cache driven.ResultCache) *Gateway {
	return &Gateway{fetcher: fetcher, cache: cache}
}

// Cached returns items cached for the request without touching the network.
func (g *Gateway) Cached(source, query string) ([]domain.SearchItem, bool) {
	if g.cache == nil {
		return nil, false
	}
	return g.cache.Get(source, query)
}

// Search returns items for req, mapping each raw record through format.
func (g *Gateway) Search(
	ctx context.Context, req driven.SearchRequest, format domain.ItemFormatter,
) ([]domain.SearchItem, error) {
	if items, ok := g.Cached(req.URL, req.Text); ok {
		logger.Debug("Cache hit for %q on %s", req.Text, req.URL)
		return items, nil
	}
	if g.fetcher == nil {
		return []domain.SearchItem{}, domain.ErrNoSource
	}
	if format == nil {
		format = domain.DefaultFormatItem
	}

	key := req.URL + "\x00" + req.Text + "\x00" + strconv.Itoa(req.Size)
	v, err, shared := g.group.Do(key, func() (any, error) {
		records, err := g.fetcher.Fetch(ctx, req)
		if err != nil {
			return nil, err
		}
		items := make([]domain.SearchItem, 0, len(records))
		for _, r := range records {
			items = append(items, format(r))
		}
		if g.cache != nil {
			g.cache.Put(req.URL, req.Text, items)
		}
		return items, nil
	})
	if err != nil {
		return []domain.SearchItem{}, fmt.Errorf("search %q: %w", req.Text, err)
	}
	if shared {
		logger.Debug("Shared in-flight search for %q", req.Text)
	}

	items, _ := v.([]domain.SearchItem)
	return append([]domain.SearchItem{}, items...), nil
}
