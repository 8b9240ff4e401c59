package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/custodia-labs/searchfield/internal/core/domain"
	"github.com/custodia-labs/searchfield/internal/core/ports/driven"
	"github.com/custodia-labs/searchfield/internal/core/ports/driving"
	"github.com/custodia-labs/searchfield/internal/logger"
)

// Ensure LookupService implements the interface.
var _ driving.LookupService = (*LookupService)(nil)

// LookupService runs one-shot searches and checks for the CLI and MCP server.
type LookupService struct {
	gateway *Gateway

	// direct serves lookups with a non-default size, which the cache cannot key.
	direct *Gateway

	mu       sync.RWMutex
	settings domain.Settings
}

// NewLookupService creates a lookup service. cache may be nil.
func NewLookupService(
	fetcher driven.RecordFetcher, cache driven.ResultCache, settings domain.Settings,
) *LookupService {
	return &LookupService{
		gateway:  NewGateway(fetcher, cache),
		direct:   NewGateway(fetcher, nil),
		settings: settings,
	}
}

// SetSettings replaces the settings, e.g. after the config file changed.
func (s *LookupService) SetSettings(settings domain.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
}

func (s *LookupService) current() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Fields returns the configured fields.
func (s *LookupService) Fields() []domain.FieldSettings {
	return append([]domain.FieldSettings(nil), s.current().Fields...)
}

// Resolve returns field options for a configured field name, a preset
// name or an endpoint URL, in that order.
func (s *LookupService) Resolve(target string) (domain.FieldOptions, error) {
	settings := s.current()
	if fs, err := settings.Field(target); err == nil {
		return settings.FieldOptions(fs)
	}
	if strings.Contains(target, "/") {
		return settings.FieldOptions(domain.FieldSettings{Name: target, APIURL: target})
	}
	return settings.FieldOptions(domain.FieldSettings{Name: target, Preset: target})
}

// Lookup searches req.Target for req.Query.
func (s *LookupService) Lookup(ctx context.Context, req driving.LookupRequest) ([]domain.SearchItem, error) {
	opts, err := s.Resolve(req.Target)
	if err != nil {
		return nil, err
	}
	return s.search(ctx, opts, req.Query, req.Size)
}

func (s *LookupService) search(
	ctx context.Context, opts domain.FieldOptions, query string, size int,
) ([]domain.SearchItem, error) {
	if opts.APIURL == "" {
		return nil, domain.ErrNoSource
	}
	query = strings.TrimSpace(query)
	q := domain.QueryState{Text: query, MinLength: opts.MinLengthFor(query)}
	if !q.Searchable() {
		return nil, fmt.Errorf("%w: %q needs at least %d characters", domain.ErrQueryTooShort, query, q.MinLength)
	}
	gateway := s.gateway
	if size <= 0 {
		size = opts.DefaultSize
	}
	if size != opts.DefaultSize {
		gateway = s.direct
	}

	logger.Section("Lookup")
	logger.Debug("Endpoint: %s, query: %q, size: %d", opts.APIURL, query, size)

	return gateway.Search(ctx, driven.SearchRequest{
		URL:         opts.APIURL,
		SearchParam: opts.SearchParam,
		SizeParam:   opts.SizeParam,
		Size:        size,
		Text:        query,
	}, opts.FormatItem)
}

// Check validates text against the rules of the configured field.
func (s *LookupService) Check(ctx context.Context, field, text string) (driving.CheckResult, error) {
	settings := s.current()
	fs, err := settings.Field(field)
	if err != nil {
		return driving.CheckResult{}, err
	}
	opts, err := settings.FieldOptions(fs)
	if err != nil {
		return driving.CheckResult{}, err
	}

	var selection *domain.SearchItem
	if opts.APIURL != "" && text != "" {
		items, err := s.search(ctx, opts, text, 0)
		if err != nil {
			logger.Debug("Check %s: no selection candidates: %v", field, err)
		}
		for _, item := range items {
			if opts.FormatDisplay(item) == text {
				match := item
				selection = &match
				break
			}
		}
	}

	validator := NewValidator(opts.Validation, nil)
	valid := validator.Run(text, selection)
	state := validator.State()

	return driving.CheckResult{
		Field:     field,
		Text:      text,
		Valid:     valid,
		Message:   state.ActiveError(),
		Errors:    state.Errors,
		Selection: selection,
	}, nil
}
