package services

import (
	"fmt"
	"time"

	"github.com/custodia-labs/searchfield/internal/core/domain"
	"github.com/custodia-labs/searchfield/internal/core/ports/driven"
	"github.com/custodia-labs/searchfield/internal/logger"
)

// FormDeps are the collaborators shared by every field of a form.
type FormDeps struct {
	Fetcher driven.RecordFetcher
	Sink    driven.ErrorSink
	Clock   driven.Clock

	// NewCache builds a private cache per field. Nil disables caching.
	NewCache func(ttl time.Duration) driven.ResultCache
}

// BuildForm creates one unattached field per configured field and registers
// them in order. On error every field created so far is destroyed.
func BuildForm(settings domain.Settings, deps FormDeps) (*FieldRegistry, error) {
	registry := NewFieldRegistry()
	for _, fs := range settings.Fields {
		opts, err := settings.FieldOptions(fs)
		if err != nil {
			registry.DestroyAll()
			return nil, fmt.Errorf("field %q: %w", fs.Name, err)
		}

		fieldDeps := FieldDeps{Fetcher: deps.Fetcher, Sink: deps.Sink, Clock: deps.Clock}
		if opts.EnableCache && deps.NewCache != nil {
			fieldDeps.Cache = deps.NewCache(opts.CacheExpiration)
		}

		field, err := NewSearchField(fs.Name, opts, fieldDeps)
		if err != nil {
			registry.DestroyAll()
			return nil, fmt.Errorf("field %q: %w", fs.Name, err)
		}
		registry.Register(fs.Name, field)
		logger.Debug("Form field %s -> %s", fs.Name, opts.APIURL)
	}
	return registry, nil
}
