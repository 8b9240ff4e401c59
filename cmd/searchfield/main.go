// Command searchfield runs the search-field engine from the terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/custodia-labs/searchfield/internal/adapters/driven/clock"
	"github.com/custodia-labs/searchfield/internal/adapters/driven/config/file"
	"github.com/custodia-labs/searchfield/internal/adapters/driven/remote"
	"github.com/custodia-labs/searchfield/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/searchfield/internal/adapters/driving/cli"
	"github.com/custodia-labs/searchfield/internal/adapters/driving/tui"
	"github.com/custodia-labs/searchfield/internal/core/domain"
	"github.com/custodia-labs/searchfield/internal/core/ports/driven"
	"github.com/custodia-labs/searchfield/internal/core/services"
	"github.com/custodia-labs/searchfield/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// bootstrap wires the adapters for the configuration file at path.
func bootstrap(ctx context.Context, path string) (*cli.Services, error) {
	store, err := file.NewSettingsStore(path)
	if err != nil {
		return nil, fmt.Errorf("locating config: %w", err)
	}
	settings, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if settings.Verbose {
		logger.SetVerbose(true)
	}

	client, err := remote.New(remote.ConfigFromSettings(settings.API))
	if err != nil {
		return nil, fmt.Errorf("creating API client: %w", err)
	}

	var sys clock.System
	var cache driven.ResultCache
	if settings.Search.CacheEnabled {
		cache = memory.NewResultCache(sys, time.Duration(settings.Search.CacheTTLMS)*time.Millisecond)
	}
	lookup := services.NewLookupService(client, cache, settings)

	go func() {
		err := store.Watch(ctx, func(s domain.Settings) {
			logger.Debug("Config reloaded from %s", store.Path())
			lookup.SetSettings(s)
		})
		if err != nil && ctx.Err() == nil {
			logger.Warn("Config watch stopped: %v", err)
		}
	}()

	return &cli.Services{
		Lookup:   lookup,
		Settings: store,
		Form: func(context.Context) (*tui.Ports, func(), error) {
			return buildForm(store, client, sys)
		},
	}, nil
}

// buildForm creates the fields of the interactive form from the current
// config. The returned function destroys them.
func buildForm(store driven.SettingsStore, fetcher driven.RecordFetcher, clk driven.Clock) (*tui.Ports, func(), error) {
	settings, err := store.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	sink := memory.NewFormErrors()
	registry, err := services.BuildForm(settings, services.FormDeps{
		Fetcher: fetcher,
		Sink:    sink,
		Clock:   clk,
		NewCache: func(ttl time.Duration) driven.ResultCache {
			return memory.NewResultCache(clk, ttl)
		},
	})
	if err != nil {
		return nil, nil, err
	}

	labels := make(map[string]string, len(settings.Fields))
	for _, f := range settings.Fields {
		labels[f.Name] = f.DisplayLabel()
	}
	return tui.NewPorts(registry, sink, labels), registry.DestroyAll, nil
}
