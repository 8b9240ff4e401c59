package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/searchfield/internal/core/domain"
)

func TestSettingsStore_LoadSave(t *testing.T) {
	store := NewSettingsStore(domain.DefaultSettings())

	settings, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)

	settings.Verbose = true
	require.NoError(t, store.Save(settings))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.True(t, loaded.Verbose)
	assert.Equal(t, "memory://settings", store.Path())
}

func TestSettingsStore_Watch(t *testing.T) {
	store := NewSettingsStore(domain.DefaultSettings())
	ctx, cancel := context.WithCancel(context.Background())
	got := make(chan domain.Settings, 1)
	done := make(chan struct{})

	go func() {
		defer close(done)
		_ = store.Watch(ctx, func(s domain.Settings) { got <- s })
	}()
	require.Eventually(t, func() bool {
		store.mu.RLock()
		defer store.mu.RUnlock()
		return len(store.watchers) == 1
	}, time.Second, time.Millisecond)

	updated := domain.DefaultSettings()
	updated.API.BaseURL = "https://changed"
	require.NoError(t, store.Save(updated))

	select {
	case s := <-got:
		assert.Equal(t, "https://changed", s.API.BaseURL)
	case <-time.After(time.Second):
		t.Fatal("watcher not notified")
	}

	cancel()
	<-done
	assert.Empty(t, store.watchers)
}
