package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/searchfield/internal/core/domain"
	"github.com/custodia-labs/searchfield/internal/core/ports/driven"
)

// Ensure SettingsStore implements the interface.
var _ driven.SettingsStore = (*SettingsStore)(nil)

// SettingsStore is an in-memory implementation of driven.SettingsStore for testing.
// Watchers are notified on every Save.
type SettingsStore struct {
	mu       sync.RWMutex
	settings domain.Settings
	watchers []chan domain.Settings
}

// NewSettingsStore creates a store holding settings.
func NewSettingsStore(settings domain.Settings) *SettingsStore {
	return &SettingsStore{settings: settings}
}

// Load returns the stored settings.
func (s *SettingsStore) Load() (domain.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings, nil
}

// Save replaces the settings and notifies watchers.
func (s *SettingsStore) Save(settings domain.Settings) error {
	s.mu.Lock()
	s.settings = settings
	watchers := append([]chan domain.Settings(nil), s.watchers...)
	s.mu.Unlock()

	for _, w := range watchers {
		select {
		case w <- settings:
		default:
		}
	}
	return nil
}

// Path returns a placeholder path.
func (s *SettingsStore) Path() string {
	return "memory://settings"
}

// Watch calls fn after every Save until ctx is cancelled.
func (s *SettingsStore) Watch(ctx context.Context, fn func(domain.Settings)) error {
	ch := make(chan domain.Settings, 1)
	s.mu.Lock()
	s.watchers = append(s.watchers, ch)
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, w := range s.watchers {
			if w == ch {
				s.watchers = append(s.watchers[:i], s.watchers[i+1:]...)
				break
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case settings := <-ch:
			fn(settings)
		}
	}
}
