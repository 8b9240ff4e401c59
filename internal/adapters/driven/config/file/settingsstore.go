package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/searchfield/internal/core/domain"
	"github.com/custodia-labs/searchfield/internal/core/ports/driven"
	"github.com/custodia-labs/searchfield/internal/logger"
)

// Ensure SettingsStore implements the interface.
var _ driven.SettingsStore = (*SettingsStore)(nil)

// SettingsStore is a file-based implementation of driven.SettingsStore using TOML.
type SettingsStore struct {
	mu       sync.Mutex
	filePath string
}

// DefaultPath returns ~/.searchfield/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".searchfield", "config.toml"), nil
}

// NewSettingsStore creates a store for path. An empty path uses DefaultPath.
func NewSettingsStore(path string) (*SettingsStore, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return &SettingsStore{filePath: path}, nil
}

// Path returns the settings file path.
func (s *SettingsStore) Path() string {
	return s.filePath
}

// Load reads the file over the defaults. A missing file yields the defaults.
func (s *SettingsStore) Load() (domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings := domain.DefaultSettings()
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return domain.Settings{}, err
	}

	if err := toml.Unmarshal(data, &settings); err != nil {
		return domain.Settings{}, fmt.Errorf("parse %s: %w", s.filePath, err)
	}
	return settings, nil
}

// Save writes settings to the file with restricted permissions.
func (s *SettingsStore) Save(settings domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := toml.Marshal(settings)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.filePath), 0700); err != nil {
		return err
	}
	// The file may hold an API token.
	return os.WriteFile(s.filePath, data, 0600)
}

// Watch reloads the settings whenever the file is written, created or
// replaced, and passes them to fn. It blocks until ctx is cancelled.
// Invalid content is logged and skipped.
func (s *SettingsStore) Watch(ctx context.Context, fn func(domain.Settings)) error {
	dir := filepath.Dir(s.filePath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace the file, so watch the directory.
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !s.isReload(event) {
				continue
			}
			settings, err := s.Load()
			if err != nil {
				logger.Warn("Ignoring settings change: %v", err)
				continue
			}
			logger.Debug("Settings reloaded from %s", s.filePath)
			fn(settings)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Settings watcher: %v", err)
		}
	}
}

// isReload reports whether event changed the settings file.
func (s *SettingsStore) isReload(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != filepath.Clean(s.filePath) {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
