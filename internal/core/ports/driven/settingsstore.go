package driven

import (
	"context"

	"github.com/custodia-labs/searchfield/internal/core/domain"
)

// SettingsStore provides access to file configuration.
// Implementations handle persistence (e.g., TOML files).
type SettingsStore interface {
	// Load reads the settings. A missing file yields domain.DefaultSettings.
	Load() (domain.Settings, error)

	// Save writes the settings.
	Save(settings domain.Settings) error

	// Path returns the configuration file path.
	Path() string

	// Watch calls fn with freshly loaded settings whenever the file changes,
	// until ctx is cancelled.
	Watch(ctx context.Context, fn func(domain.Settings)) error
}
