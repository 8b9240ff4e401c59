// Package cli provides the cobra command tree of the searchfield binary.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/searchfield/internal/adapters/driving/tui"
	"github.com/custodia-labs/searchfield/internal/core/ports/driven"
	"github.com/custodia-labs/searchfield/internal/core/ports/driving"
	"github.com/custodia-labs/searchfield/internal/logger"
)

// Services are the core services the commands drive.
type Services struct {
	// Lookup runs one-shot searches and field checks.
	Lookup driving.LookupService

	// Settings is the configuration file.
	Settings driven.SettingsStore

	// Form builds the fields of the interactive form. The returned
	// function releases them.
	Form func(ctx context.Context) (*tui.Ports, func(), error)
}

// Bootstrap builds the services for a configuration file path.
// An empty path selects the default location.
type Bootstrap func(ctx context.Context, configPath string) (*Services, error)

var (
	version = "dev"

	verbose    bool
	configPath string

	bootstrap Bootstrap
	services  *Services
)

var errNotConfigured = errors.New("services not configured")

var rootCmd = &cobra.Command{
	Use:   "searchfield",
	Short: "Search admin records the way the console's search fields do",
	Long: `searchfield runs the search-dropdown engine of the admin console from the
terminal: debounced remote search with a result cache, keyboard selection and
per-field validation rules.

Fields, endpoints and rules are read from ~/.searchfield/config.toml.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "configuration file (default ~/.searchfield/config.toml)")
}

// SetBootstrap sets the function that builds the services once flags are parsed.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetVersion sets the version printed by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	logger.SetOutput(cmd.ErrOrStderr())

	if bootstrap == nil || cmd == versionCmd {
		return nil
	}
	svc, err := bootstrap(cmd.Context(), configPath)
	if err != nil {
		return err
	}
	services = svc
	return nil
}

func lookupService() (driving.LookupService, error) {
	if services == nil || services.Lookup == nil {
		return nil, errNotConfigured
	}
	return services.Lookup, nil
}

func settingsStore() (driven.SettingsStore, error) {
	if services == nil || services.Settings == nil {
		return nil, errNotConfigured
	}
	return services.Settings, nil
}
