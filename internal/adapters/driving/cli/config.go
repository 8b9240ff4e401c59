package cli

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/searchfield/internal/core/domain"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
	Long: `View and create the configuration file that defines the API connection,
search timing and the fields of the form.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, err := settingsStore()
		if err != nil {
			return err
		}
		cmd.Println(store.Path())
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with defaults and an example field",
	RunE:  runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing file")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	store, err := settingsStore()
	if err != nil {
		return err
	}
	settings, err := store.Load()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	if settings.API.Token != "" {
		settings.API.Token = "********"
	}

	data, err := toml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	cmd.Printf("# %s\n", store.Path())
	cmd.Print(string(data))
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	store, err := settingsStore()
	if err != nil {
		return err
	}
	if _, err := os.Stat(store.Path()); err == nil && !configForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", store.Path())
	}

	settings := domain.DefaultSettings()
	settings.Fields = []domain.FieldSettings{{
		Name:   "accountId",
		Label:  "Account",
		Preset: "account",
		Validation: domain.ValidationSettings{
			Enabled:    true,
			ValidateOn: []string{"blur", "change"},
			Rules:      []domain.RuleSettings{{Type: "required_selection"}},
		},
	}}
	if err := store.Save(settings); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	cmd.Printf("Wrote %s\n", store.Path())
	return nil
}
