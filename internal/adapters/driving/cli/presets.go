package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/searchfield/internal/core/domain"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List built-in field presets",
	RunE: func(cmd *cobra.Command, _ []string) error {
		for _, name := range domain.PresetNames() {
			opts, err := domain.Preset(name, "")
			if err != nil {
				return err
			}
			cmd.Printf("  %-8s %s\n", name, opts.APIURL)
		}
		return nil
	},
}

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List configured search fields",
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := lookupService()
		if err != nil {
			return err
		}
		fields := svc.Fields()
		if len(fields) == 0 {
			cmd.Println("No fields configured.")
			return nil
		}
		for _, f := range fields {
			target := f.Preset
			if f.APIURL != "" {
				target = f.APIURL
			}
			cmd.Printf("  %-16s %-16s %s\n", f.Name, f.DisplayLabel(), target)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(fieldsCmd)
}
