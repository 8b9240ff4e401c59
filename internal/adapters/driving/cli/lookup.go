package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/searchfield/internal/core/domain"
	"github.com/custodia-labs/searchfield/internal/core/ports/driving"
)

var (
	lookupSize int
	lookupJSON bool
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <field|preset|url> <query>",
	Short: "Search an endpoint the way a search field does",
	Long: `Runs one search against an admin endpoint and prints the matching items.

The target is a configured field name, a preset (see "searchfield presets")
or an endpoint URL, absolute or relative to api.base_url. Queries shorter
than the field's minimum length are rejected without a request.`,
	Example: `  searchfield lookup account acme
  searchfield lookup /api/admin/servers 10.0 --size 5 --json`,
	Args: cobra.ExactArgs(2),
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().IntVarP(&lookupSize, "size", "n", 0, "page-size hint (default from config)")
	lookupCmd.Flags().BoolVar(&lookupJSON, "json", false, "output items as JSON")
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	svc, err := lookupService()
	if err != nil {
		return err
	}

	items, err := svc.Lookup(cmd.Context(), driving.LookupRequest{
		Target: args[0],
		Query:  args[1],
		Size:   lookupSize,
	})
	if err != nil {
		return fmt.Errorf("lookup failed: %w", err)
	}

	if lookupJSON {
		return outputItemsJSON(cmd, items)
	}
	return outputItemsTable(cmd, items)
}

func outputItemsJSON(cmd *cobra.Command, items []domain.SearchItem) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal items: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputItemsTable(cmd *cobra.Command, items []domain.SearchItem) error {
	if len(items) == 0 {
		cmd.Println(domain.DefaultNoResultsText)
		return nil
	}

	for i, item := range items {
		cmd.Printf("  [%d] %s (id %s)\n", i+1, item.Name, item.ID)
	}
	return nil
}
