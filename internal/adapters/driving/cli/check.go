package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/searchfield/internal/core/ports/driving"
)

// errInvalidValue makes the command exit non-zero for a failed check.
var errInvalidValue = errors.New("value is invalid")

var checkJSON bool

var checkCmd = &cobra.Command{
	Use:   "check <field> <text>",
	Short: "Validate a value against a configured field's rules",
	Long: `Runs the validation rules of a configured field against text.

When the field has an endpoint, the text is searched and an item whose
display text equals it counts as the selection, so required_selection
passes only for an exact match.`,
	Args: cobra.ExactArgs(2),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "output the result as JSON")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	svc, err := lookupService()
	if err != nil {
		return err
	}

	result, err := svc.Check(cmd.Context(), args[0], args[1])
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	if checkJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		cmd.Println(string(data))
	} else {
		printCheck(cmd, result)
	}

	if !result.Valid {
		return errInvalidValue
	}
	return nil
}

func printCheck(cmd *cobra.Command, result driving.CheckResult) {
	if result.Valid {
		cmd.Printf("%s: valid\n", result.Field)
	} else {
		cmd.Printf("%s: %s\n", result.Field, result.Message)
		for _, msg := range result.Errors[min(1, len(result.Errors)):] {
			cmd.Printf("  also: %s\n", msg)
		}
	}
	if result.Selection != nil {
		cmd.Printf("  selection: %s (id %s)\n", result.Selection.Name, result.Selection.ID)
	}
}
