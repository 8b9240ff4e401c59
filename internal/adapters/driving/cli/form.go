package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/searchfield/internal/adapters/driving/tui"
	"github.com/custodia-labs/searchfield/internal/logger"
)

var errNotTerminal = errors.New("form needs an interactive terminal")

// isTerminal reports whether stdout is a terminal. Replaced in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Open the configured search fields in the terminal",
	Long: `Opens an interactive form with one search field per configured field.

Controls:
  (type)        Search after a short pause
  ↑/↓           Move the highlight
  Enter         Select the highlighted item
  Esc           Close the dropdown
  Tab/Shift+Tab Next / previous field
  Ctrl+R        Search now
  Ctrl+U        Clear the field
  Ctrl+S        Validate every field
  F1            Toggle help
  Ctrl+C        Quit`,
	RunE: runForm,
}

func init() {
	rootCmd.AddCommand(formCmd)
}

func runForm(cmd *cobra.Command, _ []string) (err error) {
	if !isTerminal() {
		return errNotTerminal
	}
	if services == nil || services.Form == nil {
		return errNotConfigured
	}

	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in form: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("form panicked: %v", r)
		}
	}()

	ports, release, err := services.Form(cmd.Context())
	if err != nil {
		return fmt.Errorf("building form: %w", err)
	}
	defer release()

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create form: %w", err)
	}
	app.WithContext(cmd.Context())

	// The alternate screen owns the terminal; keep debug output out of it.
	if !logger.IsVerbose() {
		logger.SetOutput(io.Discard)
		defer logger.SetOutput(cmd.ErrOrStderr())
	}

	if err := app.Run(); err != nil {
		return fmt.Errorf("form error: %w", err)
	}
	return nil
}
