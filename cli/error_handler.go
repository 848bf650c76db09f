package cli

import (
	"fmt"
	"os"

	"github.com/grovetools/gmux/errors"
)

// ErrorHandler provides user-friendly error messages.
type ErrorHandler struct {
	Verbose bool
}

// NewErrorHandler creates a new error handler.
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
	}
}

// Handle provides user-friendly error messages based on error type.
func (h *ErrorHandler) Handle(err error) error {
	switch errors.GetCode(err) {
	case errors.ErrCodeEntryNotFound:
		if gmuxErr, ok := err.(*errors.GmuxError); ok {
			fmt.Fprintf(os.Stderr, "❌ No entry matches '%v'\n", gmuxErr.Details["target"])
			fmt.Fprintf(os.Stderr, "Run 'gmux list' to see registered directories.\n")
		}
		return err

	case errors.ErrCodeEditorUnset:
		fmt.Fprintf(os.Stderr, "❌ No editor configured.\n")
		fmt.Fprintf(os.Stderr, "Set one per entry, or export EDITOR or GMUX_EDITOR.\n")
		return err

	case errors.ErrCodeSpawn:
		if gmuxErr, ok := err.(*errors.GmuxError); ok {
			fmt.Fprintf(os.Stderr, "❌ Failed to start '%v': %s\n",
				gmuxErr.Details["program"], gmuxErr.Message)
		}
		return err

	case errors.ErrCodePersistence:
		fmt.Fprintf(os.Stderr, "❌ Could not save the configuration: %v\n", err)
		return err

	default:
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)

		if h.Verbose {
			if gmuxErr, ok := err.(*errors.GmuxError); ok {
				fmt.Fprintf(os.Stderr, "\nError details:\n%s\n", gmuxErr.ToJSON())
			}
		}
		return err
	}
}
