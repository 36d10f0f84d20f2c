package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// PrintError prints an error message without exiting, allowing for
// recovery. By default the clean, user-friendly message is shown; with
// --verbose the underlying technical error is printed instead.
func PrintError(userMsg string, technicalErr error) {
	if viper.GetBool("verbose") && technicalErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", technicalErr)
	} else {
		fmt.Fprintln(os.Stderr, userMsg)
	}
}

// HandleFatalError handles unrecoverable errors that should terminate the
// application.
func HandleFatalError(userMsg string, technicalErr error) {
	PrintError(userMsg, technicalErr)
	os.Exit(1)
}
