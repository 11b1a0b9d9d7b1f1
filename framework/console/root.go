// Package console implements the slarb command line.
package console

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/km-arc/slarb/framework/app"
)

// NewRootCmd builds the command tree. Each call returns fresh commands so
// tests can run them in isolation.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "slarb",
		Short: "Standardized JSON API responses",
		Long: `slarb builds {"status", "message", "data"} JSON responses and checks that
an HTTP status code agrees with a success or error status.`,
		Version:       app.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(newServeCmd(), newCheckCmd(), newBuildCmd(), newCodesCmd())
	return root
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
