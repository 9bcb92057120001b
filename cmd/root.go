package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "claimsight",
	Short: "Insurance claims assistant",
	Long: `claimsight answers natural-language questions about an insurance claims
database and renders claim decisions from uploaded policy documents.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
