// Package main provides atscheck, a command-line résumé ATS checker.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "atscheck",
		Short: "Résumé ATS compatibility checker",
		Long:  "atscheck extracts candidate details from résumés and scores how well they will parse in applicant tracking systems.",

		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newAnalyzeCmd(), newPatternsCmd(), newSubmitCmd())
	return root
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
