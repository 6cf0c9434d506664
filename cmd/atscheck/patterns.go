package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"ats-checker/internal/patterns"
)

func newPatternsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "Inspect and validate pattern libraries",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "validate [FILE]",
			Short: "Validate a pattern library (default: the embedded one)",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				path := ""
				if len(args) == 1 {
					path = args[0]
				}
				return runPatternsValidate(cmd.OutOrStdout(), path)
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Print the embedded pattern library as a starting point for a custom file",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				_, err := cmd.OutOrStdout().Write(patterns.Default())
				return err
			},
		},
	)
	return cmd
}

func runPatternsValidate(out io.Writer, path string) error {
	data := patterns.Default()
	name := "embedded library"
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		name = path
	}

	v := patterns.Check(data)
	for _, e := range v.Errors {
		fmt.Fprintf(out, "error: %s\n", e)
	}
	for _, w := range v.Warnings {
		fmt.Fprintf(out, "warning: %s\n", w)
	}
	if !v.OK() {
		return fmt.Errorf("%s: %d error(s)", name, len(v.Errors))
	}
	fmt.Fprintf(out, "%s: OK (%d warning(s))\n", name, len(v.Warnings))
	return nil
}
