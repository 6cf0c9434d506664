package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	atshttp "ats-checker/pkg/http"
)

func newSubmitCmd() *cobra.Command {
	var (
		server  string
		timeout time.Duration
		pretty  bool
	)
	cmd := &cobra.Command{
		Use:   "submit FILE",
		Short: "Send a PDF résumé to a running ATS checker server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer f.Close()

			client := atshttp.NewClient(server, timeout)
			report, err := client.Analyze(cmd.Context(), filepath.Base(args[0]), f)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			if pretty {
				enc.SetIndent("", "  ")
			}
			return enc.Encode(report)
		},
	}

	cmd.Flags().StringVarP(&server, "server", "s", "http://localhost:8080", "Base URL of the server")
	cmd.Flags().DurationVar(&timeout, "timeout", time.Minute, "Request timeout")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent JSON output")
	return cmd
}
