package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"ats-checker/internal/analysis"
	"ats-checker/internal/cv"
	"ats-checker/internal/patterns"
)

type analyzeOptions struct {
	jobs         int
	pretty       bool
	format       string
	patternsFile string
	timeout      time.Duration
	verbose      bool
}

type fileResult struct {
	File   string           `json:"file"`
	Report *analysis.Report `json:"report"`
}

func newAnalyzeCmd() *cobra.Command {
	opts := &analyzeOptions{}
	cmd := &cobra.Command{
		Use:   "analyze FILE...",
		Short: "Analyze one or more résumés",
		Long:  "Decodes each PDF, DOCX or TXT résumé, extracts candidate details and prints the ATS report.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd.Context(), cmd.OutOrStdout(), opts, args)
		},
	}

	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", runtime.NumCPU(), "Maximum number of files analyzed in parallel")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "Indent JSON output")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "json", "Output format: json or text")
	cmd.Flags().StringVar(&opts.patternsFile, "patterns", os.Getenv("PATTERNS_FILE"), "Pattern library YAML file (default: embedded)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "Per-file decode timeout")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Show the score breakdown in text output")
	return cmd
}

func loadLibrary(path string) (*patterns.Library, error) {
	if path == "" {
		return patterns.Load()
	}
	return patterns.LoadFile(path)
}

func runAnalyze(ctx context.Context, out io.Writer, opts *analyzeOptions, files []string) error {
	if opts.format != "json" && opts.format != "text" {
		return fmt.Errorf("unknown format %q (want json or text)", opts.format)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	lib, err := loadLibrary(opts.patternsFile)
	if err != nil {
		return fmt.Errorf("failed to load pattern library: %w", err)
	}
	analyzer := analysis.NewAnalyzer(lib)
	parser := cv.NewCVParser()

	results := make([]fileResult, len(files))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, opts.jobs))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}

			decodeCtx, cancel := context.WithTimeout(gCtx, opts.timeout)
			defer cancel()
			text, err := parser.Parse(decodeCtx, filepath.Base(path), data)
			if err != nil {
				return fmt.Errorf("failed to decode %s: %w", path, err)
			}

			results[i] = fileResult{File: path, Report: analyzer.Analyze(text)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if opts.format == "text" {
		return writeText(out, results, opts.verbose)
	}
	enc := json.NewEncoder(out)
	if opts.pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(results)
}

func orNone(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}

func writeText(out io.Writer, results []fileResult, verbose bool) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for i, res := range results {
		r := res.Report
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "File:\t%s\n", res.File)
		fmt.Fprintf(tw, "Name:\t%s\n", orNone(r.Name))
		fmt.Fprintf(tw, "Profession:\t%s\n", orNone(r.Profession))
		fmt.Fprintf(tw, "Experience level:\t%s\n", r.ExperienceLevel)
		fmt.Fprintf(tw, "Technical skills:\t%s\n", joinOrNone(r.Skills.Technical))
		fmt.Fprintf(tw, "Soft skills:\t%s\n", joinOrNone(r.Skills.Soft))
		fmt.Fprintf(tw, "Emails:\t%s\n", joinOrNone(r.ContactInfo.Emails))
		fmt.Fprintf(tw, "ATS score:\t%d/100\n", r.ATSScore)
		fmt.Fprintf(tw, "ATS friendly:\t%s\n", yesNo(r.IsATSFriendly))
		if len(r.Issues) > 0 {
			fmt.Fprintln(tw, "Issues:\t")
			for _, issue := range r.Issues {
				fmt.Fprintf(tw, "  - %s\t\n", issue)
			}
		}
		if verbose {
			fmt.Fprintln(tw, "Breakdown:\t")
			for _, adj := range r.Breakdown {
				fmt.Fprintf(tw, "  %s\t%+.1f\n", adj.Rule, adj.Delta)
			}
		}
	}
	return tw.Flush()
}
