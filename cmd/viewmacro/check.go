package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"viewmacro/internal/diag"
	"viewmacro/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [file.vx|dir]",
	Short: "Validate @ViewAction usage without generating code",
	Long: `Check runs the same parsing and macro validation as expand but only
reports diagnostics. It exits nonzero when any error is found.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "diagnostics format (pretty|json|short)")
	checkCmd.Flags().Int("jobs", 0, "parallel workers for directory runs (0 = all CPUs)")
	checkCmd.Flags().Bool("cache", false, "reuse cached results for unchanged files")
}

func runCheck(cmd *cobra.Command, args []string) error {
	target, manifest, err := resolveTarget(args)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	if format != "pretty" && format != "json" && format != "short" {
		return fmt.Errorf("unknown format: %s", format)
	}

	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if manifest != nil && manifest.Config.Diagnostics.Max > 0 && !cmd.Root().PersistentFlags().Changed("max-diagnostics") {
		maxDiagnostics = manifest.Config.Diagnostics.Max
	}

	run, err := executeCheck(cmd, target, maxDiagnostics)
	if err != nil {
		return err
	}

	if manifest != nil && manifest.Config.Diagnostics.NoWarnings {
		run.Merged = filterBag(run.Merged, diag.SevError)
	}
	run.Merged.Sort()

	if err := emitDiagnostics(cmd, format, run); err != nil {
		return err
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if !quiet && format != "json" && run.Merged.Len() == 0 {
		fmt.Fprintln(os.Stderr, "no problems found")
	}

	failOnWarnings := manifest != nil && manifest.Config.Diagnostics.WarningsAsErrors
	if run.Merged.HasErrors() || (failOnWarnings && run.Merged.HasWarnings()) {
		return fmt.Errorf("check failed")
	}
	return nil
}

// executeCheck runs the expansion pipeline without the progress UI; check
// only needs the diagnostics.
func executeCheck(cmd *cobra.Command, target string, maxDiagnostics int) (*expandRun, error) {
	info, err := os.Stat(target)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		fs, result, err := driver.ExpandFile(target, maxDiagnostics)
		if err != nil {
			return nil, err
		}
		return mergeRun(fs, []*driver.FileResult{result}, maxDiagnostics), nil
	}

	jobs, _ := cmd.Flags().GetInt("jobs")
	opts := driver.Options{
		MaxDiagnostics: maxDiagnostics,
		Jobs:           jobs,
	}
	if useCache, _ := cmd.Flags().GetBool("cache"); useCache {
		cache, err := driver.OpenDiskCache("viewmacro")
		if err != nil {
			return nil, fmt.Errorf("failed to open cache: %w", err)
		}
		opts.Cache = cache
	}

	fs, results, err := driver.ExpandDir(context.Background(), target, opts)
	if err != nil {
		return nil, err
	}
	return mergeRun(fs, results, maxDiagnostics), nil
}
