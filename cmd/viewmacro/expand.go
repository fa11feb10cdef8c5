package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"viewmacro/internal/diag"
	"viewmacro/internal/diagfmt"
	"viewmacro/internal/driver"
	"viewmacro/internal/observ"
	"viewmacro/internal/project"
	"viewmacro/internal/source"
)

const noManifestMessage = "no viewmacro.toml found\nplease specify the target explicitly, e.g.:\n  viewmacro expand path/to/sources"

var expandCmd = &cobra.Command{
	Use:   "expand [flags] [file.vx|dir]",
	Short: "Expand @ViewAction attributes",
	Long: `Expand parses .vx sources, validates every @ViewAction declaration, and
prints the generated declarations. Without an argument the target comes from
the project manifest (viewmacro.toml).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExpand,
}

func init() {
	expandCmd.Flags().String("format", "pretty", "diagnostics format (pretty|json|short)")
	expandCmd.Flags().Int("jobs", 0, "parallel workers for directory runs (0 = all CPUs)")
	expandCmd.Flags().String("ui", "auto", "interactive progress for directory runs (auto|on|off)")
	expandCmd.Flags().Bool("write", false, "write generated declarations to <name>.expanded.vx files")
	expandCmd.Flags().Bool("cache", false, "reuse cached results for unchanged files")
	expandCmd.Flags().Bool("clear-cache", false, "drop all cached results before running")
	expandCmd.Flags().Bool("timings", false, "print per-phase wall-clock timings")
}

// expandRun is everything one expand invocation produced, across files.
type expandRun struct {
	FileSet *source.FileSet
	Results []*driver.FileResult
	Merged  *diag.Bag
}

func runExpand(cmd *cobra.Command, args []string) error {
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

	timer := observ.NewTimer()
	stopExpand := timer.Start("expand")
	run, err := executeExpand(cmd, target, maxDiagnostics)
	if err != nil {
		return err
	}
	stopExpand(len(run.Results))

	if manifest != nil && manifest.Config.Diagnostics.NoWarnings {
		run.Merged = filterBag(run.Merged, diag.SevError)
	}
	run.Merged.Sort()

	stopOutput := timer.Start("output")
	if err := emitDiagnostics(cmd, format, run); err != nil {
		return err
	}

	write, _ := cmd.Flags().GetBool("write")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if err := emitGenerated(cmd, run, write, quiet, format); err != nil {
		return err
	}
	stopOutput(0)

	if showTimings, _ := cmd.Flags().GetBool("timings"); showTimings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}

	failOnWarnings := manifest != nil && manifest.Config.Diagnostics.WarningsAsErrors
	if run.Merged.HasErrors() || (failOnWarnings && run.Merged.HasWarnings()) {
		return fmt.Errorf("expansion failed")
	}
	return nil
}

// resolveTarget picks the file or directory to expand: the explicit argument
// when given, the manifest's source root otherwise.
func resolveTarget(args []string) (string, *project.Manifest, error) {
	manifest, found, err := project.Load(".")
	if err != nil {
		return "", nil, err
	}

	if len(args) == 1 {
		if !found {
			manifest = nil
		}
		return args[0], manifest, nil
	}
	if !found {
		return "", nil, fmt.Errorf("%s", noManifestMessage)
	}
	return manifest.SourceRoot(), manifest, nil
}

func executeExpand(cmd *cobra.Command, target string, maxDiagnostics int) (*expandRun, error) {
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

	useCache, _ := cmd.Flags().GetBool("cache")
	clearCache, _ := cmd.Flags().GetBool("clear-cache")
	if useCache || clearCache {
		cache, err := driver.OpenDiskCache("viewmacro")
		if err != nil {
			return nil, fmt.Errorf("failed to open cache: %w", err)
		}
		if clearCache {
			if err := cache.DropAll(); err != nil {
				return nil, fmt.Errorf("failed to clear cache: %w", err)
			}
		}
		if useCache {
			opts.Cache = cache
		}
	}

	uiFlag, _ := cmd.Flags().GetString("ui")
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return nil, err
	}

	var fs *source.FileSet
	var results []*driver.FileResult
	if shouldUseTUI(mode) {
		fs, results, err = runExpandWithUI(context.Background(), target, opts)
	} else {
		fs, results, err = driver.ExpandDir(context.Background(), target, opts)
	}
	if err != nil {
		return nil, err
	}
	return mergeRun(fs, results, maxDiagnostics), nil
}

func mergeRun(fs *source.FileSet, results []*driver.FileResult, maxDiagnostics int) *expandRun {
	merged := diag.NewBag(maxDiagnostics)
	for _, r := range results {
		if r != nil && r.Bag != nil {
			merged.Merge(r.Bag)
		}
	}
	return &expandRun{FileSet: fs, Results: results, Merged: merged}
}

func filterBag(bag *diag.Bag, min diag.Severity) *diag.Bag {
	kept := bag.FilterMinSeverity(min)
	out := diag.NewBag(len(kept))
	for _, d := range kept {
		out.Add(d)
	}
	return out
}

func emitDiagnostics(cmd *cobra.Command, format string, run *expandRun) error {
	if run.Merged.Len() == 0 {
		return nil
	}
	switch format {
	case "pretty":
		diagfmt.Pretty(os.Stderr, run.Merged, run.FileSet, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			ShowNotes: true,
		})
	case "json":
		return diagfmt.JSON(os.Stdout, run.Merged, run.FileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			IncludeNotes:     true,
		})
	case "short":
		out := diag.FormatShortDiagnostics(run.Merged.Items(), run.FileSet, false)
		if out != "" {
			fmt.Fprintln(os.Stdout, out)
		}
	}
	return nil
}

type expansionJSON struct {
	Path     string `json:"path"`
	DeclName string `json:"decl,omitempty"`
	TypeName string `json:"type"`
	Code     string `json:"code"`
}

func emitGenerated(cmd *cobra.Command, run *expandRun, write, quiet bool, format string) error {
	generated := 0
	var listing []expansionJSON

	for _, result := range run.Results {
		if result == nil {
			continue
		}
		generated += len(result.Generated)

		if write {
			outPath, err := driver.WriteExpansion(result)
			if err != nil {
				return err
			}
			if outPath != "" && !quiet {
				fmt.Fprintf(os.Stderr, "wrote %s\n", outPath)
			}
			continue
		}

		switch format {
		case "json":
			for _, g := range result.Generated {
				listing = append(listing, expansionJSON{
					Path:     result.Path,
					DeclName: g.DeclName,
					TypeName: g.Method.TypeName,
					Code:     g.Method.Render(),
				})
			}
		default:
			if text := driver.RenderExpansion(result); text != "" {
				fmt.Fprint(os.Stdout, text)
			}
		}
	}

	if format == "json" && !write {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(struct {
			Generated []expansionJSON `json:"generated"`
		}{listing}); err != nil {
			return err
		}
	}

	if !quiet && format != "json" {
		fmt.Fprintf(os.Stderr, "%d declaration(s) generated across %d file(s)\n",
			generated, len(run.Results))
	}
	return nil
}
