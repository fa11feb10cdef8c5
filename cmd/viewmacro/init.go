package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"viewmacro/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Create a viewmacro.toml and an example source file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInit,
}

const manifestTemplate = `[package]
name = %q

[expand]
root = "."

[diagnostics]
max = 100
no_warnings = false
warnings_as_errors = false
`

const exampleSource = `@ViewAction(for: Feature.state)
struct FeatureView {
    var store: Store

    func body() {
        send(.onAppear)
    }
}
`

func runInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	manifestPath := filepath.Join(dir, project.ManifestName)
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("%s already exists", manifestPath)
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	name := filepath.Base(absDir)

	manifest := fmt.Sprintf(manifestTemplate, name)
	if err := os.WriteFile(manifestPath, []byte(manifest), 0o644); err != nil {
		return err
	}

	examplePath := filepath.Join(dir, "example.vx")
	if _, err := os.Stat(examplePath); os.IsNotExist(err) {
		if err := os.WriteFile(examplePath, []byte(exampleSource), 0o644); err != nil {
			return err
		}
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if !quiet {
		fmt.Fprintf(os.Stderr, "initialized project %q in %s\n", name, dir)
	}
	return nil
}
