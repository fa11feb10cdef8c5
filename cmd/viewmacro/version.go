package main

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"viewmacro/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().Bool("json", false, "print version information as JSON")
	versionCmd.Flags().Bool("hash", false, "print only the git commit hash")
	versionCmd.Flags().Bool("date", false, "print only the build date")
}

type versionJSON struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

func runVersion(cmd *cobra.Command, args []string) error {
	if hashOnly, _ := cmd.Flags().GetBool("hash"); hashOnly {
		fmt.Fprintln(os.Stdout, version.GitCommit)
		return nil
	}
	if dateOnly, _ := cmd.Flags().GetBool("date"); dateOnly {
		fmt.Fprintln(os.Stdout, version.BuildDate)
		return nil
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(versionJSON{
			Version:   version.Version,
			GitCommit: version.GitCommit,
			BuildDate: version.BuildDate,
			GoVersion: runtime.Version(),
			Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		})
	}

	fmt.Fprintf(os.Stdout, "viewmacro %s\n", version.Version)
	if version.GitCommit != "" {
		fmt.Fprintf(os.Stdout, "  commit: %s\n", version.GitCommit)
	}
	if version.BuildDate != "" {
		fmt.Fprintf(os.Stdout, "  built:  %s\n", version.BuildDate)
	}
	fmt.Fprintf(os.Stdout, "  %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	return nil
}
