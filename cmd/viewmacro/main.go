package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"viewmacro/internal/prof"
	"viewmacro/internal/version"
)

var rootCmd = &cobra.Command{
	Use:           "viewmacro",
	Short:         "ViewAction macro expander",
	Long:          `viewmacro expands @ViewAction attributes in .vx sources and reports macro diagnostics`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

var profSession *prof.Session

func startProfiling(cmd *cobra.Command, args []string) error {
	cpuPath, _ := cmd.Root().PersistentFlags().GetString("cpuprofile")
	memPath, _ := cmd.Root().PersistentFlags().GetString("memprofile")
	if cpuPath == "" && memPath == "" {
		return nil
	}
	session, err := prof.Start(prof.Options{CPUPath: cpuPath, MemPath: memPath})
	if err != nil {
		return err
	}
	profSession = session
	return nil
}

func stopProfiling(cmd *cobra.Command, args []string) error {
	if profSession == nil {
		return nil
	}
	err := profSession.Stop()
	profSession = nil
	return err
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(expandCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	rootCmd.PersistentFlags().String("cpuprofile", "", "write a CPU profile to the given file")
	rootCmd.PersistentFlags().String("memprofile", "", "write a heap profile to the given file")
	_ = rootCmd.PersistentFlags().MarkHidden("cpuprofile")
	_ = rootCmd.PersistentFlags().MarkHidden("memprofile")

	rootCmd.PersistentPreRunE = startProfiling
	rootCmd.PersistentPostRunE = stopProfiling

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the --color flag against the terminal state of f.
func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}
