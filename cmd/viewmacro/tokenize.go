package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"viewmacro/internal/diagfmt"
	"viewmacro/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file.vx>",
	Short: "Tokenize a source file and print the token stream",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "token output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	result, err := driver.Tokenize(args[0], maxDiagnostics)
	if err != nil {
		return err
	}

	if result.Bag.Len() > 0 {
		result.Bag.Sort()
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color: useColor(cmd, os.Stderr),
		})
	}

	if format == "json" {
		if err := diagfmt.FormatTokensJSON(os.Stdout, result.Tokens); err != nil {
			return err
		}
	} else {
		if err := diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.FileSet); err != nil {
			return err
		}
	}

	if result.Bag.HasErrors() {
		return fmt.Errorf("tokenization failed")
	}
	return nil
}
