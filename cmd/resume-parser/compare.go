// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/resume-parser/internal/output"
	"github.com/pdiddy/resume-parser/internal/parser"
)

var compareCmd = &cobra.Command{
	Use:   "compare [file]",
	Short: "Compare the rule-based result with a saved result",
	Long: `Compare parses a resume with the rule-based strategy and compares the
result with a previously saved result (JSON or YAML, for example from a
semantic parser) given by --against. The comparison is printed in the
output format; a short summary goes to stderr.`,
	Args: cobra.ExactArgs(1),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().String("against", "", "saved parse result (.json, .yaml or .yml)")
	_ = compareCmd.MarkFlagRequired("against")

	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	against, _ := cmd.Flags().GetString("against")

	format, err := output.ParseFormat(string(cfg.Output.Format))
	if err != nil {
		return err
	}
	reg, _, err := newRegistry()
	if err != nil {
		return err
	}
	rule, err := reg.Get(parser.KeyRule)
	if err != nil {
		return err
	}

	other, err := output.ReadResult(against)
	if err != nil {
		return err
	}
	text, err := loadText(args[0])
	if err != nil {
		return err
	}

	c := parser.Compare(rule.Parse(text), other)
	fmt.Fprint(os.Stderr, parser.ComparisonSummary(c))
	return output.Encode(os.Stdout, c, format, true)
}
