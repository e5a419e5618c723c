// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/resume-parser/internal/batch"
	"github.com/pdiddy/resume-parser/internal/logger"
	"github.com/pdiddy/resume-parser/internal/output"
	"github.com/pdiddy/resume-parser/internal/parser"
	"github.com/pdiddy/resume-parser/pkg/types"
)

// Method flag values.
const (
	methodRule     = "rule"
	methodSemantic = "semantic"
	methodBoth     = "both"
)

var parseCmd = &cobra.Command{
	Use:   "parse [files...]",
	Short: "Parse resume files into structured records",
	Long: `Parse extracts text from each file (PDF, DOCX or TXT), runs it through the
selected strategy and prints the structured result as JSON or YAML.

With several files, the files are parsed concurrently and --output names a
directory that receives one result file per input. With --method both, the
rule-based result is compared with the semantic one when that strategy is
available.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("method", "", "parsing method: rule, semantic, or both")
	parseCmd.Flags().StringP("output", "o", "", "output file (one input) or directory (several inputs)")
	parseCmd.Flags().String("format", "", "output format: json or yaml")
	parseCmd.Flags().Bool("pretty", false, "indent JSON output")
	parseCmd.Flags().BoolP("verbose", "v", false, "print a parsing summary to stderr")
	parseCmd.Flags().Int("workers", 0, "files parsed concurrently")

	cobra.CheckErr(viper.BindPFlag("parser.method", parseCmd.Flags().Lookup("method")))
	cobra.CheckErr(viper.BindPFlag("output.format", parseCmd.Flags().Lookup("format")))
	cobra.CheckErr(viper.BindPFlag("output.pretty", parseCmd.Flags().Lookup("pretty")))
	cobra.CheckErr(viper.BindPFlag("batch.workers", parseCmd.Flags().Lookup("workers")))

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	outPath, _ := cmd.Flags().GetString("output")
	verbose, _ := cmd.Flags().GetBool("verbose")

	format, err := output.ParseFormat(string(cfg.Output.Format))
	if err != nil {
		return err
	}
	reg, _, err := newRegistry()
	if err != nil {
		return err
	}

	method := strings.ToLower(cfg.Parser.Method)
	var key string
	switch method {
	case methodRule, methodBoth, "":
		key = parser.KeyRule
	case methodSemantic:
		key = parser.KeySemantic
	default:
		return fmt.Errorf("invalid parsing method %q: use rule, semantic, or both", cfg.Parser.Method)
	}
	strategy, err := reg.Get(key)
	if err != nil {
		return semanticError(err)
	}

	var semantic parser.Strategy
	if method == methodBoth {
		if semantic, err = reg.Get(parser.KeySemantic); err != nil {
			logger.Warn().Err(err).Msg("semantic strategy unavailable, reporting rule-based results only")
		}
	}

	single := len(args) == 1
	if outPath != "" && !single {
		if err := checkResultPaths(outPath, args, format); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := &batch.Runner{
		Strategy:       strategy,
		Workers:        cfg.Batch.Workers,
		MaxInputLength: cfg.Parser.MaxInputLength,
		Logger:         logger.Logger,
	}
	res := runner.Run(ctx, args, os.Stderr)

	for _, it := range res.Items {
		if it.Err != nil {
			continue
		}
		var v any = it.Result
		if semantic != nil {
			text, err := runner.LoadText(it.Path)
			if err != nil {
				return err
			}
			other := semantic.Parse(text)
			cmp := parser.Compare(it.Result, other)
			v = bothResult{RuleBased: it.Result, Semantic: other, Comparison: cmp}
			if verbose {
				fmt.Fprint(os.Stderr, parser.ComparisonSummary(cmp))
			}
		}
		if verbose {
			fmt.Fprint(os.Stderr, parser.Summary(it.Result))
		}
		if err := writeResult(os.Stdout, outPath, single, it.Path, v, format); err != nil {
			return err
		}
	}

	if res.HasFailures() {
		return fmt.Errorf("%d of %d file(s) failed", res.Failed, res.Total())
	}
	return nil
}

// bothResult is the output of --method both.
type bothResult struct {
	RuleBased  types.ParseResult `json:"rule_based" yaml:"rule_based"`
	Semantic   types.ParseResult `json:"semantic" yaml:"semantic"`
	Comparison parser.Comparison `json:"comparison" yaml:"comparison"`
}

// writeResult encodes v to stdout, to outPath for a single input, or to a
// file named after the input inside the outPath directory.
func writeResult(stdout io.Writer, outPath string, single bool, input string, v any, format types.OutputFormat) error {
	pretty := cfg.Output.Pretty
	switch {
	case outPath == "":
		return output.Encode(stdout, v, format, pretty)
	case single:
		if output.FormatFromPath(outPath) == types.OutputYAML {
			format = types.OutputYAML
		}
		return output.WriteFile(outPath, v, format, pretty)
	default:
		return output.WriteFile(resultPath(outPath, input, format), v, format, pretty)
	}
}

// resultPath names the result file for input inside dir.
func resultPath(dir, input string, format types.OutputFormat) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(dir, base+"."+string(format))
}

// checkResultPaths rejects inputs whose results would land in the same file,
// such as a/cv.pdf and b/cv.docx.
func checkResultPaths(dir string, inputs []string, format types.OutputFormat) error {
	seen := make(map[string]string, len(inputs))
	for _, in := range inputs {
		p := resultPath(dir, in, format)
		if prev, ok := seen[p]; ok {
			return fmt.Errorf("inputs %s and %s would both be written to %s", prev, in, p)
		}
		seen[p] = in
	}
	return nil
}

// semanticError explains an unavailable strategy the way the HTTP API does.
func semanticError(err error) error {
	if errors.Is(err, parser.ErrMethodUnavailable) {
		return fmt.Errorf("%w: semantic parsing requires an embedding model that is not configured; use --method rule", err)
	}
	return err
}

// loadText reads one document and enforces the configured input limit.
func loadText(path string) (string, error) {
	r := &batch.Runner{MaxInputLength: cfg.Parser.MaxInputLength}
	return r.LoadText(path)
}
