// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/resume-parser/internal/segment"
	"github.com/pdiddy/resume-parser/internal/taxonomy"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [lines...]",
	Short: "Classify candidate section header lines",
	Long: `Classify scores each argument against the section synonyms and reports
whether it clears --threshold, the best label, its confidence, the first label
with any overlapping synonym, and whether the segmenter would open a section
on it. With --synonyms, the synonym table of every label is printed instead.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if list, _ := cmd.Flags().GetBool("synonyms"); list {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.MinimumNArgs(1)(cmd, args)
	},
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().Float64("threshold", taxonomy.DefaultHeaderThreshold, "minimum similarity score")
	classifyCmd.Flags().Bool("synonyms", false, "list the header synonyms of each section label")

	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	threshold, _ := cmd.Flags().GetFloat64("threshold")
	list, _ := cmd.Flags().GetBool("synonyms")

	_, tax, err := newRegistry()
	if err != nil {
		return err
	}
	if list {
		writeSynonyms(os.Stdout, tax)
		return nil
	}

	seg := segment.New(tax)
	for _, line := range args {
		writeClassification(os.Stdout, tax, seg, line, threshold)
	}
	return nil
}

// writeClassification prints one report line for a candidate header.
func writeClassification(w io.Writer, tax *taxonomy.Taxonomy, seg *segment.Segmenter, line string, threshold float64) {
	ok, label, conf := tax.ClassifyHeader(line, threshold)
	opens, _ := seg.IsHeader(line)
	fmt.Fprintf(w, "%-35q header=%-5t label=%-15s confidence=%.2f field=%-15s opens_section=%t\n",
		line, ok, label, conf, tax.NormalizeFieldName(line), opens)
}

func writeSynonyms(w io.Writer, tax *taxonomy.Taxonomy) {
	for _, label := range tax.Labels() {
		fmt.Fprintf(w, "%-15s %s\n", label, strings.Join(tax.SectionKeywords(label), ", "))
	}
}
