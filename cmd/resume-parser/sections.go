// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/pdiddy/resume-parser/internal/loader"
	"github.com/pdiddy/resume-parser/internal/output"
	"github.com/pdiddy/resume-parser/internal/segment"
	"github.com/pdiddy/resume-parser/pkg/types"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections [file]",
	Short: "Show how a resume is split into sections",
	Long: `Sections loads a resume and prints its file details, the preamble and every
detected section with its label, header line and body line count. Use --lines to include the
body text, --json for machine-readable output, or --dump for a Go value dump.`,
	Args: cobra.ExactArgs(1),
	RunE: runSections,
}

func init() {
	sectionsCmd.Flags().Bool("lines", false, "print section body lines")
	sectionsCmd.Flags().Bool("json", false, "print the segmentation as JSON")
	sectionsCmd.Flags().Bool("dump", false, "print a go-spew dump of the segmentation")

	rootCmd.AddCommand(sectionsCmd)
}

func runSections(cmd *cobra.Command, args []string) error {
	showLines, _ := cmd.Flags().GetBool("lines")
	asJSON, _ := cmd.Flags().GetBool("json")
	dump, _ := cmd.Flags().GetBool("dump")

	_, tax, err := newRegistry()
	if err != nil {
		return err
	}
	info, err := loader.Info(args[0])
	if err != nil {
		return err
	}
	text, err := loadText(args[0])
	if err != nil {
		return err
	}
	res := segment.New(tax).Segment(text)

	switch {
	case dump:
		spew.Fdump(os.Stdout, res)
		return nil
	case asJSON:
		return output.Encode(os.Stdout, res, "json", true)
	}

	writeFileInfo(os.Stdout, info)
	fmt.Printf("preamble: %d line(s)\n", len(res.Preamble))
	if showLines {
		printIndented(res.Preamble)
	}
	for i, s := range res.Sections {
		fmt.Printf("%d. %-15s %q (%d line(s))\n", i+1, s.Label, s.Header, len(s.Lines))
		if showLines {
			printIndented(s.Lines)
		}
	}
	fmt.Printf("sections detected: %d\n", len(res.Sections))
	return nil
}

func writeFileInfo(w io.Writer, info types.FileInfo) {
	fmt.Fprintf(w, "file: %s (%s, %.2f KB)\n", info.Filename, info.Extension, info.SizeKB)
}

func printIndented(lines []string) {
	for _, l := range lines {
		fmt.Printf("    %s\n", l)
	}
}
