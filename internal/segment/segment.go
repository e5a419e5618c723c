// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package segment splits normalized resume text into labeled sections by
// recognizing header lines.
package segment

import (
	"strings"

	"github.com/pdiddy/resume-parser/internal/taxonomy"
	"github.com/pdiddy/resume-parser/pkg/types"
)

// HeaderConfidence is the threshold the segmenter classifies lines with. It
// is stricter than the classifier's default, so partial matches scoring
// below 0.7 stay body lines.
const HeaderConfidence = 0.7

// Section is one contiguous run of lines under a recognized header.
type Section struct {
	Label  types.SectionLabel `json:"label" yaml:"label"`
	Header string             `json:"header" yaml:"header"`
	Lines  []string           `json:"lines" yaml:"lines"`
}

// Result is the segmentation of one text. Preamble holds the non-empty
// lines seen before the first header; they belong to no section.
type Result struct {
	Sections []Section `json:"sections" yaml:"sections"`
	Preamble []string  `json:"preamble" yaml:"preamble"`
}

// Segmenter recognizes section headers with a taxonomy.
type Segmenter struct {
	tax *taxonomy.Taxonomy
}

// New returns a segmenter backed by tax.
func New(tax *taxonomy.Taxonomy) *Segmenter {
	return &Segmenter{tax: tax}
}

// IsHeader reports whether line opens a section and, if so, which one.
func (s *Segmenter) IsHeader(line string) (bool, types.SectionLabel) {
	ok, label, _ := s.tax.ClassifyHeader(line, HeaderConfidence)
	if !ok {
		return false, types.SectionUnknown
	}
	return true, label
}

// Segment walks the lines of text in order. A header flushes the open
// section, when it has lines, and opens a new one; other lines join the
// open section or, before any header, the preamble. Empty lines are
// skipped. Labels may repeat across sections.
func (s *Segmenter) Segment(text string) Result {
	var res Result

	var current *Section
	flush := func() {
		if current != nil && len(current.Lines) > 0 {
			res.Sections = append(res.Sections, *current)
		}
		current = nil
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if ok, label := s.IsHeader(line); ok {
			flush()
			current = &Section{Label: label, Header: line}
			continue
		}

		if current == nil {
			res.Preamble = append(res.Preamble, line)
			continue
		}
		current.Lines = append(current.Lines, line)
	}
	flush()

	return res
}

// Labels returns the label of each section in order.
func (r Result) Labels() []types.SectionLabel {
	labels := make([]types.SectionLabel, len(r.Sections))
	for i, s := range r.Sections {
		labels[i] = s.Label
	}
	return labels
}
