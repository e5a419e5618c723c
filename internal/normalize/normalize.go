// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize cleans extracted document text before parsing.
package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	controlRe   = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F-\x9F]`)
	spaceRunRe  = regexp.MustCompile(`[ \t]+`)
	blankRunsRe = regexp.MustCompile(`\n{3,}`)
)

// Text removes control characters, applies NFC composition, collapses
// runs of spaces and tabs, trims every line and keeps at most one blank
// line between paragraphs. CRLF and CR line endings become LF.
func Text(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = controlRe.ReplaceAllString(s, "")
	s = norm.NFC.String(s)

	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(spaceRunRe.ReplaceAllString(l, " "))
	}
	s = strings.Join(lines, "\n")
	s = blankRunsRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
