// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract holds the per-field resume extractors. Each extractor takes
// a section body (or the whole text, for contact details) and the shared
// taxonomy, and returns typed records. Extractors never fail: a value that
// is not found is left empty.
package extract

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Caps on extracted skill lists.
const (
	// MaxSectionSkills caps the output of one skills extractor call.
	MaxSectionSkills = 25

	// MaxResultSkills caps the skills of an assembled parse result.
	MaxResultSkills = 20
)

var (
	// cityStateRe matches "Seattle, WA".
	cityStateRe = regexp.MustCompile(`\b[A-Z][a-z]+,\s*[A-Z]{2}\b`)

	// monthRangeRe matches "08/2021-05/2023" with a hyphen or en dash.
	monthRangeRe = regexp.MustCompile(`\b\d{2}/\d{4}[–-]\s*\d{2}/\d{4}\b`)
)

// bulletPrefixes are the glyphs that mark a bullet line.
var bulletPrefixes = []string{"•", "◦", "-", "*"}

func isBullet(line string) bool {
	for _, p := range bulletPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

// containsAny reports whether s contains any of words as a substring.
func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// lines splits a section body into trimmed, non-empty lines.
func lines(text string) []string {
	var out []string
	for _, l := range strings.Split(text, "\n") {
		l = strings.TrimSpace(l)
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}

// titleWords upper-cases every letter that follows a non-letter and
// lower-cases the rest: "node.js" becomes "Node.Js", "neo4j" becomes "Neo4J".
func titleWords(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}
	return b.String()
}

// uniqueFold drops entries equal, ignoring case, to an earlier entry and
// truncates the result to limit entries. A limit of zero means no cap.
func uniqueFold(items []string, limit int) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		key := strings.ToLower(it)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, it)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// MergeSkills concatenates skill lists, deduplicates them ignoring case and
// caps the result at MaxResultSkills.
func MergeSkills(lists ...[]string) []string {
	var all []string
	for _, l := range lists {
		all = append(all, l...)
	}
	return uniqueFold(all, MaxResultSkills)
}
