// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/pdiddy/resume-parser/internal/taxonomy"
	"github.com/pdiddy/resume-parser/pkg/types"
)

// nameScanLines is how many leading lines are searched for a name.
const nameScanLines = 10

// nameExclusions rule out headings and locations that look like names.
var nameExclusions = []string{
	"resume", "cv", "curriculum", "vitae", "profile",
	"seattle", "washington", "wa", "texas", "university",
	"education", "experience", "skills", "projects",
}

// ExtractContact scans the whole text for the five contact fields. Each
// field is found independently.
func ExtractContact(tax *taxonomy.Taxonomy, text string) types.ContactInfo {
	return types.ContactInfo{
		Name:     ExtractName(tax, text),
		Email:    ExtractEmail(tax, text),
		Phone:    ExtractPhone(tax, text),
		LinkedIn: firstMatch(tax.LinkedInPatterns(), text),
		GitHub:   firstMatch(tax.GitHubPatterns(), text),
	}
}

// ExtractName returns the first of the leading lines that looks like a
// person's name, or "".
func ExtractName(tax *taxonomy.Taxonomy, text string) string {
	all := strings.Split(text, "\n")
	if len(all) > nameScanLines {
		all = all[:nameScanLines]
	}

	email := tax.EmailPatterns()[0]
	for _, line := range all {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if email.MatchString(line) || anyMatch(tax.PhonePatterns(), line) {
			continue
		}
		if looksLikeName(line) {
			return line
		}
	}
	return ""
}

func looksLikeName(line string) bool {
	words := strings.Fields(line)
	if len(words) < 1 || len(words) > 5 {
		return false
	}
	if runeLen(asciiLettersOnly(line)) < 3 {
		return false
	}
	if containsAny(strings.ToLower(line), nameExclusions) {
		return false
	}

	if len(words) >= 2 {
		for _, w := range words[:min(3, len(words))] {
			if runeLen(w) < 2 {
				return false
			}
		}
		return true
	}

	first := []rune(line)[0]
	return unicode.IsUpper(first) && runeLen(line) >= 4
}

// asciiLettersOnly keeps ASCII letters and whitespace and trims the result.
func asciiLettersOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// ExtractEmail returns the first address matched by the standard pattern.
func ExtractEmail(tax *taxonomy.Taxonomy, text string) string {
	return tax.EmailPatterns()[0].FindString(text)
}

// ExtractPhone tries the phone patterns in order. A pattern with three
// capture groups is reformatted as "(AAA) BBB-CCCC"; any other match is
// returned as written.
func ExtractPhone(tax *taxonomy.Taxonomy, text string) string {
	for _, re := range tax.PhonePatterns() {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if re.NumSubexp() >= 3 {
			return fmt.Sprintf("(%s) %s-%s", m[1], m[2], m[3])
		}
		return m[0]
	}
	return ""
}

func firstMatch(patterns []*regexp.Regexp, text string) string {
	for _, re := range patterns {
		if m := re.FindString(text); m != "" {
			return m
		}
	}
	return ""
}

func anyMatch(patterns []*regexp.Regexp, text string) bool {
	for _, re := range patterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
