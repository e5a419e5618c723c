// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"
)

var certPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:AWS|Azure|Google Cloud|GCP)\s+[A-Za-z\s]+`),
	regexp.MustCompile(`(?i)\bCertified\s+[A-Za-z\s]+`),
	regexp.MustCompile(`(?i)\b(?:PMP|CISSP|CISM|CompTIA|ITIL|CPA|CFA)\b.*`),
	regexp.MustCompile(`(?i)\b[A-Za-z\s]+\s+Certification\b`),
	regexp.MustCompile(`(?i)\bPrompt Design in [A-Za-z\s,]+`),
	regexp.MustCompile(`(?i)\bKnowledge Graphs for [A-Za-z\s,]+`),
	regexp.MustCompile(`(?i)\bFinetuning [A-Za-z\s,]+`),
	regexp.MustCompile(`(?i)\bAI Agents [A-Za-z\s,]+`),
}

var (
	certBulletRe   = regexp.MustCompile(`^[•◦\-*▪▫]\s*`)
	certTrailingRe = regexp.MustCompile(`[,|]+$`)
)

var (
	certKeywords  = []string{"certificate", "certification", "certified", "credential", "license"}
	certProviders = []string{"google", "aws", "azure", "microsoft", "oracle", "deeplearning.ai", "hugging face", "coursera", "udacity", "edx"}
)

const (
	certLineMaxRunes = 150
	certMinRunes     = 5
)

// ExtractCertifications reads each line of a certifications section on its
// own. Pattern matches are kept verbatim; a match contained in a longer
// match from the same line is dropped. Lines without a match are kept whole
// when they mention a certification keyword or a known provider. Results
// are deduplicated in first-appearance order.
func ExtractCertifications(text string) []string {
	var found []string
	for _, line := range lines(text) {
		cleaned := certBulletRe.ReplaceAllString(line, "")

		matches := certMatches(cleaned)
		if len(matches) > 0 {
			found = append(found, matches...)
			continue
		}

		lower := strings.ToLower(cleaned)
		if (containsAny(lower, certKeywords) || containsAny(lower, certProviders)) && runeLen(cleaned) < certLineMaxRunes {
			found = append(found, cleaned)
		}
	}

	out := []string{}
	seen := make(map[string]bool)
	for _, c := range found {
		c = strings.TrimSpace(certTrailingRe.ReplaceAllString(strings.TrimSpace(c), ""))
		if runeLen(c) <= certMinRunes || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// certMatches runs every pattern over line and drops matches that are
// substrings of another, longer match.
func certMatches(line string) []string {
	var all []string
	for _, re := range certPatterns {
		for _, m := range re.FindAllString(line, -1) {
			if m = strings.TrimSpace(m); m != "" {
				all = append(all, m)
			}
		}
	}

	var out []string
	for i, m := range all {
		covered := false
		for j, other := range all {
			if i != j && len(other) > len(m) && strings.Contains(other, m) {
				covered = true
				break
			}
		}
		if !covered {
			out = append(out, m)
		}
	}
	return out
}
