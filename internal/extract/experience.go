// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"

	"github.com/pdiddy/resume-parser/internal/taxonomy"
	"github.com/pdiddy/resume-parser/pkg/types"
)

// durationPatterns are tried in order; the first to match sets the duration.
var durationPatterns = []*regexp.Regexp{
	monthRangeRe,
	regexp.MustCompile(`\b(19|20)\d{2}[–-]\s*(19|20)\d{2}\b`),
	regexp.MustCompile(`\b\d{2}/\d{4}[–-]\s*\w+\s*\d{4}\b`),
}

// descriptionMinRunes is the length above which an unbulleted line without a
// job title counts as description.
const descriptionMinRunes = 50

// ExtractExperience scans an experience section with a single open entry.
// An unbulleted line containing a taxonomy job-title keyword opens a new
// entry.
//
// While company is unset, an unbulleted "City, ST" line becomes the company,
// not the location. Location is only taken from such a line once a company
// was recorded on an earlier line.
func ExtractExperience(tax *taxonomy.Taxonomy, text string) []types.ExperienceEntry {
	out := []types.ExperienceEntry{}
	var cur *types.ExperienceEntry
	flush := func() {
		if cur != nil {
			out = append(out, *cur)
		}
		cur = nil
	}

	for _, line := range lines(text) {
		lower := strings.ToLower(line)
		bullet := isBullet(line)

		if !bullet && containsAny(lower, tax.JobTitleKeywords()) {
			flush()
			cur = newExperience(tax, line)
			continue
		}
		if cur == nil {
			continue
		}

		hadCompany := cur.Company != ""
		if !hadCompany && !bullet {
			if containsAny(lower, tax.EmployerKeywords()) || cityStateRe.MatchString(line) {
				cur.Company = line
			}
		}

		if cur.Duration == "" && matchesDuration(line) {
			cur.Duration = line
		}

		if cur.Location == "" && hadCompany && cityStateRe.MatchString(line) {
			cur.Location = line
		}

		if bullet || runeLen(line) > descriptionMinRunes {
			cur.Description = append(cur.Description, line)
		}
	}
	flush()

	return out
}

// newExperience opens an entry on a title line. A "Title | Company | Dates"
// line also yields the company and duration from its later segments; a
// segment names the company when it carries an employer keyword or one of
// the taxonomy's company indicators.
func newExperience(tax *taxonomy.Taxonomy, line string) *types.ExperienceEntry {
	e := &types.ExperienceEntry{
		Title:       line,
		RawText:     line,
		Description: []string{},
	}

	segments := strings.Split(line, "|")
	if len(segments) < 2 {
		return e
	}
	for _, seg := range segments[1:] {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		lower := strings.ToLower(seg)
		if e.Company == "" && (containsAny(lower, tax.EmployerKeywords()) || containsAny(lower, tax.CompanyIndicators())) {
			e.Company = seg
			continue
		}
		if e.Duration == "" && matchesDuration(seg) {
			e.Duration = seg
		}
	}
	return e
}

func matchesDuration(s string) bool {
	for _, re := range durationPatterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
