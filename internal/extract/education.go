// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pdiddy/resume-parser/internal/taxonomy"
	"github.com/pdiddy/resume-parser/pkg/types"
)

var gradYearRe = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// ExtractEducation scans an education section with a single open entry.
//
// A line naming a degree (by a taxonomy degree keyword or degree pattern
// such as "M.S." or "J.D.") or an institution is a trigger. When every kind of
// keyword the trigger carries is still unset on the open entry, the line
// completes that entry ("Stanford University" after "BS in CS"); otherwise
// it closes the open entry and starts a new one. Other lines fill the open
// entry's empty fields.
func ExtractEducation(tax *taxonomy.Taxonomy, text string) []types.EducationEntry {
	out := []types.EducationEntry{}
	var cur *types.EducationEntry
	flush := func() {
		if cur != nil {
			out = append(out, *cur)
		}
		cur = nil
	}

	for _, line := range lines(text) {
		lower := strings.ToLower(line)
		hasDegree := containsAny(lower, tax.DegreeKeywords()) || anyMatch(tax.DegreePatterns(), line)
		hasInstitution := containsAny(lower, tax.InstitutionKeywords())

		if hasDegree || hasInstitution {
			completes := cur != nil &&
				(!hasDegree || cur.Degree == "") &&
				(!hasInstitution || cur.Institution == "")
			if !completes {
				flush()
				cur = &types.EducationEntry{RawText: line}
				if hasDegree {
					cur.Degree = line
				}
				if hasInstitution {
					cur.Institution = line
				}
				continue
			}
		}

		if cur == nil {
			continue
		}
		fillEducation(cur, tax.StudyFields(), line, lower, hasDegree, hasInstitution)
	}
	flush()

	return out
}

func fillEducation(e *types.EducationEntry, fields []string, line, lower string, hasDegree, hasInstitution bool) {
	if e.Degree == "" && hasDegree {
		e.Degree = line
	} else if e.Institution == "" && hasInstitution {
		e.Institution = line
	}

	if e.Year == "" {
		if y := gradYearRe.FindString(line); y != "" {
			e.Year = y
		} else if r := monthRangeRe.FindString(line); r != "" {
			e.Year = r
		}
	}

	if e.Location == "" && cityStateRe.MatchString(line) {
		e.Location = line
	}

	if e.FieldOfStudy == "" {
		for _, f := range fields {
			if strings.Contains(lower, f) {
				// Casers carry state and are not shared across goroutines.
				e.FieldOfStudy = cases.Title(language.English).String(f)
				break
			}
		}
	}
}
