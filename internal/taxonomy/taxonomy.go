// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package taxonomy is the read-only knowledge base behind the parser:
// section header synonyms, skill lists by category, and the regex pattern
// groups for contact details and degrees. A Taxonomy is never mutated after
// construction, so one value is shared by every parse call.
package taxonomy

import (
	"regexp"
	"slices"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/pdiddy/resume-parser/pkg/types"
)

// DefaultHeaderThreshold is the minimum confidence for ClassifyHeader to
// report a header.
const DefaultHeaderThreshold = 0.6

// categoryOther is returned by CategorizeSkill for unknown skills.
const categoryOther = "other"

// Taxonomy holds the lookup tables and compiled patterns.
type Taxonomy struct {
	sections []sectionSynonyms
	skills   []skillCategory

	allSkills  []string
	skillIndex map[string]string

	email    []*regexp.Regexp
	phone    []*regexp.Regexp
	linkedIn []*regexp.Regexp
	gitHub   []*regexp.Regexp
	degrees  []*regexp.Regexp

	degreeKeywords      []string
	institutionKeywords []string
	studyFields         []string
	jobTitles           []string
	employers           []string
	companyIndicators   []string
}

// Default returns the process-wide taxonomy built from the built-in tables.
var Default = sync.OnceValue(func() *Taxonomy { return New() })

// Option customizes a Taxonomy during construction.
type Option func(*Taxonomy)

// New builds a taxonomy from the built-in tables and applies opts in order.
func New(opts ...Option) *Taxonomy {
	t := &Taxonomy{
		sections: cloneSections(builtinSections),
		skills:   cloneSkills(builtinSkills),
		email:    mustCompileAll(emailPatterns),
		phone:    mustCompileAll(phonePatterns),
		linkedIn: mustCompileAll(linkedInPatterns),
		gitHub:   mustCompileAll(gitHubPatterns),
		degrees:  mustCompileAll(degreePatterns),

		degreeKeywords:      slices.Clone(degreeKeywords),
		institutionKeywords: slices.Clone(institutionKeywords),
		studyFields:         slices.Clone(studyFields),
		jobTitles:           slices.Clone(jobTitleKeywords),
		employers:           slices.Clone(employerKeywords),
		companyIndicators:   slices.Clone(companyIndicators),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.index()
	return t
}

// index derives the flattened skill list and the category lookup.
func (t *Taxonomy) index() {
	seen := make(map[string]bool)
	t.allSkills = nil
	t.skillIndex = make(map[string]string)
	for _, cat := range t.skills {
		for _, s := range cat.skills {
			if _, ok := t.skillIndex[s]; !ok {
				t.skillIndex[s] = cat.name
			}
			if !seen[s] {
				seen[s] = true
				t.allSkills = append(t.allSkills, s)
			}
		}
	}
}

// Labels returns the section labels in enumeration order.
func (t *Taxonomy) Labels() []types.SectionLabel {
	labels := make([]types.SectionLabel, len(t.sections))
	for i, s := range t.sections {
		labels[i] = s.label
	}
	return labels
}

// SectionKeywords returns the header synonyms for label, or nil.
func (t *Taxonomy) SectionKeywords(label types.SectionLabel) []string {
	for _, s := range t.sections {
		if s.label == label {
			return append([]string(nil), s.synonyms...)
		}
	}
	return nil
}

// ClassifyHeader reports whether line looks like a section header, which
// section it names, and the match confidence in [0,1].
//
// An exact synonym match returns confidence 1.0 at once. Otherwise every
// synonym that contains the normalized line, or is contained in it, scores
// min(len)/max(len); the best score across all labels wins, the first label
// encountered keeping ties. Scores below threshold yield (false, unknown, 0).
func (t *Taxonomy) ClassifyHeader(line string, threshold float64) (bool, types.SectionLabel, float64) {
	clean := normalizeHeader(line)
	cleanLen := utf8.RuneCountInString(clean)

	bestLabel := types.SectionUnknown
	bestScore := 0.0

	for _, s := range t.sections {
		for _, syn := range s.synonyms {
			if clean == syn {
				return true, s.label, 1.0
			}
			if strings.Contains(clean, syn) || strings.Contains(syn, clean) {
				synLen := utf8.RuneCountInString(syn)
				score := float64(min(synLen, cleanLen)) / float64(max(synLen, cleanLen))
				if score > bestScore {
					bestScore = score
					bestLabel = s.label
				}
			}
		}
	}

	if bestScore >= threshold && bestScore > 0 {
		return true, bestLabel, bestScore
	}
	return false, types.SectionUnknown, 0.0
}

// NormalizeFieldName maps free header text to the first label with a
// synonym that contains it or is contained in it.
func (t *Taxonomy) NormalizeFieldName(text string) types.SectionLabel {
	clean := normalizeHeader(text)
	for _, s := range t.sections {
		for _, syn := range s.synonyms {
			if strings.Contains(clean, syn) || strings.Contains(syn, clean) {
				return s.label
			}
		}
	}
	return types.SectionUnknown
}

// AllSkillKeywords returns every skill keyword in declaration order,
// without duplicates.
func (t *Taxonomy) AllSkillKeywords() []string {
	return append([]string(nil), t.allSkills...)
}

// CategorizeSkill returns the category of skill by exact, case-insensitive
// membership, or "other".
func (t *Taxonomy) CategorizeSkill(skill string) string {
	if cat, ok := t.skillIndex[strings.ToLower(strings.TrimSpace(skill))]; ok {
		return cat
	}
	return categoryOther
}

// SkillCategories returns the category names in declaration order.
func (t *Taxonomy) SkillCategories() []string {
	names := make([]string, len(t.skills))
	for i, c := range t.skills {
		names[i] = c.name
	}
	return names
}

// CategorySkills returns a copy of the keywords in category, or nil when
// the category does not exist.
func (t *Taxonomy) CategorySkills(category string) []string {
	for _, c := range t.skills {
		if c.name == category {
			return slices.Clone(c.skills)
		}
	}
	return nil
}

func (t *Taxonomy) EmailPatterns() []*regexp.Regexp    { return t.email }
func (t *Taxonomy) PhonePatterns() []*regexp.Regexp    { return t.phone }
func (t *Taxonomy) LinkedInPatterns() []*regexp.Regexp { return t.linkedIn }
func (t *Taxonomy) GitHubPatterns() []*regexp.Regexp   { return t.gitHub }
func (t *Taxonomy) DegreePatterns() []*regexp.Regexp   { return t.degrees }

// Keyword sets for the entry extractors, lowercase. The returned slices
// are shared and must not be modified.
func (t *Taxonomy) DegreeKeywords() []string      { return t.degreeKeywords }
func (t *Taxonomy) InstitutionKeywords() []string { return t.institutionKeywords }
func (t *Taxonomy) StudyFields() []string         { return t.studyFields }
func (t *Taxonomy) JobTitleKeywords() []string    { return t.jobTitles }
func (t *Taxonomy) EmployerKeywords() []string    { return t.employers }
func (t *Taxonomy) CompanyIndicators() []string   { return t.companyIndicators }

// normalizeHeader lowercases and trims text, turns every rune that is not a
// letter, digit, underscore or space into a space, and collapses whitespace
// runs. The result is not trimmed again, so "Skills:" becomes "skills ".
func normalizeHeader(text string) string {
	text = strings.TrimSpace(strings.ToLower(text))

	var b strings.Builder
	b.Grow(len(text))
	space := false
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_' {
			b.WriteRune(r)
			space = false
			continue
		}
		if !space {
			b.WriteByte(' ')
			space = true
		}
	}
	return b.String()
}

func mustCompileAll(patterns []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile(p)
	}
	return out
}

func cloneSections(in []sectionSynonyms) []sectionSynonyms {
	out := make([]sectionSynonyms, len(in))
	for i, s := range in {
		out[i] = sectionSynonyms{label: s.label, synonyms: append([]string(nil), s.synonyms...)}
	}
	return out
}

func cloneSkills(in []skillCategory) []skillCategory {
	out := make([]skillCategory, len(in))
	for i, c := range in {
		out[i] = skillCategory{name: c.name, skills: append([]string(nil), c.skills...)}
	}
	return out
}
