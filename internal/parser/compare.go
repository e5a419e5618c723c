// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parser

import (
	"fmt"
	"strings"

	"github.com/pdiddy/resume-parser/pkg/types"
)

// Comparison contrasts a rule-based result with one from another strategy.
type Comparison struct {
	ContactInfo ContactMatch     `json:"contact_info" yaml:"contact_info"`
	Skills      SkillsComparison `json:"skills" yaml:"skills"`
	Sections    SectionCounts    `json:"sections" yaml:"sections"`
	Metadata    MetadataPair     `json:"metadata" yaml:"metadata"`
}

// ContactMatch reports which contact fields agree.
type ContactMatch struct {
	NameMatch  bool `json:"name_match" yaml:"name_match"`
	EmailMatch bool `json:"email_match" yaml:"email_match"`
	PhoneMatch bool `json:"phone_match" yaml:"phone_match"`
}

type SkillsComparison struct {
	RuleCount   int      `json:"rule_count" yaml:"rule_count"`
	OtherCount  int      `json:"other_count" yaml:"other_count"`
	RuleSkills  []string `json:"rule_skills" yaml:"rule_skills"`
	OtherSkills []string `json:"other_skills" yaml:"other_skills"`
	Shared      []string `json:"shared" yaml:"shared"`
}

// SectionCounts counts non-empty entry sections (education, experience,
// projects, certifications) on each side.
type SectionCounts struct {
	RuleSections  int `json:"rule_sections" yaml:"rule_sections"`
	OtherSections int `json:"other_sections" yaml:"other_sections"`
}

type MetadataPair struct {
	RuleMethod      string `json:"rule_method" yaml:"rule_method"`
	OtherMethod     string `json:"other_method" yaml:"other_method"`
	RuleTextLength  int    `json:"rule_text_length" yaml:"rule_text_length"`
	OtherTextLength int    `json:"other_text_length" yaml:"other_text_length"`
}

// Compare builds the side-by-side view of two results.
func Compare(rule, other types.ParseResult) Comparison {
	return Comparison{
		ContactInfo: ContactMatch{
			NameMatch:  rule.Name == other.Name,
			EmailMatch: rule.Email == other.Email,
			PhoneMatch: rule.Phone == other.Phone,
		},
		Skills: SkillsComparison{
			RuleCount:   len(rule.Skills),
			OtherCount:  len(other.Skills),
			RuleSkills:  nonNil(rule.Skills),
			OtherSkills: nonNil(other.Skills),
			Shared:      sharedFold(rule.Skills, other.Skills),
		},
		Sections: SectionCounts{
			RuleSections:  entrySections(rule),
			OtherSections: entrySections(other),
		},
		Metadata: MetadataPair{
			RuleMethod:      rule.Metadata.ParsingMethod,
			OtherMethod:     other.Metadata.ParsingMethod,
			RuleTextLength:  rule.Metadata.TextLength,
			OtherTextLength: other.Metadata.TextLength,
		},
	}
}

func entrySections(r types.ParseResult) int {
	n := 0
	for _, l := range []int{len(r.Education), len(r.Experience), len(r.Projects), len(r.Certifications)} {
		if l > 0 {
			n++
		}
	}
	return n
}

// sharedFold returns the skills of a that b also lists, ignoring case.
func sharedFold(a, b []string) []string {
	inB := make(map[string]bool, len(b))
	for _, s := range b {
		inB[strings.ToLower(s)] = true
	}
	out := []string{}
	for _, s := range a {
		if inB[strings.ToLower(s)] {
			out = append(out, s)
		}
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// Summary renders a short human-readable digest of a result.
func Summary(r types.ParseResult) string {
	var b strings.Builder
	rule := strings.Repeat("=", 50)
	fmt.Fprintf(&b, "%s\nPARSING SUMMARY\n%s\n", rule, rule)
	fmt.Fprintf(&b, "Method: %s\n", r.Metadata.ParsingMethod)
	fmt.Fprintf(&b, "Contact info: %t name, %t email, %t phone\n", r.Name != "", r.Email != "", r.Phone != "")
	fmt.Fprintf(&b, "Skills found: %d\n", len(r.Skills))
	fmt.Fprintf(&b, "Sections detected: %d\n", r.Metadata.SectionsDetected)
	fmt.Fprintf(&b, "Entries: %d education, %d experience, %d projects, %d certifications\n",
		len(r.Education), len(r.Experience), len(r.Projects), len(r.Certifications))
	if r.Metadata.ChunksProcessed > 0 {
		fmt.Fprintf(&b, "Chunks processed: %d\n", r.Metadata.ChunksProcessed)
	}
	return b.String()
}

// ComparisonSummary renders the digest of a comparison.
func ComparisonSummary(c Comparison) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Comparison (%s vs %s):\n", c.Metadata.RuleMethod, c.Metadata.OtherMethod)
	fmt.Fprintf(&b, "  Contact matches: name=%t email=%t phone=%t\n",
		c.ContactInfo.NameMatch, c.ContactInfo.EmailMatch, c.ContactInfo.PhoneMatch)
	fmt.Fprintf(&b, "  Skills count: %d vs %d (%d shared)\n", c.Skills.RuleCount, c.Skills.OtherCount, len(c.Skills.Shared))
	fmt.Fprintf(&b, "  Sections with entries: %d vs %d\n", c.Sections.RuleSections, c.Sections.OtherSections)
	return b.String()
}
