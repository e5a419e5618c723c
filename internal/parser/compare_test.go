// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/resume-parser/internal/taxonomy"
	"github.com/pdiddy/resume-parser/pkg/types"
)

func TestCompare(t *testing.T) {
	rule := New(taxonomy.Default()).Parse(sampleText)

	other := types.NewParseResult(MethodSemantic, 42)
	other.Name = "John Smith"
	other.Email = "other@email.com"
	other.Skills = []string{"python", "Rust"}
	other.Education = []types.EducationEntry{{Degree: "BS"}}

	c := Compare(rule, other)

	assert.Equal(t, ContactMatch{NameMatch: true, EmailMatch: false, PhoneMatch: false}, c.ContactInfo)
	assert.Equal(t, len(rule.Skills), c.Skills.RuleCount)
	assert.Equal(t, 2, c.Skills.OtherCount)
	assert.Equal(t, []string{"Python"}, c.Skills.Shared)
	assert.Equal(t, SectionCounts{RuleSections: 4, OtherSections: 1}, c.Sections)
	assert.Equal(t, MethodRuleBased, c.Metadata.RuleMethod)
	assert.Equal(t, MethodSemantic, c.Metadata.OtherMethod)
	assert.Equal(t, 42, c.Metadata.OtherTextLength)

	out := ComparisonSummary(c)
	assert.Contains(t, out, "rule_based vs semantic_faiss")
	assert.Contains(t, out, "name=true email=false phone=false")
}

func TestCompare_EmptyResults(t *testing.T) {
	c := Compare(types.ParseResult{}, types.ParseResult{})

	assert.True(t, c.ContactInfo.NameMatch)
	assert.Equal(t, []string{}, c.Skills.RuleSkills)
	assert.Equal(t, []string{}, c.Skills.Shared)
	assert.Equal(t, 0, c.Sections.RuleSections)
}

func TestSummary(t *testing.T) {
	res := New(taxonomy.Default()).Parse(sampleText)

	out := Summary(res)

	assert.Contains(t, out, "PARSING SUMMARY")
	assert.Contains(t, out, "Method: rule_based")
	assert.Contains(t, out, "Contact info: true name, true email, true phone")
	assert.Contains(t, out, "Sections detected: 5")
	assert.Contains(t, out, "Entries: 1 education, 1 experience, 1 projects, 2 certifications")
	assert.NotContains(t, out, "Chunks processed")
}

const sampleText = `John Smith
john.smith@email.com
(555) 123-4567

Professional Experience
Senior Software Engineer | TechCorp Inc | 2020-2023
• Developed web applications using Python and React

Technical Skills
Programming Languages: Python, JavaScript, Java, C++

Education
Bachelor of Science in Computer Science
Stanford University | 2018

Projects
E-commerce Platform
• Built scalable web application using React and Django

Certifications
AWS Certified Solutions Architect
Certified Kubernetes Administrator`
