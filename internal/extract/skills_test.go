// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/resume-parser/internal/taxonomy"
)

const sampleSkills = `Programming Languages: Python, JavaScript, Java, C++
Frameworks: React, Django, Flask, Spring Boot
Cloud: AWS, Azure, Docker, Kubernetes`

func TestExtractSkills_SampleSection(t *testing.T) {
	got := ExtractSkills(taxonomy.Default(), sampleSkills)

	// Keyword hits come first, title-cased, so "Javascript" wins over the
	// listed "JavaScript". Single-letter hits such as "C" are dropped.
	assert.Equal(t, []string{
		"Python", "Java", "Javascript", "C++", "Go",
		"React", "Django", "Flask", "Spring", "Spring Boot",
		"Aws", "Azure", "Docker", "Kubernetes",
	}, got)
}

func TestExtractSkills_Layouts(t *testing.T) {
	tax := taxonomy.Default()

	tests := []struct {
		name        string
		text        string
		want        []string
		contains    []string
		notContains []string
	}{
		{
			// "Teamwork" holds the filler "or".
			name: "plain comma list",
			text: "Leadership, Communication, Teamwork",
			want: []string{"Leadership", "Communication"},
		},
		{
			name: "pipe list",
			text: "Agile | Scrum | Kanban",
			want: []string{"Agile", "Scrum", "Kanban"},
		},
		{
			name:        "leading filler stripped",
			text:        "Tools: using Docker, with Git",
			contains:    []string{"Docker", "Git"},
			notContains: []string{"using Docker", "with Git"},
		},
		{
			name:        "non-alphanumeric tokens rejected on category lines",
			text:        "Databases: MySQL, SQL/NoSQL",
			contains:    []string{"Mysql", "SQL", "NoSQL"},
			notContains: []string{"SQL/NoSQL"},
		},
		{
			name: "empty",
			text: "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractSkills(tax, tt.text)
			if tt.want != nil {
				assert.Equal(t, tt.want, got)
			}
			for _, s := range tt.contains {
				assert.Contains(t, got, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, got, s)
			}
		})
	}
}

func TestExtractSkills_CapAndCaseUniqueness(t *testing.T) {
	tax := taxonomy.Default()

	inputs := []string{
		strings.Join(tax.AllSkillKeywords(), ", "),
		strings.ToUpper(strings.Join(tax.AllSkillKeywords(), " | ")),
		"python, PYTHON, Python, pyThon",
		sampleSkills + "\n" + strings.ToLower(sampleSkills),
	}

	for _, in := range inputs {
		got := ExtractSkills(tax, in)
		assert.LessOrEqual(t, len(got), MaxSectionSkills)
		assertCaseUnique(t, got)
	}

	assert.Len(t, ExtractSkills(tax, inputs[0]), MaxSectionSkills)
}

func TestExtractSkillMentions(t *testing.T) {
	tax := taxonomy.Default()

	got := ExtractSkillMentions(tax, "Built APIs in Python and Go")
	assert.Equal(t, []string{"Python", "Go"}, got)

	// List layouts are ignored outside a skills section.
	got = ExtractSkillMentions(tax, "Leadership, Communication, Mentoring")
	assert.Empty(t, got)
}

func TestMergeSkills(t *testing.T) {
	var many []string
	for i := 0; i < 30; i++ {
		many = append(many, strings.Repeat("x", i+2))
	}

	got := MergeSkills([]string{"Go", "Python"}, []string{"python", "Rust"}, many)
	assert.Len(t, got, MaxResultSkills)
	assert.Equal(t, []string{"Go", "Python", "Rust"}, got[:3])
	assertCaseUnique(t, got)
}

func TestTitleWords(t *testing.T) {
	tests := map[string]string{
		"c++":         "C++",
		"node.js":     "Node.Js",
		"spring boot": "Spring Boot",
		"neo4j":       "Neo4J",
		"JAVASCRIPT":  "Javascript",
		"":            "",
	}
	for in, want := range tests {
		assert.Equal(t, want, titleWords(in), in)
	}
}

func assertCaseUnique(t *testing.T, skills []string) {
	t.Helper()
	seen := make(map[string]bool)
	for _, s := range skills {
		key := strings.ToLower(s)
		assert.False(t, seen[key], "duplicate skill %q", s)
		seen[key] = true
	}
}
