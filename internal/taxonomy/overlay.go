// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package taxonomy

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/resume-parser/pkg/types"
)

// ErrUnknownLabel is returned when an overlay names a section label outside
// the canonical set.
var ErrUnknownLabel = errors.New("unknown section label")

// Overlay is the on-disk extension of the built-in tables. Synonyms and
// skills are appended; nothing built in is removed or reordered.
//
//	sections:
//	  - label: skills
//	    synonyms: [tooling, tech stack]
//	skills:
//	  - category: data_tools
//	    skills: [airflow, dbt]
//	keywords:
//	  job_titles: [barista, nurse]
//	  institutions: [conservatory]
type Overlay struct {
	Sections []OverlaySection  `yaml:"sections"`
	Skills   []OverlayCategory `yaml:"skills"`
	Keywords OverlayKeywords   `yaml:"keywords"`
}

// OverlayKeywords extends the keyword sets behind the education and
// experience extractors.
type OverlayKeywords struct {
	Degrees           []string `yaml:"degrees"`
	Institutions      []string `yaml:"institutions"`
	StudyFields       []string `yaml:"study_fields"`
	JobTitles         []string `yaml:"job_titles"`
	Employers         []string `yaml:"employers"`
	CompanyIndicators []string `yaml:"company_indicators"`
}

// OverlaySection adds header synonyms to an existing label.
type OverlaySection struct {
	Label    types.SectionLabel `yaml:"label"`
	Synonyms []string           `yaml:"synonyms"`
}

// OverlayCategory adds skills to a category, creating it when new.
type OverlayCategory struct {
	Category string   `yaml:"category"`
	Skills   []string `yaml:"skills"`
}

// LoadOverlay reads and validates a YAML overlay file.
func LoadOverlay(path string) (Overlay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Overlay{}, fmt.Errorf("reading taxonomy overlay %s: %w", path, err)
	}

	var o Overlay
	if err := yaml.Unmarshal(data, &o); err != nil {
		return Overlay{}, fmt.Errorf("parsing taxonomy overlay %s: %w", path, err)
	}
	if err := o.Validate(); err != nil {
		return Overlay{}, fmt.Errorf("taxonomy overlay %s: %w", path, err)
	}
	return o, nil
}

// Validate checks that every section entry names a canonical label and
// every category is named.
func (o Overlay) Validate() error {
	for _, s := range o.Sections {
		if !isCanonical(s.Label) {
			return fmt.Errorf("%w: %q", ErrUnknownLabel, s.Label)
		}
	}
	for i, c := range o.Skills {
		if strings.TrimSpace(c.Category) == "" {
			return fmt.Errorf("skills entry %d: category is required", i)
		}
	}
	return nil
}

// WithOverlay returns an Option that merges o into the taxonomy. Entries are
// lowercased and trimmed; duplicates of existing entries are skipped.
// The overlay must already be validated.
func WithOverlay(o Overlay) Option {
	return func(t *Taxonomy) {
		for _, s := range o.Sections {
			for i := range t.sections {
				if t.sections[i].label == s.Label {
					t.sections[i].synonyms = appendNew(t.sections[i].synonyms, s.Synonyms)
				}
			}
		}

		for _, c := range o.Skills {
			name := strings.TrimSpace(c.Category)
			found := false
			for i := range t.skills {
				if t.skills[i].name == name {
					t.skills[i].skills = appendNew(t.skills[i].skills, c.Skills)
					found = true
					break
				}
			}
			if !found {
				t.skills = append(t.skills, skillCategory{name: name, skills: appendNew(nil, c.Skills)})
			}
		}

		k := o.Keywords
		t.degreeKeywords = appendNew(t.degreeKeywords, k.Degrees)
		t.institutionKeywords = appendNew(t.institutionKeywords, k.Institutions)
		t.studyFields = appendNew(t.studyFields, k.StudyFields)
		t.jobTitles = appendNew(t.jobTitles, k.JobTitles)
		t.employers = appendNew(t.employers, k.Employers)
		t.companyIndicators = appendNew(t.companyIndicators, k.CompanyIndicators)
	}
}

func appendNew(dst, src []string) []string {
	have := make(map[string]bool, len(dst))
	for _, d := range dst {
		have[d] = true
	}
	for _, s := range src {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" || have[s] {
			continue
		}
		have[s] = true
		dst = append(dst, s)
	}
	return dst
}

func isCanonical(label types.SectionLabel) bool {
	for _, s := range builtinSections {
		if s.label == label {
			return true
		}
	}
	return false
}
