// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the records shared between the parser stages, the CLI
// and the HTTP API.
package types

// SectionLabel names a canonical resume section.
type SectionLabel string

const (
	SectionExperience     SectionLabel = "experience"
	SectionEducation      SectionLabel = "education"
	SectionSkills         SectionLabel = "skills"
	SectionProjects       SectionLabel = "projects"
	SectionCertifications SectionLabel = "certifications"
	SectionUnknown        SectionLabel = "unknown"
)

// ContactInfo holds the candidate's contact details. An empty field means
// the value was not found.
type ContactInfo struct {
	Name     string `json:"name" yaml:"name"`
	Email    string `json:"email" yaml:"email"`
	Phone    string `json:"phone" yaml:"phone"`
	LinkedIn string `json:"linkedin" yaml:"linkedin"`
	GitHub   string `json:"github" yaml:"github"`
}

// EducationEntry is one degree or institution block.
type EducationEntry struct {
	Degree       string `json:"degree" yaml:"degree"`
	Institution  string `json:"institution" yaml:"institution"`
	Year         string `json:"year" yaml:"year"`
	FieldOfStudy string `json:"field_of_study" yaml:"field_of_study"`
	Location     string `json:"location" yaml:"location"`

	// RawText is the line that opened the entry.
	RawText string `json:"raw_text" yaml:"raw_text"`
}

// ExperienceEntry is one role.
type ExperienceEntry struct {
	Title    string `json:"title" yaml:"title"`
	Company  string `json:"company" yaml:"company"`
	Duration string `json:"duration" yaml:"duration"`
	Location string `json:"location" yaml:"location"`

	// Description lists bullet and long descriptive lines in source order.
	Description []string `json:"description" yaml:"description"`

	// RawText is the title line that opened the entry.
	RawText string `json:"raw_text" yaml:"raw_text"`
}

// ProjectEntry is one project block.
type ProjectEntry struct {
	Name         string   `json:"name" yaml:"name"`
	Description  []string `json:"description" yaml:"description"`
	Technologies []string `json:"technologies" yaml:"technologies"`
	Links        []string `json:"links" yaml:"links"`
	RawText      string   `json:"raw_text" yaml:"raw_text"`
}

// Metadata describes how a ParseResult was produced.
type Metadata struct {
	// ParsingMethod is "rule_based" for this engine and "semantic_faiss"
	// for the embedding-based strategy.
	ParsingMethod string `json:"parsing_method" yaml:"parsing_method"`

	// TextLength is the input length in characters (runes).
	TextLength int `json:"text_length" yaml:"text_length"`

	// SectionsDetected counts the sections the segmenter emitted.
	SectionsDetected int `json:"sections_detected" yaml:"sections_detected"`

	// ModelUsed and ChunksProcessed are only reported by the semantic strategy.
	ModelUsed       string `json:"model_used,omitempty" yaml:"model_used,omitempty"`
	ChunksProcessed int    `json:"chunks_processed,omitempty" yaml:"chunks_processed,omitempty"`
}

// ParseResult is the structured record produced from one resume.
type ParseResult struct {
	ContactInfo `yaml:",inline"`

	Skills         []string          `json:"skills" yaml:"skills"`
	Education      []EducationEntry  `json:"education" yaml:"education"`
	Experience     []ExperienceEntry `json:"experience" yaml:"experience"`
	Projects       []ProjectEntry    `json:"projects" yaml:"projects"`
	Certifications []string          `json:"certifications" yaml:"certifications"`
	Metadata       Metadata          `json:"metadata" yaml:"metadata"`
}

// NewParseResult returns a result with every list initialised so that it
// serializes as empty arrays rather than null.
func NewParseResult(method string, textLength int) ParseResult {
	return ParseResult{
		Skills:         []string{},
		Education:      []EducationEntry{},
		Experience:     []ExperienceEntry{},
		Projects:       []ProjectEntry{},
		Certifications: []string{},
		Metadata: Metadata{
			ParsingMethod: method,
			TextLength:    textLength,
		},
	}
}

// FileInfo describes an uploaded or loaded document.
type FileInfo struct {
	Path        string  `json:"path,omitempty" yaml:"path,omitempty"`
	Filename    string  `json:"filename" yaml:"filename"`
	Extension   string  `json:"extension" yaml:"extension"`
	SizeBytes   int64   `json:"size_bytes" yaml:"size_bytes"`
	SizeKB      float64 `json:"size_kb" yaml:"size_kb"`
	IsSupported bool    `json:"is_supported" yaml:"is_supported"`
}
