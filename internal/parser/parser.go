// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package parser assembles the extractor outputs into one ParseResult and
// exposes the parsing strategies behind a small registry.
package parser

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/pdiddy/resume-parser/internal/extract"
	"github.com/pdiddy/resume-parser/internal/segment"
	"github.com/pdiddy/resume-parser/internal/taxonomy"
	"github.com/pdiddy/resume-parser/pkg/types"
)

// Method names reported in result metadata.
const (
	MethodRuleBased = "rule_based"
	MethodSemantic  = "semantic_faiss"
)

// Registry keys accepted from the CLI and HTTP API.
const (
	KeyRule     = "rule"
	KeySemantic = "semantic"
)

var (
	// ErrMethodUnavailable is returned for a strategy that is not registered.
	ErrMethodUnavailable = errors.New("parsing method not available")

	// ErrInputTooLarge is returned by CheckInputLength.
	ErrInputTooLarge = errors.New("input text too large")
)

// Strategy turns normalized resume text into a ParseResult.
type Strategy interface {
	Method() string
	Parse(text string) types.ParseResult
}

// RuleBased is the deterministic, taxonomy-driven strategy. It holds no
// per-call state and is safe for concurrent use.
type RuleBased struct {
	tax *taxonomy.Taxonomy
	seg *segment.Segmenter
}

// New returns a rule-based parser over tax.
func New(tax *taxonomy.Taxonomy) *RuleBased {
	return &RuleBased{tax: tax, seg: segment.New(tax)}
}

// Method returns MethodRuleBased.
func (p *RuleBased) Method() string { return MethodRuleBased }

// Parse extracts contact details from the whole text, segments it, and runs
// each section through its extractor. Skills are the skills-section results
// followed by skills mentioned in experience, project and unlabeled
// sections, deduplicated and capped at extract.MaxResultSkills.
func (p *RuleBased) Parse(text string) types.ParseResult {
	res := types.NewParseResult(MethodRuleBased, utf8.RuneCountInString(text))
	if strings.TrimSpace(text) == "" {
		return res
	}

	res.ContactInfo = extract.ExtractContact(p.tax, text)

	seg := p.seg.Segment(text)
	res.Metadata.SectionsDetected = len(seg.Sections)

	var sectionSkills, mentions []string
	for _, s := range seg.Sections {
		body := strings.Join(s.Lines, "\n")
		switch s.Label {
		case types.SectionSkills:
			sectionSkills = append(sectionSkills, extract.ExtractSkills(p.tax, body)...)
		case types.SectionEducation:
			res.Education = append(res.Education, extract.ExtractEducation(p.tax, body)...)
		case types.SectionExperience:
			res.Experience = append(res.Experience, extract.ExtractExperience(p.tax, body)...)
			mentions = append(mentions, extract.ExtractSkillMentions(p.tax, body)...)
		case types.SectionProjects:
			res.Projects = append(res.Projects, extract.ExtractProjects(body)...)
			mentions = append(mentions, extract.ExtractSkillMentions(p.tax, body)...)
		case types.SectionCertifications:
			res.Certifications = append(res.Certifications, extract.ExtractCertifications(body)...)
		default:
			mentions = append(mentions, extract.ExtractSkillMentions(p.tax, body)...)
		}
	}
	res.Skills = extract.MergeSkills(sectionSkills, mentions)
	res.Certifications = uniqueInOrder(res.Certifications)

	return res
}

func uniqueInOrder(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := items[:0]
	for _, it := range items {
		if !seen[it] {
			seen[it] = true
			out = append(out, it)
		}
	}
	return out
}

// CheckInputLength rejects text longer than limit runes. A limit of zero or
// less disables the check.
func CheckInputLength(text string, limit int) error {
	if limit <= 0 {
		return nil
	}
	if n := utf8.RuneCountInString(text); n > limit {
		return fmt.Errorf("%w: %d characters exceeds limit of %d", ErrInputTooLarge, n, limit)
	}
	return nil
}

// Registry maps method keys to strategies. The rule-based strategy is always
// registered under KeyRule.
type Registry struct {
	mu         sync.RWMutex
	strategies map[string]Strategy
}

// NewRegistry returns a registry holding rule under KeyRule.
func NewRegistry(rule *RuleBased) *Registry {
	return &Registry{strategies: map[string]Strategy{KeyRule: rule}}
}

// Register adds or replaces the strategy for key.
func (r *Registry) Register(key string, s Strategy) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.strategies[key] = s
}

// Get returns the strategy for key, or ErrMethodUnavailable.
func (r *Registry) Get(key string) (Strategy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.strategies[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMethodUnavailable, key)
	}
	return s, nil
}

// Keys returns the registered keys in sorted order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.strategies))
	for k := range r.strategies {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
