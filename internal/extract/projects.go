// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"

	"github.com/pdiddy/resume-parser/pkg/types"
)

// projectTechRe is broader than skillTechRe: it adds ML and LLM tooling.
var projectTechRe = regexp.MustCompile(`(?i)\b(?:Python|Java|JavaScript|React|Node\.js|Django|Flask|FastAPI|AWS|Azure|Docker|Kubernetes|SQL|NoSQL|MongoDB|PostgreSQL|MySQL|Git|GitHub|TensorFlow|PyTorch|scikit-learn|Pandas|NumPy|HTML|CSS|TypeScript|Angular|Vue\.js|Spring|Laravel|PHP|Ruby|Go|Rust|C\+\+|C#|\.NET|OpenCV|Whisper|GPT|LLM|API|REST|GraphQL|Microservices|Jenkins|CI/CD|Linux|Unix|Tailwind|Bootstrap|Groq|OpenAI|Gemini|LLaVA|VGG16|ResNet|CNN|Deep Learning|Machine Learning|AI|NLP|Computer Vision)\b`)

var (
	projectLinkCueRe = regexp.MustCompile(`(?i)\s+(?:demo link|live app)`)
	projectURLRe     = regexp.MustCompile(`(?i)(?:https?://|(?:www\.)?github\.com/)[^\s,;|)]+`)
)

var (
	projectLinkCues    = []string{"demo link", "live app", "github"}
	projectIndicators  = []string{"demo link", "live app", "github", "project", "app", "system", "platform", "tool"}
	projectFillerWords = []string{"using", "with", "and", "the", "implemented"}
)

const (
	projectTitleMaxRunes  = 120
	projectTitleMaxWords  = 8
	projectDescriptionMin = 30
)

// ExtractProjects scans a projects section with a single open entry. A short
// unbulleted line with a link cue, or a terse title naming a project-like
// thing, opens a new entry.
func ExtractProjects(text string) []types.ProjectEntry {
	out := []types.ProjectEntry{}
	var cur *types.ProjectEntry
	flush := func() {
		if cur != nil {
			out = append(out, *cur)
		}
		cur = nil
	}

	for _, line := range lines(text) {
		if isProjectTitle(line) {
			flush()
			cur = newProject(line)
			continue
		}
		if cur == nil {
			continue
		}

		if isBullet(line) || runeLen(line) > projectDescriptionMin {
			cur.Description = append(cur.Description, line)
			for _, tech := range projectTechRe.FindAllString(line, -1) {
				cur.Technologies = appendFold(cur.Technologies, tech)
			}
		}
		addProjectLinks(cur, line)
	}
	flush()

	return out
}

func isProjectTitle(line string) bool {
	if isBullet(line) || runeLen(line) >= projectTitleMaxRunes {
		return false
	}
	lower := strings.ToLower(line)
	if containsAny(lower, projectLinkCues) {
		return true
	}
	terse := len(strings.Fields(line)) <= projectTitleMaxWords && !containsAny(lower, projectFillerWords)
	return terse && containsAny(lower, projectIndicators)
}

func newProject(line string) *types.ProjectEntry {
	name := strings.TrimSpace(projectLinkCueRe.Split(line, 2)[0])
	if strings.HasSuffix(name, "-") {
		name = strings.TrimSpace(strings.TrimSuffix(name, "-"))
	}

	p := &types.ProjectEntry{
		Name:         name,
		Description:  []string{},
		Technologies: []string{},
		Links:        []string{},
		RawText:      line,
	}

	lower := strings.ToLower(line)
	if strings.Contains(lower, "demo link") || strings.Contains(lower, "live app") {
		p.Links = append(p.Links, line)
	}
	addProjectLinks(p, line)
	return p
}

// addProjectLinks records each URL on line once.
func addProjectLinks(p *types.ProjectEntry, line string) {
	for _, u := range projectURLRe.FindAllString(line, -1) {
		p.Links = appendFold(p.Links, u)
	}
}

// appendFold appends s unless list already holds it, ignoring case.
func appendFold(list []string, s string) []string {
	for _, have := range list {
		if strings.EqualFold(have, s) {
			return list
		}
	}
	return append(list, s)
}
