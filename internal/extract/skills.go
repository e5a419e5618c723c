// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/pdiddy/resume-parser/internal/taxonomy"
)

// skillTechRe is the closed list of technology names picked up anywhere in
// a section, kept as written in the text.
var skillTechRe = regexp.MustCompile(`(?i)\b(?:Python|Java|JavaScript|React|Node\.js|Django|Flask|AWS|Azure|Docker|Kubernetes|SQL|NoSQL|MongoDB|PostgreSQL|MySQL|Git|GitHub|TensorFlow|PyTorch|scikit-learn|Pandas|NumPy|HTML|CSS|TypeScript|Angular|Vue\.js|Spring|Laravel|PHP|Ruby|Go|Rust|C\+\+|C#|\.NET|Scala|Kotlin|Swift|Objective-C|MATLAB|R|Tableau|PowerBI|Elasticsearch|Redis|GraphQL|REST|API|Microservices|Jenkins|CI/CD|Linux|Unix|Windows|MacOS|Agile|Scrum|JIRA|Confluence|Slack|Zoom|Teams)\b`)

var (
	skillListSplitRe = regexp.MustCompile(`[,|•]`)
	skillFillerRe    = regexp.MustCompile(`(?i)^(and|or|with|using)\s+`)
)

// Labels that mark a "Category: a, b, c" line.
var skillCategoryCues = []string{"language", "framework", "librar", "cloud", "database", "tool"}

// Words that disqualify a token from a plain comma list.
var skillFillerWords = []string{"and", "or", "with", "using", "from", "the"}

// ExtractSkills collects skills from a skills section body. Candidates come,
// in order, from taxonomy keywords contained in the text, structured list
// lines, and the technology regex. The result is deduplicated ignoring case,
// first spelling kept, and capped at MaxSectionSkills.
func ExtractSkills(tax *taxonomy.Taxonomy, text string) []string {
	var cands []string
	cands = append(cands, keywordSkills(tax, text)...)
	for _, line := range lines(text) {
		cands = append(cands, lineSkills(line)...)
	}
	cands = append(cands, skillTechRe.FindAllString(text, -1)...)
	return cleanSkills(cands, MaxSectionSkills)
}

// ExtractSkillMentions finds skills named in prose outside a skills section,
// using only the taxonomy keywords and the technology regex.
func ExtractSkillMentions(tax *taxonomy.Taxonomy, text string) []string {
	cands := keywordSkills(tax, text)
	cands = append(cands, skillTechRe.FindAllString(text, -1)...)
	return cleanSkills(cands, MaxSectionSkills)
}

// keywordSkills returns every taxonomy keyword contained in text, ignoring
// case, in declaration order and title-cased.
func keywordSkills(tax *taxonomy.Taxonomy, text string) []string {
	lower := strings.ToLower(text)
	var out []string
	for _, kw := range tax.AllSkillKeywords() {
		if strings.Contains(lower, kw) {
			out = append(out, titleWords(kw))
		}
	}
	return out
}

// lineSkills handles the three list layouts. Only the first layout that
// applies to a line is used.
func lineSkills(line string) []string {
	var out []string
	lower := strings.ToLower(line)

	switch {
	case strings.Contains(line, ":") && containsAny(lower, skillCategoryCues):
		_, value, _ := strings.Cut(line, ":")
		for _, tok := range skillListSplitRe.Split(strings.TrimSpace(value), -1) {
			tok = strings.TrimSpace(tok)
			if n := runeLen(tok); n >= 2 && n <= 25 && isAlnumToken(tok) {
				out = append(out, tok)
			}
		}

	case strings.Contains(line, ",") && len(strings.Split(line, ",")) >= 3:
		for _, tok := range strings.Split(line, ",") {
			tok = strings.TrimSpace(tok)
			n := runeLen(tok)
			if n < 2 || n > 25 || digitInPrefix(tok, 3) {
				continue
			}
			if containsAny(strings.ToLower(tok), skillFillerWords) {
				continue
			}
			out = append(out, tok)
		}

	case strings.Contains(line, "|"):
		for _, tok := range strings.Split(line, "|") {
			tok = strings.TrimSpace(tok)
			if n := runeLen(tok); n >= 2 && n <= 25 {
				out = append(out, tok)
			}
		}
	}
	return out
}

// isAlnumToken reports whether tok is letters and digits once spaces,
// hyphens and dots are removed.
func isAlnumToken(tok string) bool {
	stripped := strings.NewReplacer(" ", "", "-", "", ".", "").Replace(tok)
	if stripped == "" {
		return false
	}
	for _, r := range stripped {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}

func digitInPrefix(s string, n int) bool {
	for i, r := range []rune(s) {
		if i >= n {
			break
		}
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// cleanSkills strips a leading filler word, drops short tokens, and
// deduplicates ignoring case up to limit.
func cleanSkills(cands []string, limit int) []string {
	kept := make([]string, 0, len(cands))
	for _, s := range cands {
		s = strings.TrimSpace(skillFillerRe.ReplaceAllString(s, ""))
		if runeLen(s) >= 2 {
			kept = append(kept, s)
		}
	}
	return uniqueFold(kept, limit)
}
