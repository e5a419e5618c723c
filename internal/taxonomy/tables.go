// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package taxonomy

import "github.com/pdiddy/resume-parser/pkg/types"

// Built-in tables. Declaration order matters: header classification breaks
// ties by first-encountered label and skill extraction emits keywords in
// this order.

type sectionSynonyms struct {
	label    types.SectionLabel
	synonyms []string
}

var builtinSections = []sectionSynonyms{
	{types.SectionExperience, []string{
		"experience", "work experience", "professional experience", "employment",
		"employment history", "work history", "career history", "professional history",
		"work background", "professional background", "career background",
		"professional summary", "career summary", "work summary",
		"professional achievements", "career achievements", "accomplishments",
		"positions held", "roles", "professional roles", "career highlights",
		"employment record", "work record", "professional record",
	}},
	{types.SectionEducation, []string{
		"education", "educational background", "academic background",
		"academic qualifications", "educational qualifications", "qualifications",
		"academic history", "educational history", "academic record",
		"academic credentials", "educational credentials", "credentials",
		"academic achievements", "educational achievements",
		"degrees", "academic degrees", "university", "college",
		"schooling", "academic training", "formal education",
	}},
	{types.SectionSkills, []string{
		"skills", "technical skills", "professional skills", "core skills",
		"key skills", "relevant skills", "core competencies", "competencies",
		"technical competencies", "professional competencies",
		"expertise", "technical expertise", "areas of expertise",
		"proficiencies", "technical proficiencies", "abilities",
		"technical abilities", "capabilities", "technical capabilities",
		"knowledge", "technical knowledge", "specializations",
		"programming skills", "software skills", "technology skills",
	}},
	{types.SectionProjects, []string{
		"projects", "personal projects", "professional projects",
		"academic projects", "key projects", "notable projects",
		"selected projects", "relevant projects", "major projects",
		"portfolio", "work samples", "project experience",
		"development projects", "software projects", "technical projects",
		"research projects", "case studies", "implementations",
	}},
	{types.SectionCertifications, []string{
		"certifications", "certificates", "professional certifications",
		"technical certifications", "industry certifications",
		"credentials", "professional credentials", "licenses",
		"professional licenses", "accreditations", "qualifications",
		"professional qualifications", "awards", "honors",
		"achievements", "recognition", "professional recognition",
	}},
}

type skillCategory struct {
	name   string
	skills []string
}

var builtinSkills = []skillCategory{
	{"programming_languages", []string{
		"python", "java", "javascript", "typescript", "c++", "c#", "c",
		"go", "rust", "ruby", "php", "swift", "kotlin", "scala",
		"r", "matlab", "perl", "shell", "bash", "powershell",
		"objective-c", "dart", "lua", "haskell", "clojure",
	}},
	{"web_technologies", []string{
		"html", "css", "html5", "css3", "sass", "scss", "less",
		"bootstrap", "tailwind", "react", "angular", "vue",
		"vue.js", "react.js", "angular.js", "jquery", "node.js",
		"express", "express.js", "next.js", "nuxt.js", "gatsby",
		"svelte", "ember", "backbone",
	}},
	{"frameworks_libraries", []string{
		"django", "flask", "fastapi", "spring", "spring boot",
		"laravel", "symfony", "codeigniter", "rails", "ruby on rails",
		"asp.net", ".net", "dotnet", "tensorflow", "pytorch",
		"keras", "scikit-learn", "pandas", "numpy", "opencv",
	}},
	{"databases", []string{
		"mysql", "postgresql", "sqlite", "mongodb", "redis",
		"elasticsearch", "oracle", "sql server", "cassandra",
		"dynamodb", "neo4j", "couchdb", "influxdb", "mariadb",
	}},
	{"cloud_platforms", []string{
		"aws", "amazon web services", "azure", "microsoft azure",
		"gcp", "google cloud", "google cloud platform",
		"heroku", "digitalocean", "linode", "vultr",
	}},
	{"devops_tools", []string{
		"docker", "kubernetes", "jenkins", "gitlab ci", "github actions",
		"terraform", "ansible", "puppet", "chef", "vagrant",
		"prometheus", "grafana", "elk stack", "nginx", "apache",
	}},
	{"version_control", []string{
		"git", "github", "gitlab", "bitbucket", "svn", "mercurial",
	}},
	{"operating_systems", []string{
		"linux", "ubuntu", "centos", "debian", "windows", "macos",
		"unix", "fedora", "arch linux", "red hat",
	}},
}

// Contact pattern groups, tried in order.
var (
	emailPatterns = []string{
		`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`,
		`\b[A-Za-z0-9._%+-]+\s*@\s*[A-Za-z0-9.-]+\s*\.\s*[A-Z|a-z]{2,}\b`,
	}

	// The parenthesized North-American pattern comes first; its three
	// capture groups drive the (AAA) BBB-CCCC formatting.
	phonePatterns = []string{
		`\+?1?[-.\s]?\(?([0-9]{3})\)?[-.\s]?([0-9]{3})[-.\s]?([0-9]{4})`,
		`\+?[1-9]\d{1,14}`,
		`\b\d{3}[-.\s]?\d{3}[-.\s]?\d{4}\b`,
		`\(\d{3}\)\s*\d{3}[-.\s]?\d{4}`,
	}

	linkedInPatterns = []string{
		`linkedin\.com/in/[\w-]+`,
		`www\.linkedin\.com/in/[\w-]+`,
		`/in/[\w-]+`,
		`linkedin\.com/pub/[\w-]+`,
	}

	gitHubPatterns = []string{
		`github\.com/[\w-]+`,
		`www\.github\.com/[\w-]+`,
		`git\.hub/[\w-]+`,
	}
)

var degreePatterns = []string{
	`\b(Bachelor|B\.?A\.?|B\.?S\.?|B\.?Sc\.?|B\.?E\.?|B\.?Tech\.?)\b`,
	`\b(Master|M\.?A\.?|M\.?S\.?|M\.?Sc\.?|M\.?E\.?|M\.?Tech\.?|MBA)\b`,
	`\b(Doctor|Ph\.?D\.?|D\.?Phil\.?|Ph\.?D|Doctorate)\b`,
	`\b(Associate|A\.?A\.?|A\.?S\.?)\b`,
	`\bJD\b|\bJ\.D\.\b|\bJuris Doctor\b`,
	`\bMD\b|\bM\.D\.\b|\bDoctor of Medicine\b`,
}

// Keyword sets matched as lowercase substrings by the entry extractors.
var (
	degreeKeywords = []string{
		"bachelor", "master", "phd", "doctorate", "bs", "ms",
		"ba", "ma", "mba", "btech", "bsc", "msc",
	}

	institutionKeywords = []string{"university", "college", "institute", "school"}

	studyFields = []string{"computer science", "data analytics", "finance", "engineering", "business"}

	jobTitleKeywords = []string{
		"engineer", "developer", "analyst", "manager", "assistant", "director",
		"coordinator", "specialist", "consultant", "researcher", "intern",
	}

	employerKeywords = []string{"university", "corp", "inc", "llc"}

	companyIndicators = []string{
		"inc", "corp", "corporation", "company", "ltd", "llc",
		"technologies", "systems", "solutions", "services",
		"enterprises", "group", "international", "global",
	}
)
