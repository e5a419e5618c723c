// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/resume-parser/internal/taxonomy"
	"github.com/pdiddy/resume-parser/pkg/types"
)

func TestExtractEducation(t *testing.T) {
	tax := taxonomy.Default()

	tests := []struct {
		name string
		text string
		want []types.EducationEntry
	}{
		{
			name: "institution line completes the degree entry",
			text: "Bachelor of Science in Computer Science\nStanford University | 2018",
			want: []types.EducationEntry{{
				Degree:      "Bachelor of Science in Computer Science",
				Institution: "Stanford University | 2018",
				Year:        "2018",
				RawText:     "Bachelor of Science in Computer Science",
			}},
		},
		{
			name: "two degrees",
			text: "Master of Business Administration\nHarvard Business School\n2019\n" +
				"Bachelor of Science\nUniversity of Texas\nAustin, TX\nField: Finance\n2015",
			want: []types.EducationEntry{
				{
					Degree:       "Master of Business Administration",
					Institution:  "Harvard Business School",
					Year:         "2019",
					FieldOfStudy: "Business",
					RawText:      "Master of Business Administration",
				},
				{
					Degree:       "Bachelor of Science",
					Institution:  "University of Texas",
					Year:         "2015",
					FieldOfStudy: "Finance",
					Location:     "Austin, TX",
					RawText:      "Bachelor of Science",
				},
			},
		},
		{
			name: "degree pattern trigger",
			text: "JD in Law\n2012",
			want: []types.EducationEntry{{
				Degree:  "JD in Law",
				Year:    "2012",
				RawText: "JD in Law",
			}},
		},
		{
			name: "four-digit year wins over the month range",
			text: "Bachelor of Arts\n09/2014-05/2018",
			want: []types.EducationEntry{{
				Degree:  "Bachelor of Arts",
				Year:    "2014",
				RawText: "Bachelor of Arts",
			}},
		},
		{
			name: "month range is the year when no graduation year matches",
			text: "Bachelor of Arts\n09/1895-06/1899",
			want: []types.EducationEntry{{
				Degree:  "Bachelor of Arts",
				Year:    "09/1895-06/1899",
				RawText: "Bachelor of Arts",
			}},
		},
		{
			name: "lines before a trigger are ignored",
			text: "Dean's list\nHonors program",
			want: []types.EducationEntry{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractEducation(tax, tt.text))
		})
	}
}

func TestExtractExperience_SampleSection(t *testing.T) {
	text := "Senior Software Engineer | TechCorp Inc | 2020-2023\n" +
		"• Developed web applications using Python and React\n" +
		"• Led a team of 5 developers\n" +
		"• Implemented CI/CD pipelines"

	got := ExtractExperience(taxonomy.Default(), text)

	require.Len(t, got, 1)
	assert.Equal(t, types.ExperienceEntry{
		Title:    "Senior Software Engineer | TechCorp Inc | 2020-2023",
		Company:  "TechCorp Inc",
		Duration: "2020-2023",
		Description: []string{
			"• Developed web applications using Python and React",
			"• Led a team of 5 developers",
			"• Implemented CI/CD pipelines",
		},
		RawText: "Senior Software Engineer | TechCorp Inc | 2020-2023",
	}, got[0])
}

func TestExtractExperience_LocationLineBecomesCompany(t *testing.T) {
	text := "Software Engineer\nSeattle, WA\nPortland, OR\n01/2020-05/2022"

	got := ExtractExperience(taxonomy.Default(), text)

	require.Len(t, got, 1)
	assert.Equal(t, "Seattle, WA", got[0].Company)
	assert.Equal(t, "Portland, OR", got[0].Location)
	assert.Equal(t, "01/2020-05/2022", got[0].Duration)
	assert.Empty(t, got[0].Description)
}

func TestExtractExperience_MultipleRoles(t *testing.T) {
	long := "Built dashboards for the finance team tracking weekly revenue metrics."
	text := "Data Analyst\nGlobex LLC\n" + long + "\n" +
		"Product Manager | Initech Inc | 2018–2020\n- Owned roadmap"

	got := ExtractExperience(taxonomy.Default(), text)

	require.Len(t, got, 2)
	assert.Equal(t, "Data Analyst", got[0].Title)
	assert.Equal(t, "Globex LLC", got[0].Company)
	assert.Equal(t, []string{long}, got[0].Description)

	assert.Equal(t, "Initech Inc", got[1].Company)
	assert.Equal(t, "2018–2020", got[1].Duration)
	assert.Equal(t, []string{"- Owned roadmap"}, got[1].Description)
}

func TestExtractExperience_Duration(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "month range", text: "Software Engineer\n01/2020-05/2022", want: "01/2020-05/2022"},
		{name: "year range", text: "Software Engineer\n2018-2020", want: "2018-2020"},
		{name: "month to named month", text: "Software Engineer\n06/2019-March 2021", want: "06/2019-March 2021"},
		{name: "first duration line is kept", text: "Software Engineer\n2018-2020\n01/2021-12/2022", want: "2018-2020"},
		{name: "open-ended range is not a duration", text: "Software Engineer\nJan 2020 - Present", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractExperience(taxonomy.Default(), tt.text)
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0].Duration)
			assert.Empty(t, got[0].Company)
		})
	}
}

func TestExtractEntries_OverlayKeywords(t *testing.T) {
	tax := taxonomy.New(taxonomy.WithOverlay(taxonomy.Overlay{
		Keywords: taxonomy.OverlayKeywords{
			JobTitles:    []string{"Barista"},
			Institutions: []string{"conservatory"},
			StudyFields:  []string{"music theory"},
		},
	}))

	tests := []struct {
		name    string
		tax     *taxonomy.Taxonomy
		wantExp []types.ExperienceEntry
		wantEdu []types.EducationEntry
	}{
		{
			name:    "built-in keywords",
			tax:     taxonomy.Default(),
			wantExp: []types.ExperienceEntry{},
			wantEdu: []types.EducationEntry{},
		},
		{
			name: "overlay keywords",
			tax:  tax,
			wantExp: []types.ExperienceEntry{{
				Title:       "Head Barista",
				Company:     "Blue Bottle LLC",
				Description: []string{},
				RawText:     "Head Barista",
			}},
			wantEdu: []types.EducationEntry{{
				Institution:  "Royal Conservatory",
				FieldOfStudy: "Music Theory",
				RawText:      "Royal Conservatory",
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantExp, ExtractExperience(tt.tax, "Head Barista\nBlue Bottle LLC"))
			assert.Equal(t, tt.wantEdu, ExtractEducation(tt.tax, "Royal Conservatory\nFocus: Music Theory"))
		})
	}
}

func TestExtractExperience_BulletIsNotATitle(t *testing.T) {
	got := ExtractExperience(taxonomy.Default(), "• Managed engineers\n• Hired developers")
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestExtractProjects_SampleSection(t *testing.T) {
	text := "E-commerce Platform\n" +
		"• Built scalable web application using React and Django\n" +
		"• Integrated payment processing with Stripe"

	got := ExtractProjects(text)

	require.Len(t, got, 1)
	assert.Equal(t, types.ProjectEntry{
		Name: "E-commerce Platform",
		Description: []string{
			"• Built scalable web application using React and Django",
			"• Integrated payment processing with Stripe",
		},
		Technologies: []string{"React", "Django"},
		Links:        []string{},
		RawText:      "E-commerce Platform",
	}, got[0])
}

func TestExtractProjects_LinksAndTechnologies(t *testing.T) {
	text := "Resume Parser - Demo Link\n" +
		"• Python and FastAPI service deployed on AWS\n" +
		"• Source at github.com/jdoe/resume-parser\n" +
		"Chat App\n" +
		"• Uses OpenAI and openai models with python"

	got := ExtractProjects(text)

	require.Len(t, got, 2)

	assert.Equal(t, "Resume Parser", got[0].Name)
	assert.Equal(t, []string{"Python", "FastAPI", "AWS", "github"}, got[0].Technologies)
	assert.Equal(t, []string{
		"Resume Parser - Demo Link",
		"github.com/jdoe/resume-parser",
	}, got[0].Links)

	assert.Equal(t, "Chat App", got[1].Name)
	assert.Equal(t, []string{"OpenAI", "python"}, got[1].Technologies)
}

func TestExtractProjects_NoTitle(t *testing.T) {
	got := ExtractProjects("• A bullet with no project above it")
	assert.Empty(t, got)
}

func TestExtractCertifications(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "sample section",
			text: "AWS Certified Solutions Architect\nCertified Kubernetes Administrator",
			want: []string{"AWS Certified Solutions Architect", "Certified Kubernetes Administrator"},
		},
		{
			name: "keyword fallback keeps the whole line",
			text: "• Google Data Analytics Professional Certificate, Coursera",
			want: []string{"Google Data Analytics Professional Certificate, Coursera"},
		},
		{
			name: "acronym certification",
			text: "- PMP - Project Management Professional",
			want: []string{"PMP - Project Management Professional"},
		},
		{
			name: "trailing separators trimmed",
			text: "Oracle Java SE License |",
			want: []string{"Oracle Java SE License"},
		},
		{
			name: "duplicates collapse",
			text: "Certified Scrum Master\nCertified Scrum Master",
			want: []string{"Certified Scrum Master"},
		},
		{
			name: "short results dropped",
			text: "AWS",
			want: []string{},
		},
		{
			name: "unrelated lines",
			text: "Hiking and chess",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractCertifications(tt.text))
		})
	}
}
