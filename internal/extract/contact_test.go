// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/resume-parser/internal/taxonomy"
	"github.com/pdiddy/resume-parser/pkg/types"
)

func loadSample(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile("../../testdata/sample_resume.txt")
	require.NoError(t, err)
	return string(data)
}

func TestExtractContact_SampleResume(t *testing.T) {
	got := ExtractContact(taxonomy.Default(), loadSample(t))

	assert.Equal(t, types.ContactInfo{
		Name:     "John Smith",
		Email:    "john.smith@email.com",
		Phone:    "(555) 123-4567",
		LinkedIn: "linkedin.com/in/johnsmith",
	}, got)
}

func TestExtractName(t *testing.T) {
	tax := taxonomy.Default()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"first plausible line", "Jane Doe\nData Engineer", "Jane Doe"},
		{"skips heading words", "RESUME\nJane Doe", "Jane Doe"},
		{"skips contact lines", "jane@doe.io\n555-123-4567\nJane Quinn Doe", "Jane Quinn Doe"},
		{"skips locations", "Seattle, WA\nJane Doe", "Jane Doe"},
		{"single capitalized word", "Madonna", "Madonna"},
		{"single lowercase word", "madonna", ""},
		{"short words rejected", "J D Smith", ""},
		{"too many words", "A line with far too many words in it", ""},
		{"beyond the first ten lines", "-\n-\n-\n-\n-\n-\n-\n-\n-\n-\nJane Doe", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractName(tax, tt.text))
		})
	}
}

func TestExtractPhone(t *testing.T) {
	tax := taxonomy.Default()

	tests := []struct {
		text string
		want string
	}{
		{"(555) 123-4567", "(555) 123-4567"},
		{"Phone: 555.123.4567", "(555) 123-4567"},
		{"Call 5551234567 today", "(555) 123-4567"},
		{"+1 555 123 4567", "(555) 123-4567"},
		{"Ext 42", "42"},
		{"no digits here", ""},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractPhone(tax, tt.text))
		})
	}
}

func TestExtractEmail(t *testing.T) {
	tax := taxonomy.Default()

	assert.Equal(t, "john.smith@email.com", ExtractEmail(tax, "Contact: john.smith@email.com | 555"))
	assert.Equal(t, "", ExtractEmail(tax, "john at email dot com"))
}

func TestExtractContact_Links(t *testing.T) {
	tax := taxonomy.Default()

	got := ExtractContact(tax, "Jane Doe\nhttps://www.linkedin.com/in/jane-doe\ngithub.com/janedoe")
	assert.Equal(t, "linkedin.com/in/jane-doe", got.LinkedIn)
	assert.Equal(t, "github.com/janedoe", got.GitHub)

	got = ExtractContact(tax, "Profiles: /in/jdoe")
	assert.Equal(t, "/in/jdoe", got.LinkedIn)
	assert.Empty(t, got.GitHub)
}
