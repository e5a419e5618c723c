// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", " \t\n\n ", ""},
		{"collapses spaces and tabs", "John \t  Smith", "John Smith"},
		{"trims lines", "  Skills  \n  Go, Rust ", "Skills\nGo, Rust"},
		{"limits blank lines", "A\n\n\n\n\nB", "A\n\nB"},
		{"keeps single blank line", "A\n\nB", "A\n\nB"},
		{"strips control characters", "Jo\x00hn\x07 Smith\x1f", "John Smith"},
		{"strips C1 controls", "Ski\u0085lls", "Skills"},
		{"crlf endings", "A\r\nB\rC", "A\nB\nC"},
		{"composes accents", "Jose\u0301", "Jos\u00e9"},
		{"blank lines made of spaces", "A\n   \n \n\t\nB", "A\n\nB"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Text(tc.in))
		})
	}
}

func TestText_Idempotent(t *testing.T) {
	in := "  John   Smith \n\n\n\n Experience\t\tSection \r\n• Built things  "
	once := Text(in)
	assert.Equal(t, once, Text(once))
}
