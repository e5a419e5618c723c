// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/resume-parser/internal/loader"
	"github.com/pdiddy/resume-parser/internal/output"
	"github.com/pdiddy/resume-parser/internal/parser"
	"github.com/pdiddy/resume-parser/internal/segment"
	"github.com/pdiddy/resume-parser/internal/taxonomy"
	"github.com/pdiddy/resume-parser/pkg/types"
)

func TestWriteResult(t *testing.T) {
	res := types.NewParseResult(parser.MethodRuleBased, 10)
	res.Name = "Jane Doe"

	t.Run("stdout", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeResult(&buf, "", true, "cv.pdf", res, types.OutputJSON))
		assert.Contains(t, buf.String(), `"name":"Jane Doe"`)
	})

	t.Run("single file follows extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "result.yaml")
		require.NoError(t, writeResult(nil, path, true, "cv.pdf", res, types.OutputJSON))

		got, err := output.ReadResult(path)
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", got.Name)
	})

	t.Run("directory for several inputs", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, writeResult(nil, dir, false, "/in/jane_cv.docx", res, types.OutputYAML))

		_, err := os.Stat(filepath.Join(dir, "jane_cv.yaml"))
		require.NoError(t, err)
	})
}

func TestCheckResultPaths(t *testing.T) {
	tests := []struct {
		name    string
		inputs  []string
		format  types.OutputFormat
		wantErr string
	}{
		{name: "distinct base names", inputs: []string{"a/jane.pdf", "a/john.pdf"}, format: types.OutputJSON},
		{name: "same base name in two directories", inputs: []string{"a/cv.pdf", "b/cv.pdf"}, format: types.OutputJSON, wantErr: "inputs a/cv.pdf and b/cv.pdf"},
		{name: "same base name with different extensions", inputs: []string{"cv.pdf", "notes.txt", "cv.docx"}, format: types.OutputYAML, wantErr: "cv.yaml"},
		{name: "repeated input", inputs: []string{"cv.txt", "cv.txt"}, format: types.OutputJSON, wantErr: "cv.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkResultPaths("out", tt.inputs, tt.format)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSemanticError(t *testing.T) {
	err := semanticError(fmt.Errorf("%w: %q", parser.ErrMethodUnavailable, "semantic"))
	require.ErrorIs(t, err, parser.ErrMethodUnavailable)
	assert.Contains(t, err.Error(), "--method rule")

	other := errors.New("boom")
	assert.Equal(t, other, semanticError(other))
}

func TestNewTaxonomy_Overlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxonomy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("skills:\n  - category: data_tools\n    skills: [dbt, airflow]\n"), 0o644))

	saved := cfg
	t.Cleanup(func() { cfg = saved })
	cfg.Parser.TaxonomyFile = path

	tax, err := newTaxonomy()
	require.NoError(t, err)
	assert.Equal(t, "data_tools", tax.CategorizeSkill("Airflow"))

	cfg.Parser.TaxonomyFile = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = newTaxonomy()
	require.Error(t, err)
}

func TestVersionString(t *testing.T) {
	tests := []struct {
		name    string
		release string
		info    *debug.BuildInfo
		want    string
	}{
		{name: "no build info", release: "dev", want: "resume-parser dev"},
		{
			name:    "toolchain only",
			release: "v1.2.0",
			info:    &debug.BuildInfo{GoVersion: "go1.24.1"},
			want:    "resume-parser v1.2.0 go1.24.1",
		},
		{
			name:    "clean revision",
			release: "v1.2.0",
			info: &debug.BuildInfo{GoVersion: "go1.24.1", Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "0123456789abcdef0123"},
				{Key: "vcs.time", Value: "2026-03-01T10:00:00Z"},
				{Key: "vcs.modified", Value: "false"},
			}},
			want: "resume-parser v1.2.0 go1.24.1 rev 0123456789ab 2026-03-01T10:00:00Z",
		},
		{
			name:    "modified tree",
			release: "dev",
			info: &debug.BuildInfo{Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc123"},
				{Key: "vcs.modified", Value: "true"},
			}},
			want: "resume-parser dev rev abc123-dirty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, versionString(tt.release, tt.info))
		})
	}
}

func TestWriteClassification(t *testing.T) {
	tax := taxonomy.Default()
	seg := segment.New(tax)

	tests := []struct {
		name  string
		line  string
		wants []string
	}{
		{
			name:  "exact header",
			line:  "Work Experience",
			wants: []string{"header=true", "label=experience", "confidence=1.00", "field=experience", "opens_section=true"},
		},
		{
			name:  "overlapping synonym below the bar",
			line:  "Projects & Achievements",
			wants: []string{"header=false", "label=unknown", "field=projects", "opens_section=false"},
		},
		{
			name:  "unrelated line",
			line:  "Hobbies",
			wants: []string{"header=false", "field=unknown", "opens_section=false"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			writeClassification(&buf, tax, seg, tt.line, taxonomy.DefaultHeaderThreshold)
			for _, want := range tt.wants {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestWriteSynonyms(t *testing.T) {
	tax := taxonomy.Default()

	var buf bytes.Buffer
	writeSynonyms(&buf, tax)

	got := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, got, len(tax.Labels()))
	assert.True(t, strings.HasPrefix(got[0], string(tax.Labels()[0])))
	assert.Contains(t, buf.String(), "work experience")
}

func TestSectionsFileInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Resume.TXT")
	require.NoError(t, os.WriteFile(path, make([]byte, 2048), 0o644))

	info, err := loader.Info(path)
	require.NoError(t, err)

	var buf bytes.Buffer
	writeFileInfo(&buf, info)
	assert.Equal(t, "file: Resume.TXT (.txt, 2.00 KB)\n", buf.String())
}
