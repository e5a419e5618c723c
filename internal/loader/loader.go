// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package loader acquires plain text from resume documents. Supported
// formats are plain text, PDF and DOCX; the returned text is normalized.
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"github.com/pdiddy/resume-parser/internal/normalize"
	"github.com/pdiddy/resume-parser/pkg/types"
)

// MinTextLength is the shortest extracted text treated as readable.
const MinTextLength = 10

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrNotFound          = errors.New("file not found")
	ErrUnreadable        = errors.New("could not extract readable text")
)

// SupportedExtensions lists accepted extensions, lowercase with the dot.
var SupportedExtensions = []string{".txt", ".pdf", ".docx"}

var (
	docxBreakRe = regexp.MustCompile(`</w:p>|<w:br/>|<w:cr/>`)
	docxTabRe   = regexp.MustCompile(`<w:tab/>`)
	xmlTagRe    = regexp.MustCompile(`<[^>]+>`)
)

// IsSupported reports whether name has an accepted extension.
func IsSupported(name string) bool {
	return slices.Contains(SupportedExtensions, strings.ToLower(filepath.Ext(name)))
}

// Info describes the file at path. Missing files yield ErrNotFound.
func Info(path string) (types.FileInfo, error) {
	st, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return types.FileInfo{}, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return types.FileInfo{}, fmt.Errorf("stat %s: %w", path, err)
	}
	info := NewFileInfo(filepath.Base(path), st.Size())
	info.Path = path
	return info, nil
}

// NewFileInfo builds file info from a name and a size. SizeKB is rounded
// to two decimals.
func NewFileInfo(name string, size int64) types.FileInfo {
	return types.FileInfo{
		Filename:    name,
		Extension:   strings.ToLower(filepath.Ext(name)),
		SizeBytes:   size,
		SizeKB:      math.Round(float64(size)/1024*100) / 100,
		IsSupported: IsSupported(name),
	}
}

// Load reads and normalizes the document at path.
func Load(path string) (string, error) {
	if !IsSupported(path) {
		return "", fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return LoadBytes(filepath.Base(path), data)
}

// LoadBytes extracts and normalizes text from data, choosing the decoder
// by the extension of name. Text shorter than MinTextLength characters
// yields ErrUnreadable.
func LoadBytes(name string, data []byte) (string, error) {
	var (
		raw string
		err error
	)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt":
		raw = decodeText(data)
	case ".pdf":
		raw, err = pdfText(data)
	case ".docx":
		raw, err = docxText(data)
	default:
		return "", fmt.Errorf("%s: %w", name, ErrUnsupportedFormat)
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}

	text := normalize.Text(raw)
	if utf8.RuneCountInString(text) < MinTextLength {
		return "", fmt.Errorf("%s: %w", name, ErrUnreadable)
	}
	return text, nil
}

// decodeText drops a UTF-8 byte order mark and replaces invalid sequences.
func decodeText(data []byte) string {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	return strings.ToValidUTF8(string(data), "")
}

func pdfText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("reading pdf: %w", err)
	}
	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("reading pdf page %d: %w", i, err)
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String(), nil
}

func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("reading docx: %w", err)
	}
	defer doc.Close()
	return stripDocxXML(doc.Editable().GetContent()), nil
}

// stripDocxXML turns WordprocessingML into text with one line per
// paragraph.
func stripDocxXML(content string) string {
	content = docxBreakRe.ReplaceAllString(content, "\n")
	content = docxTabRe.ReplaceAllString(content, " ")
	content = xmlTagRe.ReplaceAllString(content, "")
	return html.UnescapeString(content)
}
