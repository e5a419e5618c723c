// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output encodes parse results as JSON or YAML and reads saved
// results back.
package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/resume-parser/pkg/types"
)

// ErrUnknownFormat is returned for an output format other than json or yaml.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat validates a format name. The empty string selects JSON.
func ParseFormat(s string) (types.OutputFormat, error) {
	switch f := types.OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "", types.OutputJSON:
		return types.OutputJSON, nil
	case types.OutputYAML, "yml":
		return types.OutputYAML, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

// FormatFromPath picks YAML for .yaml and .yml files and JSON otherwise.
func FormatFromPath(path string) types.OutputFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return types.OutputYAML
	default:
		return types.OutputJSON
	}
}

// Encode writes v to w. Pretty JSON is indented by two spaces; YAML is
// always block style.
func Encode(w io.Writer, v any, format types.OutputFormat, pretty bool) error {
	switch format {
	case types.OutputJSON, "":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		if pretty {
			enc.SetIndent("", "  ")
		}
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
	case types.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
	return nil
}

// WriteFile encodes v into path, creating parent directories.
func WriteFile(path string, v any, format types.OutputFormat, pretty bool) error {
	var buf bytes.Buffer
	if err := Encode(&buf, v, format, pretty); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ReadResult loads a saved ParseResult, decoding by file extension.
func ReadResult(path string) (types.ParseResult, error) {
	var res types.ParseResult
	data, err := os.ReadFile(path)
	if err != nil {
		return res, fmt.Errorf("reading %s: %w", path, err)
	}
	switch FormatFromPath(path) {
	case types.OutputYAML:
		err = yaml.Unmarshal(data, &res)
	default:
		err = json.Unmarshal(data, &res)
	}
	if err != nil {
		return res, fmt.Errorf("decoding %s: %w", path, err)
	}
	return res, nil
}
