// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/pdiddy/resume-parser/internal/loader"
	"github.com/pdiddy/resume-parser/internal/normalize"
	"github.com/pdiddy/resume-parser/internal/parser"
	"github.com/pdiddy/resume-parser/pkg/types"
)

// ParseResponse is a parse result with upload details attached.
type ParseResponse struct {
	types.ParseResult
	FileInfo *FileSummary `json:"file_info,omitempty"`
}

// FileSummary is the part of types.FileInfo echoed to clients.
type FileSummary struct {
	Filename  string  `json:"filename"`
	SizeKB    float64 `json:"size_kb"`
	Extension string  `json:"extension"`
}

type textRequest struct {
	Text   string `json:"text"`
	Method string `json:"method"`
}

var semanticUnavailable = utils.H{
	"error":            "Semantic parsing is not available in this deployment. Please use rule-based parsing instead.",
	"reason":           "semantic parsing requires an embedding model that is not configured",
	"suggested_action": "Use rule-based parsing method",
	"rule_based_benefits": []string{
		"Fast processing (< 1 second)",
		"Low memory usage",
		"High accuracy for structured resumes",
		"Reliable and stable",
	},
}

func supportedFormats() []string {
	out := make([]string, 0, len(loader.SupportedExtensions))
	for _, ext := range loader.SupportedExtensions {
		out = append(out, strings.TrimPrefix(ext, "."))
	}
	return out
}

func (s *Server) parseUpload(c context.Context, ctx *app.RequestContext) {
	fh, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": "No file uploaded"})
		return
	}
	if fh.Filename == "" {
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": "No file selected"})
		return
	}
	if !loader.IsSupported(fh.Filename) {
		ctx.JSON(consts.StatusBadRequest, utils.H{
			"error": fmt.Sprintf("Invalid file type. Only %s files are allowed.", strings.Join(supportedFormats(), ", ")),
		})
		return
	}

	strategy, ok := s.strategy(ctx, ctx.PostForm("method"))
	if !ok {
		return
	}

	f, err := fh.Open()
	if err != nil {
		s.serverError(ctx, fmt.Errorf("opening upload: %w", err))
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		s.serverError(ctx, fmt.Errorf("reading upload: %w", err))
		return
	}

	text, err := loader.LoadBytes(fh.Filename, data)
	if err != nil {
		s.log.Warn().Err(err).Str("filename", fh.Filename).Msg("text extraction failed")
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": "No readable text found in the file."})
		return
	}

	res, ok := s.parse(ctx, strategy, text)
	if !ok {
		return
	}
	info := loader.NewFileInfo(fh.Filename, int64(len(data)))
	ctx.JSON(consts.StatusOK, ParseResponse{
		ParseResult: res,
		FileInfo:    &FileSummary{Filename: info.Filename, SizeKB: info.SizeKB, Extension: info.Extension},
	})
}

func (s *Server) parseText(c context.Context, ctx *app.RequestContext) {
	var req textRequest
	if err := json.Unmarshal(ctx.Request.Body(), &req); err != nil {
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": "Invalid JSON body"})
		return
	}

	strategy, ok := s.strategy(ctx, req.Method)
	if !ok {
		return
	}

	text := normalize.Text(req.Text)
	if utf8.RuneCountInString(text) < loader.MinTextLength {
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": "No readable text found in the request."})
		return
	}

	res, ok := s.parse(ctx, strategy, text)
	if !ok {
		return
	}
	ctx.JSON(consts.StatusOK, ParseResponse{ParseResult: res})
}

// strategy resolves the method form value and writes the error response
// when it cannot.
func (s *Server) strategy(ctx *app.RequestContext, method string) (parser.Strategy, bool) {
	if method == "" {
		method = parser.KeyRule
	}
	st, err := s.reg.Get(method)
	switch {
	case err == nil:
		return st, true
	case method == parser.KeySemantic:
		ctx.JSON(consts.StatusBadRequest, semanticUnavailable)
	default:
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": fmt.Sprintf("Invalid parsing method: %s", method)})
	}
	return nil, false
}

func (s *Server) parse(ctx *app.RequestContext, st parser.Strategy, text string) (types.ParseResult, bool) {
	if err := parser.CheckInputLength(text, s.maxInput); err != nil {
		ctx.JSON(consts.StatusRequestEntityTooLarge, utils.H{"error": err.Error()})
		return types.ParseResult{}, false
	}
	return st.Parse(text), true
}

func (s *Server) serverError(ctx *app.RequestContext, err error) {
	s.log.Error().Err(err).Msg("request failed")
	ctx.JSON(consts.StatusInternalServerError, utils.H{"error": fmt.Sprintf("Server error: %v", err)})
}
