// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the parsers over HTTP with hertz.
package server

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/google/uuid"
	hertzzerolog "github.com/hertz-contrib/logger/zerolog"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/pdiddy/resume-parser/internal/parser"
	"github.com/pdiddy/resume-parser/pkg/types"
)

// ServiceName is reported by the health endpoint.
const ServiceName = "resume-parser"

// RequestIDHeader carries the per-request identifier.
const RequestIDHeader = "X-Request-ID"

const defaultShutdownTimeout = 5 * time.Second

// Server serves the parse API.
type Server struct {
	h        *server.Hertz
	reg      *parser.Registry
	cfg      types.ServerConfig
	maxInput int
	limiter  *rate.Limiter
	log      zerolog.Logger
}

// New builds a server over reg. maxInput bounds the text length in runes;
// zero disables the check. The hertz logger is routed through log.
func New(cfg types.ServerConfig, maxInput int, reg *parser.Registry, log zerolog.Logger) *Server {
	if cfg.Address == "" {
		cfg.Address = types.DefaultServerAddress
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = types.DefaultMaxBodyBytes
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	hlog.SetLogger(hertzzerolog.From(log))

	s := &Server{
		h: server.New(
			server.WithHostPorts(cfg.Address),
			server.WithMaxRequestBodySize(cfg.MaxBodyBytes),
			server.WithHandleMethodNotAllowed(true),
		),
		reg:      reg,
		cfg:      cfg,
		maxInput: maxInput,
		log:      log,
	}
	if cfg.RateLimit > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), max(cfg.RateBurst, 1))
	}
	s.routes()
	return s
}

// Hertz returns the underlying engine.
func (s *Server) Hertz() *server.Hertz { return s.h }

func (s *Server) routes() {
	s.h.Use(s.requestID)

	s.h.GET("/health", s.health)

	limited := []app.HandlerFunc{s.rateLimit}
	s.h.POST("/upload", append(limited, s.parseUpload)...)

	api := s.h.Group("/api", limited...)
	api.POST("/parse", s.parseUpload)
	api.POST("/parse/text", s.parseText)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		s.log.Info().Str("address", s.cfg.Address).Msg("http server listening")
		errc <- s.h.Run()
	}()

	select {
	case err := <-errc:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	s.log.Info().Msg("http server shutting down")
	if err := s.h.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}
	return nil
}

func (s *Server) requestID(c context.Context, ctx *app.RequestContext) {
	id := string(ctx.GetHeader(RequestIDHeader))
	if id == "" {
		id = uuid.NewString()
	}
	ctx.Set("request_id", id)
	ctx.Response.Header.Set(RequestIDHeader, id)

	start := time.Now()
	ctx.Next(c)
	s.log.Info().
		Str("request_id", id).
		Str("method", string(ctx.Method())).
		Str("path", string(ctx.Path())).
		Int("status", ctx.Response.StatusCode()).
		Dur("elapsed", time.Since(start)).
		Msg("request")
}

func (s *Server) rateLimit(c context.Context, ctx *app.RequestContext) {
	if s.limiter != nil && !s.limiter.Allow() {
		ctx.AbortWithStatusJSON(consts.StatusTooManyRequests, utils.H{"error": "rate limit exceeded"})
		return
	}
	ctx.Next(c)
}

func (s *Server) health(c context.Context, ctx *app.RequestContext) {
	status := "disabled"
	if _, err := s.reg.Get(parser.KeySemantic); err == nil {
		status = "enabled"
	}
	ctx.JSON(consts.StatusOK, utils.H{
		"status":            "healthy",
		"service":           ServiceName,
		"supported_formats": supportedFormats(),
		"parsing_methods":   s.reg.Keys(),
		"semantic_status":   status,
	})
}
