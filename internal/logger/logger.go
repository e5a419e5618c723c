// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logger configures the process-wide zerolog logger. Logs go to
// stderr so that parse results on stdout stay machine-readable.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pdiddy/resume-parser/pkg/types"
)

// Logger is the configured logger. Init replaces it.
var Logger = log.Logger

// FormatPretty selects the human-readable console writer.
const FormatPretty = "pretty"

// Init sets the global level and output format. Unknown levels fall back
// to info.
func Init(cfg types.LogConfig) {
	InitWithWriter(cfg, os.Stderr)
}

// InitWithWriter is Init with an explicit destination.
func InitWithWriter(cfg types.LogConfig, w io.Writer) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	out := w
	if cfg.Format == FormatPretty {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}

	Logger = zerolog.New(out).Level(level).With().Timestamp().Logger()
	log.Logger = Logger
}

func Debug() *zerolog.Event { return Logger.Debug() }
func Info() *zerolog.Event  { return Logger.Info() }
func Warn() *zerolog.Event  { return Logger.Warn() }
func Error() *zerolog.Event { return Logger.Error() }
