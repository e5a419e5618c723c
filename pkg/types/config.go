// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ParserConfig holds settings for the parse stage.
type ParserConfig struct {
	// Method selects the strategy: rule, semantic, or both (default rule).
	Method string `json:"method" yaml:"method" mapstructure:"method"`

	// MaxInputLength bounds the normalized text length in characters. The
	// parser itself never truncates; callers reject longer inputs.
	MaxInputLength int `json:"max_input_length" yaml:"max_input_length" mapstructure:"max_input_length"`

	// TaxonomyFile is an optional YAML overlay that extends the built-in
	// section synonyms and skill lists.
	TaxonomyFile string `json:"taxonomy_file,omitempty" yaml:"taxonomy_file,omitempty" mapstructure:"taxonomy_file"`
}

// OutputFormat selects the encoding of parse results.
type OutputFormat string

const (
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

// OutputConfig holds settings for writing results.
type OutputConfig struct {
	Format OutputFormat `json:"format" yaml:"format" mapstructure:"format"`
	Pretty bool         `json:"pretty" yaml:"pretty" mapstructure:"pretty"`
}

// BatchConfig holds settings for parsing many files in one run.
type BatchConfig struct {
	// Workers is the number of files parsed concurrently (default 4).
	Workers int `json:"workers" yaml:"workers" mapstructure:"workers"`
}

// ServerConfig holds settings for the HTTP API.
type ServerConfig struct {
	// Address is the listen address (e.g. "0.0.0.0:5000").
	Address string `json:"address" yaml:"address" mapstructure:"address"`

	// MaxBodyBytes caps the request body size (default 16 MiB).
	MaxBodyBytes int `json:"max_body_bytes" yaml:"max_body_bytes" mapstructure:"max_body_bytes"`

	// RateLimit is the sustained number of parse requests per second; zero
	// disables limiting.
	RateLimit float64 `json:"rate_limit" yaml:"rate_limit" mapstructure:"rate_limit"`

	// RateBurst is the token bucket size for RateLimit.
	RateBurst int `json:"rate_burst" yaml:"rate_burst" mapstructure:"rate_burst"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is a zerolog level name: debug, info, warn, error.
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is "pretty" (console) or "json".
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// Config groups every setting of the tool.
type Config struct {
	Parser ParserConfig `json:"parser" yaml:"parser" mapstructure:"parser"`
	Output OutputConfig `json:"output" yaml:"output" mapstructure:"output"`
	Batch  BatchConfig  `json:"batch" yaml:"batch" mapstructure:"batch"`
	Server ServerConfig `json:"server" yaml:"server" mapstructure:"server"`
	Log    LogConfig    `json:"log" yaml:"log" mapstructure:"log"`
}

// Defaults used when a setting is missing or non-positive.
const (
	DefaultMaxInputLength = 1 << 20
	DefaultWorkers        = 4
	DefaultMaxBodyBytes   = 16 * 1024 * 1024
	DefaultServerAddress  = "0.0.0.0:5000"
)

// DefaultConfig returns the configuration used when no file or flag
// overrides a value.
func DefaultConfig() Config {
	return Config{
		Parser: ParserConfig{
			Method:         "rule",
			MaxInputLength: DefaultMaxInputLength,
		},
		Output: OutputConfig{
			Format: OutputJSON,
		},
		Batch: BatchConfig{
			Workers: DefaultWorkers,
		},
		Server: ServerConfig{
			Address:         DefaultServerAddress,
			MaxBodyBytes:    DefaultMaxBodyBytes,
			RateLimit:       10,
			RateBurst:       20,
			ShutdownTimeout: 5 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "pretty",
		},
	}
}
