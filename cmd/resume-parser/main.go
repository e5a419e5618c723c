// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the resume-parser CLI.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/resume-parser/internal/logger"
	"github.com/pdiddy/resume-parser/internal/parser"
	"github.com/pdiddy/resume-parser/internal/taxonomy"
	"github.com/pdiddy/resume-parser/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// cfg is populated from defaults, the config file, the environment and
// flags before any subcommand runs.
var cfg = types.DefaultConfig()

// rootCmd is the base command for the resume-parser CLI.
var rootCmd = &cobra.Command{
	Use:   "resume-parser",
	Short: "Rule-based resume parser",
	Long: `resume-parser turns resume documents (PDF, DOCX, plain text) into structured
records: contact details, skills, education, experience, projects and
certifications.

Parsing is deterministic and taxonomy-driven. Use parse for files, serve for
the HTTP API, and sections, classify, and skills to inspect how the parser
sees a document.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading .env: %w", err)
		}
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("reading configuration: %w", err)
		}
		logger.Init(cfg.Log)
		if f := viper.ConfigFileUsed(); f != "" {
			logger.Debug().Str("file", f).Msg("using config file")
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./resume-parser.yaml or ~/.config/resume-parser/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "", "log format: pretty or json")
	rootCmd.PersistentFlags().String("taxonomy", "", "YAML file extending the built-in taxonomy")

	cobra.CheckErr(viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level")))
	cobra.CheckErr(viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format")))
	cobra.CheckErr(viper.BindPFlag("parser.taxonomy_file", rootCmd.PersistentFlags().Lookup("taxonomy")))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("resume-parser")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "resume-parser"))
		}
	}

	setDefaults(types.DefaultConfig())

	viper.SetEnvPrefix("RESUME_PARSER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintln(os.Stderr, "warning: config file:", err)
		}
	}
}

// setDefaults registers every key so that environment overrides apply
// during Unmarshal.
func setDefaults(d types.Config) {
	viper.SetDefault("parser.method", d.Parser.Method)
	viper.SetDefault("parser.max_input_length", d.Parser.MaxInputLength)
	viper.SetDefault("parser.taxonomy_file", d.Parser.TaxonomyFile)
	viper.SetDefault("output.format", string(d.Output.Format))
	viper.SetDefault("output.pretty", d.Output.Pretty)
	viper.SetDefault("batch.workers", d.Batch.Workers)
	viper.SetDefault("server.address", d.Server.Address)
	viper.SetDefault("server.max_body_bytes", d.Server.MaxBodyBytes)
	viper.SetDefault("server.rate_limit", d.Server.RateLimit)
	viper.SetDefault("server.rate_burst", d.Server.RateBurst)
	viper.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)
	viper.SetDefault("log.level", d.Log.Level)
	viper.SetDefault("log.format", d.Log.Format)
}

// newTaxonomy returns the built-in taxonomy, extended by the configured
// overlay file when there is one.
func newTaxonomy() (*taxonomy.Taxonomy, error) {
	if cfg.Parser.TaxonomyFile == "" {
		return taxonomy.Default(), nil
	}
	o, err := taxonomy.LoadOverlay(cfg.Parser.TaxonomyFile)
	if err != nil {
		return nil, err
	}
	logger.Info().
		Str("file", cfg.Parser.TaxonomyFile).
		Int("sections", len(o.Sections)).
		Int("categories", len(o.Skills)).
		Msg("taxonomy overlay loaded")
	return taxonomy.New(taxonomy.WithOverlay(o)), nil
}

// newRegistry returns the strategies available to this process. Only the
// rule-based strategy ships with the binary.
func newRegistry() (*parser.Registry, *taxonomy.Taxonomy, error) {
	tax, err := newTaxonomy()
	if err != nil {
		return nil, nil, err
	}
	return parser.NewRegistry(parser.New(tax)), tax, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
