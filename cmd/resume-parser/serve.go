// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/resume-parser/internal/logger"
	"github.com/pdiddy/resume-parser/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the parse API over HTTP",
	Long: `Serve starts the HTTP API:

  POST /api/parse, POST /upload   multipart upload (file, method)
  POST /api/parse/text            JSON {"text": "...", "method": "rule"}
  GET  /health                    service status

The server stops gracefully on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("address", "", "listen address (default 0.0.0.0:5000)")
	serveCmd.Flags().Float64("rate-limit", 0, "parse requests per second, 0 disables limiting")

	cobra.CheckErr(viper.BindPFlag("server.address", serveCmd.Flags().Lookup("address")))
	cobra.CheckErr(viper.BindPFlag("server.rate_limit", serveCmd.Flags().Lookup("rate-limit")))

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	reg, _, err := newRegistry()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg.Server, cfg.Parser.MaxInputLength, reg, logger.Logger)
	return srv.Run(ctx)
}
