// Copyright 2026 Author(s) of MCP Any
// SPDX-License-Identifier: Apache-2.0

// Package main implements the uploader MCP server binary.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mcpany/uploader/pkg/app"
	"github.com/mcpany/uploader/pkg/appconsts"
	"github.com/mcpany/uploader/pkg/config"
	"github.com/mcpany/uploader/pkg/logging"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     appconsts.Name,
		Short:   "MCP server exposing file upload tools over stdio",
		Long: `Serves the Model Context Protocol over standard input/output and exposes
three tools backed by the uploads API: upload_file, upload_files, and
upload_files_from_urls.

The uploads-API access token is required. Set UPLOADER_API_KEY (a .env file
in the working directory is honored) or pass --api-key.`,
		Version:       appconsts.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			// Missing .env is fine; explicit env vars and flags still apply.
			_ = godotenv.Load()

			viper.SetEnvPrefix("UPLOADER")
			viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
			viper.AutomaticEnv()
			return viper.BindPFlags(cmd.Flags())
		},
		RunE: run,
	}

	cmd.Flags().String("api-key", "", "uploads-API access token (env: UPLOADER_API_KEY)")
	cmd.Flags().String("base-url", config.DefaultBaseURL, "uploads-API endpoint")
	cmd.Flags().String("log-level", "info", "log level: debug, info, warn, error")
	cmd.Flags().String("log-format", "text", "log format: text or json")
	cmd.Flags().Duration("timeout", config.DefaultTimeout, "per-request timeout for uploads-API calls")

	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Stdout carries the MCP protocol stream; logs must go to stderr.
	logging.Init(logging.ParseLevel(cfg.LogLevel), os.Stderr, cfg.LogFormat)

	application, err := app.New(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appconsts.Name, err)
		os.Exit(1)
	}
}
