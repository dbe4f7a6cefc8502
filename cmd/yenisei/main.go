// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the Yenisei catalog. It serves the
// river history API and carries the maintenance commands that migrate and
// seed the catalog store, check content files and upload media.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"yenisei/internal/config"
)

var version = "dev"

// cfg is loaded once before any subcommand runs.
var cfg *config.Config

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "yenisei",
		Short:         "Content catalog and quiz API for the history of the Yenisei river",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfg, err = config.Load(); err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			setupLogger(cfg, verbose)
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newSeedCmd(),
		newContentCmd(),
		newMediaCmd(),
	)

	return rootCmd.ExecuteContext(ctx)
}

// setupLogger installs the default logger: JSON in production, text
// elsewhere.
func setupLogger(c *config.Config, verbose bool) {
	level := slog.LevelInfo
	if verbose || c.IsDev() {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if c.Env == "production" {
		h = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(h))
}
