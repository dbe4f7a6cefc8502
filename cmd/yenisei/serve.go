// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"yenisei/internal/catalog"
	"yenisei/internal/config"
	"yenisei/internal/content"
	"yenisei/internal/handlers"
	"yenisei/internal/metrics"
	"yenisei/internal/middleware"
	"yenisei/internal/query"
	"yenisei/internal/router"
	"yenisei/internal/store"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog API",
		Long: `Load the catalog into the configured store, build the in-memory
snapshot and serve the JSON API. With CONTENT_WATCH set, edits under
CONTENT_DIR are reloaded without a restart.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSource(cfg, func(src store.Source) error {
				return serve(cmd.Context(), cfg, src)
			})
		},
	}
}

func serve(ctx context.Context, c *config.Config, src store.Source) error {
	slog.Info("configuration loaded",
		"env", c.Env,
		"addr", c.Addr(),
		"engine", src.Engine(),
		"content_dir", c.ContentDir,
	)

	media, err := openStorage(ctx, c)
	if err != nil {
		return err
	}
	opts := snapshotOptions(media)

	snap, err := catalog.Open(ctx, src, contentLoader(c), c.SeedOnStart, opts...)
	if err != nil {
		return err
	}
	holder := store.NewHolder(snap)

	m := metrics.New()
	m.SetRecords(snap.Counts())
	m.SetUnknownLabels(snap.UnknownLabels())

	rc, closeCache := openCache(c)
	defer closeCache()

	reloader := &catalog.Reloader{
		Source:   src,
		Holder:   holder,
		Content:  contentLoader(c),
		Options:  opts,
		Cache:    rc,
		Observer: m,
	}
	// Responses cached by an earlier process may describe other content.
	rc.InvalidateAll(ctx)

	if c.ContentWatch {
		if c.ContentDir == "" {
			slog.Warn("CONTENT_WATCH set without CONTENT_DIR, nothing to watch")
		} else {
			w := content.NewWatcher(c.ContentDir, content.DefaultDebounce, func(ctx context.Context) {
				_ = reloader.Reload(ctx)
			})
			go func() {
				if err := w.Run(ctx); err != nil {
					slog.Error("content watcher stopped", "error", err)
				}
			}()
		}
	}

	svc := catalog.New(holder, query.NewSampler(c.RandomSeed))
	api := handlers.NewAPI(svc, m, c.Version, c.PublicURL)

	var limiter *middleware.RateLimiter
	if c.QuizRateLimit > 0 {
		limiter = middleware.NewRateLimiter(c.QuizRateLimit, time.Minute)
		defer limiter.Stop()
	}

	r := router.New(router.Deps{
		API:         api,
		Metrics:     m,
		Cache:       rc,
		QuizLimiter: limiter,
		CORSOrigins: c.CORSOrigins,
	})

	srv := &http.Server{
		Addr:         c.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", c.Addr(), "version", c.Version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen on %s: %w", c.Addr(), err)
	case <-ctx.Done():
		slog.Info("shutdown signal received")
	}

	// Give active requests up to 30 seconds to complete.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}
