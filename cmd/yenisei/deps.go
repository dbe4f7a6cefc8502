// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"context"
	"fmt"
	"log/slog"

	"yenisei/internal/cache"
	"yenisei/internal/config"
	"yenisei/internal/content"
	"yenisei/internal/models"
	"yenisei/internal/storage"
	"yenisei/internal/store"
)

// withSource opens the configured catalog store, runs fn and closes the
// store.
func withSource(c *config.Config, fn func(store.Source) error) error {
	src, err := store.NewSource(store.SourceConfig{
		Engine:      c.StoreEngine,
		SQLitePath:  c.SQLitePath,
		PostgresDSN: c.PostgresDSN(),
	})
	if err != nil {
		return fmt.Errorf("open %s store: %w", c.StoreEngine, err)
	}
	defer func() {
		if err := src.Close(); err != nil {
			slog.Warn("close store", "error", err)
		}
	}()
	return fn(src)
}

// contentLoader reads the configured content directory, or the embedded
// dataset when none is set.
func contentLoader(c *config.Config) func() (*models.Dataset, error) {
	return func() (*models.Dataset, error) {
		return content.Load(c.ContentDir)
	}
}

// openStorage connects object storage. It returns nil when storage is not
// configured.
func openStorage(ctx context.Context, c *config.Config) (*storage.Client, error) {
	client, err := storage.New(ctx, storage.Config{
		Endpoint:  c.S3Endpoint,
		Region:    c.S3Region,
		AccessKey: c.S3AccessKey,
		SecretKey: c.S3SecretKey,
		Bucket:    c.S3Bucket,
		PublicURL: c.S3PublicURL,
	})
	if err != nil {
		return nil, err
	}
	if client == nil {
		slog.Warn("s3 storage not configured, image references are served as is")
		return nil, nil
	}
	slog.Info("s3 storage connected", "endpoint", c.S3Endpoint, "bucket", client.Bucket())
	return client, nil
}

// snapshotOptions resolves image object keys through storage when it is
// configured.
func snapshotOptions(media *storage.Client) []store.Option {
	if media == nil {
		return nil
	}
	return []store.Option{store.WithImageResolver(media.Resolve)}
}

// openCache connects the response cache. A missing or unreachable Valkey
// disables caching rather than failing startup; the returned close
// function is always safe to call.
func openCache(c *config.Config) (*cache.ResponseCache, func()) {
	if !c.CacheEnabled() {
		slog.Info("response cache disabled")
		return nil, func() {}
	}
	client, err := cache.ConnectValkey(c.ValkeyHost, c.ValkeyPort, c.ValkeyPassword, c.ValkeyDB)
	if err != nil {
		slog.Warn("valkey unavailable, response cache disabled", "error", err)
		return nil, func() {}
	}
	return cache.NewResponseCache(client, c.CacheTTL), func() { client.Close() }
}
