// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// response.go provides a Valkey-backed cache of API responses. Catalog
// responses only change when content is reloaded, so entries are dropped
// wholesale after every reload rather than tracked per record.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// KeyPrefix is the Valkey key prefix for cached responses.
	KeyPrefix = "api:"

	// DefaultTTL is how long a response stays cached.
	DefaultTTL = 5 * time.Minute
)

// Entry is a cached response body with its content type.
type Entry struct {
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// ResponseCache stores API responses in Valkey. A nil *ResponseCache is a
// valid, disabled cache: every lookup misses and every write is dropped.
type ResponseCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResponseCache creates a response cache backed by the given Valkey client.
func NewResponseCache(client *redis.Client, ttl time.Duration) *ResponseCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ResponseCache{client: client, ttl: ttl}
}

// Get retrieves a cached response. Errors are logged and reported as a miss.
func (rc *ResponseCache) Get(ctx context.Context, key string) (Entry, bool) {
	if rc == nil {
		return Entry{}, false
	}
	val, err := rc.client.Get(ctx, KeyPrefix+key).Bytes()
	if err == redis.Nil {
		return Entry{}, false
	}
	if err != nil {
		slog.Warn("response cache get error", "key", key, "error", err)
		return Entry{}, false
	}

	var e Entry
	if err := json.Unmarshal(val, &e); err != nil {
		slog.Warn("response cache decode error", "key", key, "error", err)
		return Entry{}, false
	}
	slog.Debug("response cache hit", "key", key)
	return e, true
}

// Set stores a response with the configured TTL.
func (rc *ResponseCache) Set(ctx context.Context, key string, e Entry) {
	if rc == nil {
		return
	}
	val, err := json.Marshal(e)
	if err != nil {
		slog.Warn("response cache encode error", "key", key, "error", err)
		return
	}
	if err := rc.client.Set(ctx, KeyPrefix+key, val, rc.ttl).Err(); err != nil {
		slog.Warn("response cache set error", "key", key, "error", err)
	}
}

// InvalidateAll removes every cached response by scanning for the prefix.
// It returns the number of keys deleted.
func (rc *ResponseCache) InvalidateAll(ctx context.Context) int {
	if rc == nil {
		return 0
	}
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := rc.client.Scan(ctx, cursor, KeyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("response cache scan error", "error", err)
			return deleted
		}
		if len(keys) > 0 {
			if err := rc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("response cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("response cache cleared", "deleted", deleted)
	}
	return deleted
}

// Enabled reports whether the cache is backed by a client.
func (rc *ResponseCache) Enabled() bool {
	return rc != nil
}
