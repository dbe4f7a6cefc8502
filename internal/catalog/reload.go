// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"yenisei/internal/models"
	"yenisei/internal/store"
)

// ReloadObserver is told how each reload ended.
type ReloadObserver interface {
	ReloadSucceeded(counts, unknown map[string]int)
	ReloadFailed()
}

// Invalidator drops responses rendered from an earlier snapshot.
type Invalidator interface {
	InvalidateAll(ctx context.Context) int
}

// Reloader rebuilds the served snapshot from content. A reload reads the
// content, writes it to the source (replacing what is stored), builds a new
// snapshot from what the source returns and swaps it in. Any failure leaves
// the current snapshot in place.
type Reloader struct {
	Source   store.Source
	Holder   *store.Holder
	Content  func() (*models.Dataset, error)
	Options  []store.Option
	Cache    Invalidator    // optional
	Observer ReloadObserver // optional

	mu sync.Mutex
}

// Reload runs one reload. Concurrent calls are serialized.
func (r *Reloader) Reload(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	start := time.Now()
	snap, err := r.build(ctx)
	if err != nil {
		if r.Observer != nil {
			r.Observer.ReloadFailed()
		}
		slog.Error("content reload failed, keeping current catalog", "error", err)
		return err
	}

	r.Holder.Swap(snap)
	dropped := 0
	if r.Cache != nil {
		dropped = r.Cache.InvalidateAll(ctx)
	}
	counts := snap.Counts()
	if r.Observer != nil {
		r.Observer.ReloadSucceeded(counts, snap.UnknownLabels())
	}
	slog.Info("content reloaded",
		"engine", r.Source.Engine(),
		"counts", counts,
		"cache_entries_dropped", dropped,
		"elapsed", time.Since(start),
	)
	return nil
}

func (r *Reloader) build(ctx context.Context) (*store.Snapshot, error) {
	ds, err := r.Content()
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	stored, err := r.Source.Sync(ctx, ds, true)
	if err != nil {
		return nil, fmt.Errorf("sync %s: %w", r.Source.Engine(), err)
	}
	return store.NewSnapshot(stored, r.Options...)
}

// Open builds the first snapshot. With seed set the content is written to
// the source unless it already holds data; otherwise the source must
// already be seeded. The memory engine is always seeded.
func Open(ctx context.Context, src store.Source, content func() (*models.Dataset, error), seed bool, opts ...store.Option) (*store.Snapshot, error) {
	var (
		ds  *models.Dataset
		err error
	)
	if seed || src.Engine() == store.EngineMemory {
		var fresh *models.Dataset
		if fresh, err = content(); err != nil {
			return nil, fmt.Errorf("load content: %w", err)
		}
		ds, err = src.Sync(ctx, fresh, false)
	} else {
		ds, err = src.Load(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s catalog: %w", src.Engine(), err)
	}
	return store.NewSnapshot(ds, opts...)
}
