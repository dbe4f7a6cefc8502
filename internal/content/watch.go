// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits for a burst of file events to
// settle before triggering a reload.
const DefaultDebounce = 500 * time.Millisecond

// Watcher triggers a callback when content files under a directory change.
type Watcher struct {
	dir      string
	debounce time.Duration
	onChange func(context.Context)
}

// NewWatcher creates a watcher for dir. onChange runs on the watcher's
// goroutine, so reloads never overlap.
func NewWatcher(dir string, debounce time.Duration, onChange func(context.Context)) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{dir: dir, debounce: debounce, onChange: onChange}
}

// Run watches until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	if err := addRecursive(fw, w.dir); err != nil {
		return err
	}
	slog.Info("watching content", "dir", w.dir)

	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := addRecursive(fw, ev.Name); err != nil {
						slog.Warn("watch new directory failed", "dir", ev.Name, "error", err)
					}
					continue
				}
			}
			if !IsContentFile(ev.Name) || ev.Has(fsnotify.Chmod) && !ev.Has(fsnotify.Write) {
				continue
			}
			slog.Debug("content change", "file", ev.Name, "op", ev.Op.String())
			fire = time.After(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			slog.Warn("content watcher error", "error", err)

		case <-fire:
			fire = nil
			w.onChange(ctx)
		}
	}
}

func addRecursive(fw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if err := fw.Add(path); err != nil {
				return fmt.Errorf("watch %s: %w", path, err)
			}
		}
		return nil
	})
}
