// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"errors"
	"fmt"
)

// Importance bounds for events.
const (
	MinImportance = 1
	MaxImportance = 10
)

// Dataset is a complete set of catalog records as produced by seeding.
// A store is always built from a whole Dataset, never patched in place.
type Dataset struct {
	Epochs    []Epoch
	Events    []Event
	Points    []GeoPoint
	Images    []GalleryImage
	Questions []QuizQuestion
	Facts     []Fact
}

// Counts returns the number of records per kind, keyed by kind name.
func (d *Dataset) Counts() map[string]int {
	return map[string]int{
		"epochs":     len(d.Epochs),
		"events":     len(d.Events),
		"geo_points": len(d.Points),
		"gallery":    len(d.Images),
		"quiz":       len(d.Questions),
		"facts":      len(d.Facts),
	}
}

// Validate checks the read-side invariants: unique identities per kind,
// every event resolves to an epoch, importance within bounds, non-negative
// point values and a valid answer key on every question. All violations are
// reported together.
func (d *Dataset) Validate() error {
	var errs []error

	epochs := make(map[int64]bool, len(d.Epochs))
	for _, e := range d.Epochs {
		if epochs[e.ID] {
			errs = append(errs, fmt.Errorf("epoch %d: duplicate id", e.ID))
		}
		epochs[e.ID] = true
		if e.Name == "" {
			errs = append(errs, fmt.Errorf("epoch %d: name is required", e.ID))
		}
	}

	seen := make(map[int64]bool, len(d.Events))
	for _, ev := range d.Events {
		if seen[ev.ID] {
			errs = append(errs, fmt.Errorf("event %d: duplicate id", ev.ID))
		}
		seen[ev.ID] = true
		if !epochs[ev.EpochID] {
			errs = append(errs, fmt.Errorf("event %d: epoch %d does not exist", ev.ID, ev.EpochID))
		}
		if ev.Importance < MinImportance || ev.Importance > MaxImportance {
			errs = append(errs, fmt.Errorf("event %d: importance %d out of range [%d,%d]",
				ev.ID, ev.Importance, MinImportance, MaxImportance))
		}
	}

	errs = append(errs, duplicateIDs("geo point", d.Points, func(p GeoPoint) int64 { return p.ID })...)
	errs = append(errs, duplicateIDs("gallery image", d.Images, func(g GalleryImage) int64 { return g.ID })...)
	errs = append(errs, duplicateIDs("fact", d.Facts, func(f Fact) int64 { return f.ID })...)
	errs = append(errs, duplicateIDs("question", d.Questions, func(q QuizQuestion) int64 { return q.ID })...)

	for _, q := range d.Questions {
		if _, err := ParseAnswer(string(q.CorrectAnswer)); err != nil {
			errs = append(errs, fmt.Errorf("question %d: %w", q.ID, err))
		}
		if q.Points < 0 {
			errs = append(errs, fmt.Errorf("question %d: negative points %d", q.ID, q.Points))
		}
	}

	return errors.Join(errs...)
}

func duplicateIDs[T any](kind string, items []T, id func(T) int64) []error {
	var errs []error
	seen := make(map[int64]bool, len(items))
	for _, it := range items {
		i := id(it)
		if seen[i] {
			errs = append(errs, fmt.Errorf("%s %d: duplicate id", kind, i))
		}
		seen[i] = true
	}
	return errs
}

// UnknownLabels counts the points and questions whose type or difficulty is
// outside the known set, keyed by field. Such records are still served.
func (d *Dataset) UnknownLabels() map[string]int {
	out := map[string]int{"point_type": 0, "difficulty": 0}
	for _, p := range d.Points {
		if !p.Type.Known() {
			out["point_type"]++
		}
	}
	for _, q := range d.Questions {
		if !q.Difficulty.Known() {
			out["difficulty"]++
		}
	}
	return out
}
