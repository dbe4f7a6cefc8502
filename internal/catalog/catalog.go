// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package catalog composes the store, query and quiz packages into the
// named read operations the HTTP API serves. Every call reads exactly one
// snapshot, so a concurrent reload never mixes old and new records in one
// response.
package catalog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"yenisei/internal/query"
	"yenisei/internal/store"
)

// ErrNotFound is matched by every lookup failure returned from Service.
var ErrNotFound = errors.New("not found")

// Kinds reported in NotFoundError.
const (
	KindEpoch    = "epoch"
	KindEvent    = "event"
	KindGeoPoint = "geo point"
	KindImage    = "gallery image"
	KindQuestion = "question"
	KindFact     = "fact"
)

// Result size limits.
const (
	MajorCitiesLimit = 10
	DefaultQuizCount = 10
	MaxQuizCount     = 50
)

// NotFoundError names the record that could not be resolved. ID is zero when
// the lookup was not by identity (a random pick from an empty set).
type NotFoundError struct {
	Kind string
	ID   int64
}

func (e *NotFoundError) Error() string {
	if e.ID == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, ErrNotFound)
	}
	return fmt.Sprintf("%s %d: %s", e.Kind, e.ID, ErrNotFound)
}

// Is makes errors.Is(err, ErrNotFound) hold for every NotFoundError.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func notFound(kind string, id int64) error {
	return &NotFoundError{Kind: kind, ID: id}
}

// Service answers catalog queries against the published snapshot.
type Service struct {
	holder  *store.Holder
	sampler *query.Sampler
}

// New creates a Service reading from holder and drawing random picks from
// sampler.
func New(holder *store.Holder, sampler *query.Sampler) *Service {
	return &Service{holder: holder, sampler: sampler}
}

func (s *Service) snap() *store.Snapshot {
	return s.holder.Load()
}

// Generation identifies the snapshot currently served. It changes on every
// reload.
func (s *Service) Generation() uint64 {
	return s.snap().Generation()
}

// Summary describes the loaded catalog.
type Summary struct {
	Counts   map[string]int `json:"counts"`
	LoadedAt time.Time      `json:"loaded_at"`
}

// Summary returns record counts for the current snapshot.
func (s *Service) Summary() Summary {
	snap := s.snap()
	return Summary{Counts: snap.Counts(), LoadedAt: snap.LoadedAt()}
}

func trim(v string) string { return strings.TrimSpace(v) }
