// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store holds the loaded catalog. A Snapshot is an immutable,
// indexed view of one Dataset; a Holder publishes the current Snapshot to
// concurrent readers and lets a reload replace it in one step.
package store

import (
	"cmp"
	"fmt"
	"slices"
	"sync/atomic"
	"time"

	"yenisei/internal/models"
)

// generations numbers snapshots in build order.
var generations atomic.Uint64

// ImageResolver turns a stored image reference into a URL clients can fetch.
type ImageResolver func(ref string) string

// Option configures NewSnapshot.
type Option func(*snapshotOptions)

type snapshotOptions struct {
	resolve ImageResolver
}

// WithImageResolver rewrites every image reference through fn while the
// snapshot is built.
func WithImageResolver(fn ImageResolver) Option {
	return func(o *snapshotOptions) { o.resolve = fn }
}

// Snapshot is a read-only catalog. Every collection is kept in identity
// order, which is the natural store order used to break ties. Slices
// returned by a Snapshot are shared and must not be modified.
type Snapshot struct {
	epochs    []models.Epoch
	events    []models.Event
	points    []models.GeoPoint
	images    []models.GalleryImage
	questions []models.QuizQuestion
	facts     []models.Fact

	epochIdx    map[int64]int
	eventIdx    map[int64]int
	pointIdx    map[int64]int
	imageIdx    map[int64]int
	questionIdx map[int64]int
	factIdx     map[int64]int

	// events per epoch, ordered by year
	byEpoch map[int64][]models.Event

	loadedAt   time.Time
	generation uint64
}

// NewSnapshot validates ds and builds an indexed snapshot from a private copy
// of it.
func NewSnapshot(ds *models.Dataset, opts ...Option) (*Snapshot, error) {
	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("build snapshot: %w", err)
	}

	var o snapshotOptions
	for _, opt := range opts {
		opt(&o)
	}

	s := &Snapshot{
		epochs:    sortedByID(ds.Epochs, func(e models.Epoch) int64 { return e.ID }),
		events:    sortedByID(ds.Events, func(e models.Event) int64 { return e.ID }),
		points:    sortedByID(ds.Points, func(p models.GeoPoint) int64 { return p.ID }),
		images:    sortedByID(ds.Images, func(g models.GalleryImage) int64 { return g.ID }),
		questions: sortedByID(ds.Questions, func(q models.QuizQuestion) int64 { return q.ID }),
		facts:     sortedByID(ds.Facts, func(f models.Fact) int64 { return f.ID }),
		loadedAt:  time.Now(),

		generation: generations.Add(1),
	}

	if o.resolve != nil {
		for i := range s.events {
			s.events[i].ImageURL = o.resolve(s.events[i].ImageURL)
		}
		for i := range s.points {
			s.points[i].ImageURL = o.resolve(s.points[i].ImageURL)
		}
		for i := range s.images {
			s.images[i].ImageURL = o.resolve(s.images[i].ImageURL)
		}
	}

	s.epochIdx = index(s.epochs, func(e models.Epoch) int64 { return e.ID })
	s.eventIdx = index(s.events, func(e models.Event) int64 { return e.ID })
	s.pointIdx = index(s.points, func(p models.GeoPoint) int64 { return p.ID })
	s.imageIdx = index(s.images, func(g models.GalleryImage) int64 { return g.ID })
	s.questionIdx = index(s.questions, func(q models.QuizQuestion) int64 { return q.ID })
	s.factIdx = index(s.facts, func(f models.Fact) int64 { return f.ID })

	s.byEpoch = make(map[int64][]models.Event, len(s.epochs))
	for _, ev := range s.events {
		s.byEpoch[ev.EpochID] = append(s.byEpoch[ev.EpochID], ev)
	}
	for id, evs := range s.byEpoch {
		slices.SortStableFunc(evs, func(a, b models.Event) int { return cmp.Compare(a.Year, b.Year) })
		s.byEpoch[id] = evs
	}

	return s, nil
}

func sortedByID[T any](items []T, id func(T) int64) []T {
	out := slices.Clone(items)
	if out == nil {
		out = []T{}
	}
	slices.SortStableFunc(out, func(a, b T) int { return cmp.Compare(id(a), id(b)) })
	return out
}

func index[T any](items []T, id func(T) int64) map[int64]int {
	m := make(map[int64]int, len(items))
	for i, it := range items {
		m[id(it)] = i
	}
	return m
}

func lookup[T any](items []T, idx map[int64]int, id int64) (T, bool) {
	i, ok := idx[id]
	if !ok {
		var zero T
		return zero, false
	}
	return items[i], true
}

// Epochs returns all epochs.
func (s *Snapshot) Epochs() []models.Epoch { return s.epochs }

// Events returns all events.
func (s *Snapshot) Events() []models.Event { return s.events }

// GeoPoints returns all geographic points.
func (s *Snapshot) GeoPoints() []models.GeoPoint { return s.points }

// GalleryImages returns all gallery images.
func (s *Snapshot) GalleryImages() []models.GalleryImage { return s.images }

// Questions returns all quiz questions.
func (s *Snapshot) Questions() []models.QuizQuestion { return s.questions }

// Facts returns all facts.
func (s *Snapshot) Facts() []models.Fact { return s.facts }

func (s *Snapshot) Epoch(id int64) (models.Epoch, bool) { return lookup(s.epochs, s.epochIdx, id) }

func (s *Snapshot) Event(id int64) (models.Event, bool) { return lookup(s.events, s.eventIdx, id) }

func (s *Snapshot) GeoPoint(id int64) (models.GeoPoint, bool) {
	return lookup(s.points, s.pointIdx, id)
}

func (s *Snapshot) GalleryImage(id int64) (models.GalleryImage, bool) {
	return lookup(s.images, s.imageIdx, id)
}

func (s *Snapshot) Question(id int64) (models.QuizQuestion, bool) {
	return lookup(s.questions, s.questionIdx, id)
}

func (s *Snapshot) Fact(id int64) (models.Fact, bool) { return lookup(s.facts, s.factIdx, id) }

// EpochWithEvents joins an epoch with the events it owns, ordered by year.
// The event list is empty, not nil, for an epoch without events.
func (s *Snapshot) EpochWithEvents(id int64) (models.EpochWithEvents, bool) {
	e, ok := s.Epoch(id)
	if !ok {
		return models.EpochWithEvents{}, false
	}
	events := slices.Clone(s.byEpoch[id])
	if events == nil {
		events = []models.Event{}
	}
	return models.EpochWithEvents{Epoch: e, Events: events}, true
}

func (s *Snapshot) dataset() *models.Dataset {
	return &models.Dataset{
		Epochs:    s.epochs,
		Events:    s.events,
		Points:    s.points,
		Images:    s.images,
		Questions: s.questions,
		Facts:     s.facts,
	}
}

// Counts returns the number of records per kind.
func (s *Snapshot) Counts() map[string]int { return s.dataset().Counts() }

// UnknownLabels counts served records whose point type or difficulty is not
// in the known set.
func (s *Snapshot) UnknownLabels() map[string]int { return s.dataset().UnknownLabels() }

// Generation identifies the snapshot. Every snapshot built in the process
// gets a larger number than the ones before it.
func (s *Snapshot) Generation() uint64 { return s.generation }

// LoadedAt is when the snapshot was built.
func (s *Snapshot) LoadedAt() time.Time { return s.loadedAt }
