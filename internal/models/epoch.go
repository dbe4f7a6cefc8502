// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the catalog entities served by the API: epochs and
// their events, geographic points, gallery images, quiz questions and facts.
// Entities are immutable once loaded.
package models

import "time"

// Default values applied to seeded records that leave a field blank.
const (
	DefaultEpochColor      = "#3B82F6"
	DefaultEventImportance = 5
)

// Epoch is a named historical period. It owns the events that fall inside it:
// removing an epoch removes its events too. Events are expected to fall
// inside the epoch's year range.
type Epoch struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	StartYear   int    `json:"start_year"` // negative years are BCE
	EndYear     int    `json:"end_year"`
	Description string `json:"description"`
	Color       string `json:"color"`
	OrderIndex  int    `json:"order_index"`
}

// Contains reports whether year falls inside the epoch's inclusive range.
func (e *Epoch) Contains(year int) bool {
	return year >= e.StartYear && year <= e.EndYear
}

// Event is a single historical occurrence belonging to exactly one Epoch.
type Event struct {
	ID               int64  `json:"id"`
	EpochID          int64  `json:"epoch_id"`
	Title            string `json:"title"`
	Year             int    `json:"year"`
	DateDescription  string `json:"date_description"`
	Description      string `json:"description"`
	ShortDescription string `json:"short_description"`
	ImageURL         string `json:"image_url"`
	ImageCaption     string `json:"image_caption"`
	Importance       int    `json:"importance"`

	// CreatedAt records when the row was seeded. Provenance only, never served.
	CreatedAt time.Time `json:"-"`
}

// EpochWithEvents is an epoch together with the events it owns, ordered by
// year.
type EpochWithEvents struct {
	Epoch
	Events []Event `json:"events"`
}
