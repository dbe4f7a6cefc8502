// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"yenisei/internal/models"
	"yenisei/internal/query"
)

// EventFilter narrows ListEvents. Zero values mean "no filter".
type EventFilter struct {
	EpochID *int64
	Search  string
	Page    query.Page
}

// Epochs returns every epoch ordered by order index.
func (s *Service) Epochs() []models.Epoch {
	return query.Sorted(s.snap().Epochs(), query.By(func(e models.Epoch) int { return e.OrderIndex }, query.Ascending))
}

// Epoch returns an epoch together with its events.
func (s *Service) Epoch(id int64) (models.EpochWithEvents, error) {
	e, ok := s.snap().EpochWithEvents(id)
	if !ok {
		return models.EpochWithEvents{}, notFound(KindEpoch, id)
	}
	return e, nil
}

// ListEvents filters events by epoch and by a substring of the title or
// description, orders them by year and returns one page.
func (s *Service) ListEvents(f EventFilter) []models.Event {
	events := query.Filter(s.snap().Events(),
		query.EqualPtr(func(e models.Event) int64 { return e.EpochID }, f.EpochID),
		query.Contains(f.Search,
			func(e models.Event) string { return e.Title },
			func(e models.Event) string { return e.Description },
		),
	)
	events = query.Sorted(events, query.By(func(e models.Event) int { return e.Year }, query.Ascending))
	return query.Paginate(events, f.Page)
}

// Event returns one event.
func (s *Service) Event(id int64) (models.Event, error) {
	e, ok := s.snap().Event(id)
	if !ok {
		return models.Event{}, notFound(KindEvent, id)
	}
	return e, nil
}

// TopEvents returns the limit most important events. A non-positive limit
// falls back to query.DefaultK.
func (s *Service) TopEvents(limit int) []models.Event {
	return query.TopK(s.snap().Events(), limit, func(e models.Event) int { return e.Importance }, query.Descending)
}
