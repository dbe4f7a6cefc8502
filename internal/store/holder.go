// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import "sync/atomic"

// Holder publishes the current Snapshot. Readers call Load once per request
// and work against that snapshot for the whole request.
type Holder struct {
	current atomic.Pointer[Snapshot]
}

// NewHolder returns a Holder publishing s.
func NewHolder(s *Snapshot) *Holder {
	h := &Holder{}
	h.current.Store(s)
	return h
}

// Load returns the published snapshot.
func (h *Holder) Load() *Snapshot {
	return h.current.Load()
}

// Swap publishes s and returns the snapshot it replaced.
func (h *Holder) Swap(s *Snapshot) *Snapshot {
	return h.current.Swap(s)
}
