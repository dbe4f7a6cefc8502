// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"yenisei/internal/catalog"
	"yenisei/internal/query"
)

// ListEpochs serves every epoch ordered by order index.
func (a *API) ListEpochs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.catalog.Epochs())
}

// GetEpoch serves one epoch with its events.
func (a *API) GetEpoch(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	epoch, err := a.catalog.Epoch(id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, epoch)
}

// ListEvents serves events filtered by epoch_id and search, ordered by year.
func (a *API) ListEvents(w http.ResponseWriter, r *http.Request) {
	page, err := pageParams(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	epochID, err := optionalID(r, "epoch_id")
	if err != nil {
		badRequest(w, err)
		return
	}
	search := r.URL.Query().Get("search")
	if err := validateSearch(search); err != nil {
		badRequest(w, err)
		return
	}

	writeJSON(w, http.StatusOK, a.catalog.ListEvents(catalog.EventFilter{
		EpochID: epochID,
		Search:  search,
		Page:    page,
	}))
}

// GetEvent serves one event.
func (a *API) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	event, err := a.catalog.Event(id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

// TopEvents serves the most important events.
func (a *API) TopEvents(w http.ResponseWriter, r *http.Request) {
	limit, err := intParam(r, "limit", query.DefaultK)
	if err != nil {
		badRequest(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a.catalog.TopEvents(limit))
}
