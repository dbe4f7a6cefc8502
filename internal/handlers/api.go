// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the JSON API over the catalog service. Error
// bodies always have the shape {"detail": "..."}.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"yenisei/internal/catalog"
	"yenisei/internal/metrics"
	"yenisei/internal/middleware"
	"yenisei/internal/models"
)

// Not-found messages served to clients, by record kind.
var notFoundDetail = map[string]string{
	catalog.KindEpoch:    "Эпоха не найдена",
	catalog.KindEvent:    "Событие не найдено",
	catalog.KindGeoPoint: "Точка не найдена",
	catalog.KindImage:    "Изображение не найдено",
	catalog.KindQuestion: "Вопрос не найден",
	catalog.KindFact:     "Факты не найдены",
}

// API groups the catalog endpoints.
type API struct {
	catalog   *catalog.Service
	metrics   *metrics.Metrics
	version   string
	publicURL string
}

// NewAPI creates the API handler group. m may be nil. publicURL is the base
// URL clients reach the site on; QR codes for map points link there.
func NewAPI(svc *catalog.Service, m *metrics.Metrics, version, publicURL string) *API {
	return &API{catalog: svc, metrics: m, version: version, publicURL: publicURL}
}

// Generation identifies the catalog snapshot responses are rendered from.
func (a *API) Generation() uint64 {
	return a.catalog.Generation()
}

// Root describes the API and the loaded catalog.
func (a *API) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Добро пожаловать в API 'История реки Енисей'",
		"version": a.version,
		"catalog": a.catalog.Summary(),
	})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Warn("encode response failed", "error", err)
	}
}

// writeDetail writes an error response.
func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

// writeError maps a catalog error onto a status code and detail message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var nf *catalog.NotFoundError
	switch {
	case errors.As(err, &nf):
		detail, ok := notFoundDetail[nf.Kind]
		if !ok {
			detail = "Not Found"
		}
		writeDetail(w, http.StatusNotFound, detail)
	case errors.Is(err, models.ErrInvalidAnswer):
		writeDetail(w, http.StatusUnprocessableEntity, models.ErrInvalidAnswer.Error())
	default:
		slog.Error("request failed",
			"request_id", middleware.GetRequestID(r.Context()),
			"path", r.URL.Path,
			"error", err,
		)
		writeDetail(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
