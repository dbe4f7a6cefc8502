// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// catalog API.
package router

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"yenisei/internal/cache"
	"yenisei/internal/handlers"
	"yenisei/internal/metrics"
	"yenisei/internal/middleware"
)

// Deps carries everything the router wires together. Metrics, Cache and
// QuizLimiter are optional.
type Deps struct {
	API         *handlers.API
	Metrics     *metrics.Metrics
	Cache       *cache.ResponseCache
	QuizLimiter *middleware.RateLimiter
	CORSOrigins []string
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(d Deps) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	if d.Metrics != nil {
		r.Use(middleware.Metrics(d.Metrics))
	}
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.CORS(d.CORSOrigins))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	r.Get("/", d.API.Root)
	r.Get("/health", healthHandler)
	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.Metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.ResponseCache(d.Cache, uncacheable, d.API.Generation))

		r.Route("/epochs", func(r chi.Router) {
			r.Get("/", d.API.ListEpochs)
			r.Get("/{id}", d.API.GetEpoch)
		})

		r.Route("/events", func(r chi.Router) {
			r.Get("/", d.API.ListEvents)
			r.Get("/important/top", d.API.TopEvents)
			r.Get("/{id}", d.API.GetEvent)
		})

		r.Route("/geography", func(r chi.Router) {
			r.Get("/", d.API.ListGeoPoints)
			r.Get("/cities/major", d.API.MajorCities)
			r.Get("/landmarks", d.API.Landmarks)
			r.Get("/landmarks/", d.API.Landmarks)
			r.Get("/search/{query}", d.API.SearchGeoPoints)
			r.Get("/{id}", d.API.GetGeoPoint)
			r.Get("/{id}/qr.png", d.API.GeoPointQR)
		})

		r.Route("/gallery", func(r chi.Router) {
			r.Get("/", d.API.ListGallery)
			r.Get("/{id}", d.API.GetGalleryImage)
		})

		r.Route("/quiz", func(r chi.Router) {
			r.Get("/questions/random", d.API.RandomQuestions)
			r.Get("/categories", d.API.QuizCategories)
			r.Group(func(r chi.Router) {
				if d.QuizLimiter != nil {
					r.Use(d.QuizLimiter.Middleware)
				}
				r.Post("/check-answer", d.API.CheckAnswer)
			})
		})

		r.Route("/facts", func(r chi.Router) {
			r.Get("/", d.API.ListFacts)
			r.Get("/random", d.API.RandomFact)
		})
	})

	return r
}

// uncacheable reports requests whose responses differ between identical
// calls.
func uncacheable(r *http.Request) bool {
	return strings.HasSuffix(strings.TrimRight(r.URL.Path, "/"), "/random")
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok","message":"API работает"}`))
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"detail":"` + detail + `"}`))
}
