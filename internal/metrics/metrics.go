// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package metrics exposes Prometheus collectors for HTTP traffic, content
// reloads, catalog size and quiz outcomes.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "yenisei"

// Metrics owns a private registry so tests can build as many as they need.
type Metrics struct {
	registry *prometheus.Registry

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	reloads  *prometheus.CounterVec
	records  *prometheus.GaugeVec
	unknown  *prometheus.GaugeVec
	answers  *prometheus.CounterVec
}

// New registers every collector, plus the Go runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route pattern, method and status.",
		}, []string{"route", "method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		reloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "content_reloads_total",
			Help:      "Content reload attempts by result.",
		}, []string{"result"}),
		records: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_records",
			Help:      "Records in the published catalog snapshot by kind.",
		}, []string{"kind"}),
		unknown: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_unknown_labels",
			Help:      "Served records whose point type or difficulty is outside the known set, by field.",
		}, []string{"field"}),
		answers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quiz_answers_total",
			Help:      "Checked quiz answers by outcome.",
		}, []string{"outcome"}),
	}

	m.registry.MustRegister(
		m.requests, m.duration, m.reloads, m.records, m.unknown, m.answers,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveRequest records one served request.
func (m *Metrics) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// ReloadSucceeded records a published reload and the new catalog shape.
func (m *Metrics) ReloadSucceeded(counts, unknown map[string]int) {
	m.reloads.WithLabelValues("success").Inc()
	m.SetRecords(counts)
	m.SetUnknownLabels(unknown)
}

// ReloadFailed records a reload that left the previous snapshot in place.
func (m *Metrics) ReloadFailed() {
	m.reloads.WithLabelValues("error").Inc()
}

// SetRecords sets the catalog size gauges.
func (m *Metrics) SetRecords(counts map[string]int) {
	for kind, n := range counts {
		m.records.WithLabelValues(kind).Set(float64(n))
	}
}

// SetUnknownLabels sets the unknown label gauges.
func (m *Metrics) SetUnknownLabels(unknown map[string]int) {
	for field, n := range unknown {
		m.unknown.WithLabelValues(field).Set(float64(n))
	}
}

// QuizAnswer records the outcome of a checked answer.
func (m *Metrics) QuizAnswer(correct bool) {
	outcome := "incorrect"
	if correct {
		outcome = "correct"
	}
	m.answers.WithLabelValues(outcome).Inc()
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
