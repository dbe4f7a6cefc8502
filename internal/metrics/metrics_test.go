package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRequest(t *testing.T) {
	m := New()
	m.ObserveRequest("/api/epochs/{id}", http.MethodGet, 200, 5*time.Millisecond)
	m.ObserveRequest("/api/epochs/{id}", http.MethodGet, 200, 7*time.Millisecond)
	m.ObserveRequest("", http.MethodGet, 404, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("/api/epochs/{id}", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("unmatched", "GET", "404")))
}

func TestReloadAndRecords(t *testing.T) {
	m := New()
	m.ReloadSucceeded(map[string]int{"epochs": 5, "events": 16}, map[string]int{"point_type": 2, "difficulty": 0})
	m.ReloadFailed()
	m.ReloadFailed()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.reloads.WithLabelValues("success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.reloads.WithLabelValues("error")))
	assert.Equal(t, 16.0, testutil.ToFloat64(m.records.WithLabelValues("events")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.unknown.WithLabelValues("point_type")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.unknown.WithLabelValues("difficulty")))
}

func TestQuizAnswer(t *testing.T) {
	m := New()
	m.QuizAnswer(true)
	m.QuizAnswer(false)
	m.QuizAnswer(false)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.answers.WithLabelValues("correct")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.answers.WithLabelValues("incorrect")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New()
	m.QuizAnswer(true)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "yenisei_quiz_answers_total"))
	assert.True(t, strings.Contains(body, "go_goroutines"))
}
