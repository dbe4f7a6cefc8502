package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"

	"yenisei/internal/query"
	"yenisei/internal/quiz"
)

// Limits on client-supplied text.
const (
	maxSearchLen = 200
	maxAnswerLen = 8
	maxBodyBytes = 4 << 10
)

// errBadParam marks a malformed request parameter.
var errBadParam = errors.New("invalid parameter")

// pathID parses the {id} URL parameter.
func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id must be an integer, got %q", errBadParam, raw)
	}
	return id, nil
}

// pathText returns the decoded text of a URL parameter. chi matches on
// r.URL.RawPath when it is set, and then the parameter is still escaped.
func pathText(r *http.Request, key string) (string, error) {
	raw := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return raw, nil
	}
	text, err := url.PathUnescape(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %s is not a valid path segment", errBadParam, key)
	}
	return text, nil
}

// intParam parses an optional integer query parameter.
func intParam(r *http.Request, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", errBadParam, name, raw)
	}
	return n, nil
}

// optionalID parses an optional identity query parameter. Zero counts as
// absent.
func optionalID(r *http.Request, name string) (*int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an integer, got %q", errBadParam, name, raw)
	}
	if id == 0 {
		return nil, nil
	}
	return &id, nil
}

// boolParam parses an optional boolean query parameter.
func boolParam(r *http.Request, name string) (*bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a boolean, got %q", errBadParam, name, raw)
	}
	return &b, nil
}

// pageParams reads skip and limit. Out-of-range values are normalized by
// the query package rather than rejected.
func pageParams(r *http.Request) (query.Page, error) {
	skip, err := intParam(r, "skip", 0)
	if err != nil {
		return query.Page{}, err
	}
	limit, err := intParam(r, "limit", query.DefaultLimit)
	if err != nil {
		return query.Page{}, err
	}
	return query.Page{Offset: skip, Limit: limit}.Normalize(), nil
}

// validateSearch bounds free-text search input.
func validateSearch(text string) error {
	if utf8.RuneCountInString(text) > maxSearchLen {
		return fmt.Errorf("%w: search text is too long (max %d characters)", errBadParam, maxSearchLen)
	}
	return nil
}

// validateSubmission checks the shape of a quiz answer before it reaches
// the catalog.
func validateSubmission(s quiz.Submission) error {
	if s.QuestionID <= 0 {
		return fmt.Errorf("%w: question_id is required", errBadParam)
	}
	if strings.TrimSpace(s.Answer) == "" {
		return fmt.Errorf("%w: answer is required", errBadParam)
	}
	if utf8.RuneCountInString(s.Answer) > maxAnswerLen {
		return fmt.Errorf("%w: answer is too long", errBadParam)
	}
	return nil
}

// badRequest writes a 400 with the error's message.
func badRequest(w http.ResponseWriter, err error) {
	writeDetail(w, http.StatusBadRequest, err.Error())
}
