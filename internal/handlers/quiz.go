// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"net/http"

	"yenisei/internal/catalog"
	"yenisei/internal/quiz"
)

// RandomQuestions serves a random selection of questions without their
// answer keys.
func (a *API) RandomQuestions(w http.ResponseWriter, r *http.Request) {
	count, err := intParam(r, "count", catalog.DefaultQuizCount)
	if err != nil {
		badRequest(w, err)
		return
	}
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, a.catalog.RandomQuestions(catalog.QuestionFilter{
		Count:      count,
		Difficulty: q.Get("difficulty"),
		Category:   q.Get("category"),
	}))
}

// CheckAnswer evaluates a submitted answer.
func (a *API) CheckAnswer(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var sub quiz.Submission
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&sub); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}
	if err := validateSubmission(sub); err != nil {
		badRequest(w, err)
		return
	}

	res, err := a.catalog.CheckAnswer(sub)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if a.metrics != nil {
		a.metrics.QuizAnswer(res.IsCorrect)
	}
	writeJSON(w, http.StatusOK, res)
}

// QuizCategories serves the distinct question categories.
func (a *API) QuizCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"categories": a.catalog.QuizCategories()})
}
