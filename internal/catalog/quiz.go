// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"yenisei/internal/models"
	"yenisei/internal/query"
	"yenisei/internal/quiz"
)

// QuestionFilter narrows RandomQuestions. Empty strings mean "any".
type QuestionFilter struct {
	Count      int
	Difficulty string
	Category   string
}

// RandomQuestions draws up to Count distinct questions matching the filter.
// Count defaults to DefaultQuizCount and is capped at MaxQuizCount. When
// fewer questions match, all of them are returned in random order.
func (s *Service) RandomQuestions(f QuestionFilter) []models.QuizQuestion {
	count := f.Count
	if count <= 0 {
		count = DefaultQuizCount
	}
	if count > MaxQuizCount {
		count = MaxQuizCount
	}

	pool := query.Filter(s.snap().Questions(),
		query.EqualString(func(q models.QuizQuestion) models.Difficulty { return q.Difficulty }, trim(f.Difficulty)),
		query.EqualString(func(q models.QuizQuestion) string { return q.Category }, trim(f.Category)),
	)
	return query.Sample(s.sampler, pool, count)
}

// CheckAnswer evaluates a submission. A missing question yields a
// NotFoundError; a malformed letter yields models.ErrInvalidAnswer.
func (s *Service) CheckAnswer(sub quiz.Submission) (quiz.Result, error) {
	q, ok := s.snap().Question(sub.QuestionID)
	if !ok {
		return quiz.Result{}, notFound(KindQuestion, sub.QuestionID)
	}
	return quiz.Evaluate(q, sub.Answer)
}

// QuizCategories lists the distinct non-empty question categories, sorted.
func (s *Service) QuizCategories() []string {
	return query.Distinct(s.snap().Questions(), func(q models.QuizQuestion) string { return q.Category })
}
