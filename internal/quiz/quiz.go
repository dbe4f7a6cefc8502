// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package quiz checks submitted answers against stored questions. Checking is
// stateless: nothing about an attempt is recorded.
package quiz

import (
	"fmt"

	"yenisei/internal/models"
)

// Submission is a user's answer to one question.
type Submission struct {
	QuestionID int64  `json:"question_id"`
	Answer     string `json:"answer"`
}

// Result is the outcome of checking a submission. The correct letter and the
// explanation are always included, also for wrong answers, so the player can
// learn from the mistake.
type Result struct {
	IsCorrect     bool                `json:"is_correct"`
	CorrectAnswer models.AnswerLetter `json:"correct_answer"`
	Explanation   string              `json:"explanation"`
	PointsEarned  int                 `json:"points_earned"`
}

// Evaluate compares answer with the question's key, ignoring case. A
// malformed answer returns an error wrapping models.ErrInvalidAnswer.
func Evaluate(q models.QuizQuestion, answer string) (Result, error) {
	letter, err := models.ParseAnswer(answer)
	if err != nil {
		return Result{}, fmt.Errorf("question %d: %w", q.ID, err)
	}

	correct := letter == q.CorrectAnswer
	res := Result{
		IsCorrect:     correct,
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   q.Explanation,
	}
	if correct {
		res.PointsEarned = q.Points
	}
	return res, nil
}
