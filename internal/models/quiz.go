// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidAnswer is returned when an answer is not one of the letters A-D.
var ErrInvalidAnswer = errors.New("answer must be one of A, B, C, D")

// AnswerLetter identifies one of the four fixed answer options.
type AnswerLetter string

const (
	AnswerA AnswerLetter = "A"
	AnswerB AnswerLetter = "B"
	AnswerC AnswerLetter = "C"
	AnswerD AnswerLetter = "D"
)

// ParseAnswer accepts a single letter in either case, ignoring surrounding
// whitespace.
func ParseAnswer(s string) (AnswerLetter, error) {
	switch l := AnswerLetter(strings.ToUpper(strings.TrimSpace(s))); l {
	case AnswerA, AnswerB, AnswerC, AnswerD:
		return l, nil
	}
	return "", fmt.Errorf("parse answer %q: %w", s, ErrInvalidAnswer)
}

// Difficulty is a free-form difficulty label, conventionally easy/medium/hard.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"

	DifficultyUnknown Difficulty = "unknown"
)

// Known returns true for the three conventional difficulty levels.
func (d Difficulty) Known() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Label returns the difficulty when known and DifficultyUnknown otherwise.
func (d Difficulty) Label() Difficulty {
	if d.Known() {
		return d
	}
	return DifficultyUnknown
}

// Defaults for seeded questions.
const (
	DefaultDifficulty = DifficultyMedium
	DefaultPoints     = 10
)

// QuizQuestion is a multiple-choice question with exactly four options.
// The answer key and explanation are never part of the listing payload; they
// are only revealed by answer checking.
type QuizQuestion struct {
	ID            int64        `json:"id"`
	Question      string       `json:"question"`
	OptionA       string       `json:"option_a"`
	OptionB       string       `json:"option_b"`
	OptionC       string       `json:"option_c"`
	OptionD       string       `json:"option_d"`
	CorrectAnswer AnswerLetter `json:"-"`
	Explanation   string       `json:"-"`
	Difficulty    Difficulty   `json:"difficulty"`
	Category      string       `json:"category"`
	Points        int          `json:"points"`
}

// Option returns the text of the option for the given letter.
func (q *QuizQuestion) Option(l AnswerLetter) string {
	switch l {
	case AnswerA:
		return q.OptionA
	case AnswerB:
		return q.OptionB
	case AnswerC:
		return q.OptionC
	case AnswerD:
		return q.OptionD
	}
	return ""
}
