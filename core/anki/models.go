package anki

import (
	"time"

	"github.com/trezcool/lava/core"
)

// Card is a spaced-repetition card generated from reviewed submissions.
type Card struct {
	ID             int       `json:"card_id" validate:"required"`
	StudentID      string    `json:"student_id" validate:"required"`
	LLMLogID       int       `json:"llm_log_id"`
	Question       string    `json:"question" validate:"required"`
	Answer         string    `json:"answer" validate:"required"`
	NextReviewDate time.Time `json:"next_review_date"`
	IntervalDays   int       `json:"interval_days"`
	EaseFactor     float64   `json:"ease_factor"`
	Repetitions    int       `json:"repetitions"`
}

// CardReview grades a card recall from 0 (blackout) to 5 (perfect).
type CardReview struct {
	Grade int `json:"grade" validate:"min=0,max=5"`
}

func (cr CardReview) Validate() error { return core.Validate.Struct(cr) }

// Due returns the cards due for review at the given time.
func Due(cards []Card, now time.Time) []Card {
	var due []Card
	for _, c := range cards {
		if !c.NextReviewDate.After(now) {
			due = append(due, c)
		}
	}
	return due
}
