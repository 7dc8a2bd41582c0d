package core

import "context"

// FallbackFeedbackText is shown whenever the feedback collaborator fails;
// its raw errors are never surfaced to the end user.
const FallbackFeedbackText = "There was an error generating AI feedback. Please try again or write your own."

// Feedback is a generated review suggestion for a submission.
type Feedback struct {
	Feedback string `json:"feedback" validate:"required"`
	Score    int    `json:"score" validate:"min=0,max=100"`
}

// FeedbackService is any service that can draft coach feedback from a
// student's free-text submission. Implementations are possibly slow and
// possibly failing; callers get a usable fallback instead of an error.
type FeedbackService interface {
	GenerateFeedback(ctx context.Context, submissionText string) Feedback
}
