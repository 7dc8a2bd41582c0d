package dummyfeedback

import (
	"context"
	"sync"

	"github.com/trezcool/lava/core"
)

// service returns canned feedback without any network call; for dev and tests.
type service struct {
	mu       sync.Mutex
	requests []string
}

var _ core.FeedbackService = (*service)(nil)

func NewService() *service { //nolint
	return &service{}
}

func (svc *service) GenerateFeedback(_ context.Context, submissionText string) core.Feedback {
	svc.mu.Lock()
	svc.requests = append(svc.requests, submissionText)
	svc.mu.Unlock()
	return core.Feedback{
		Feedback: "Solid reasoning overall. Revisit the second step and justify the pivot.",
		Score:    78,
	}
}

// Requests returns the submission texts seen so far.
func (svc *service) Requests() []string {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	out := make([]string, len(svc.requests))
	copy(out, svc.requests)
	return out
}
