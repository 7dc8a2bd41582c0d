// Package feedbacksvc talks to the external text-generation collaborator
// that drafts coach feedback. The collaborator is slow and unreliable by
// contract; callers always get a usable Feedback back, falling back to a
// generic message instead of an error.
package feedbacksvc

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"

	"github.com/trezcool/lava/core"
)

type service struct {
	url    string
	apiKey string
	http   *http.Client
	log    core.Logger
}

var _ core.FeedbackService = (*service)(nil)

func NewService(conf *core.Config, log core.Logger) core.FeedbackService {
	return &service{
		url:    conf.Feedback.URL,
		apiKey: conf.Feedback.APIKey,
		http:   &http.Client{Timeout: conf.Feedback.RequestTimeout},
		log:    log,
	}
}

type generateRequest struct {
	SubmissionText string `json:"submission_text"`
}

func (svc *service) GenerateFeedback(ctx context.Context, submissionText string) core.Feedback {
	fb, err := svc.generate(ctx, submissionText)
	if err != nil {
		svc.log.Warn("feedback generation failed", err)
		return core.Feedback{Feedback: core.FallbackFeedbackText, Score: 0}
	}
	return fb
}

func (svc *service) generate(ctx context.Context, submissionText string) (core.Feedback, error) {
	var fb core.Feedback

	data, err := json.Marshal(generateRequest{SubmissionText: submissionText})
	if err != nil {
		return fb, errors.Wrap(err, "encoding request")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, svc.url, bytes.NewReader(data))
	if err != nil {
		return fb, errors.Wrap(err, "building request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if svc.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+svc.apiKey)
	}

	resp, err := svc.http.Do(req)
	if err != nil {
		return fb, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fb, errors.Errorf("unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(&fb); err != nil {
		return fb, errors.Wrap(err, "decoding response")
	}
	if err := core.Validate.Struct(&fb); err != nil {
		return fb, errors.Wrap(err, "bad feedback payload")
	}
	return fb, nil
}
