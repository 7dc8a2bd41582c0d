package feedbacksvc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/lava/core"
	testutil "github.com/trezcool/lava/tests"
)

func newService(t *testing.T, handler http.HandlerFunc) core.FeedbackService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewService(&core.Config{
		Feedback: core.FeedbackConfig{
			URL:            srv.URL,
			APIKey:         "key-123",
			RequestTimeout: 2 * time.Second,
		},
	}, testutil.Logger())
}

func TestGenerateFeedback(t *testing.T) {
	var gotAuth string
	var gotReq generateRequest
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_ = json.NewEncoder(w).Encode(core.Feedback{Feedback: "Tighten step 2.", Score: 81})
	})

	fb := svc.GenerateFeedback(context.Background(), "x = 1 because ...")
	assert.Equal(t, core.Feedback{Feedback: "Tighten step 2.", Score: 81}, fb)
	assert.Equal(t, "Bearer key-123", gotAuth)
	assert.Equal(t, "x = 1 because ...", gotReq.SubmissionText)
}

func TestGenerateFeedbackFallback(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
		},
		{
			name: "garbage payload",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("not json"))
			},
		},
		{
			name: "empty feedback violates contract",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewEncoder(w).Encode(core.Feedback{Feedback: "", Score: 50})
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(t, tt.handler)

			fb := svc.GenerateFeedback(context.Background(), "anything")
			assert.Equal(t, core.FallbackFeedbackText, fb.Feedback)
			assert.Equal(t, 0, fb.Score)
		})
	}
}

func TestGenerateFeedbackUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	svc := NewService(&core.Config{
		Feedback: core.FeedbackConfig{URL: srv.URL, RequestTimeout: time.Second},
	}, testutil.Logger())
	srv.Close()

	fb := svc.GenerateFeedback(context.Background(), "anything")
	assert.Equal(t, core.FallbackFeedbackText, fb.Feedback)
}
