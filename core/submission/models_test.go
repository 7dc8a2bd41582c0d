package submission

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSubmissionValidate(t *testing.T) {
	tests := []struct {
		name    string
		ns      NewSubmission
		wantErr bool
	}{
		{name: "ok", ns: NewSubmission{StudentID: "std_01", ProblemText: "Solve 2x + 3 = 7"}},
		{name: "trims whitespace", ns: NewSubmission{StudentID: "std_01", ProblemText: "  x = 1  "}},
		{name: "missing student", ns: NewSubmission{ProblemText: "x = 1"}, wantErr: true},
		{name: "empty problem", ns: NewSubmission{StudentID: "std_01"}, wantErr: true},
		{name: "blank problem", ns: NewSubmission{StudentID: "std_01", ProblemText: "   "}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ns.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReviewValidate(t *testing.T) {
	tests := []struct {
		name    string
		review  Review
		wantErr bool
	}{
		{name: "approved", review: Review{CoachID: "coach_01", Decision: DecisionApproved, CoachFeedback: "Nice work"}},
		{name: "needs revision", review: Review{CoachID: "coach_01", Decision: DecisionNeedsRevision, CoachFeedback: "Check step 2"}},
		{name: "missing coach", review: Review{Decision: DecisionApproved, CoachFeedback: "ok"}, wantErr: true},
		{name: "bad decision", review: Review{CoachID: "coach_01", Decision: "maybe", CoachFeedback: "ok"}, wantErr: true},
		{name: "blank feedback", review: Review{CoachID: "coach_01", Decision: DecisionApproved, CoachFeedback: "  "}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.review.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
