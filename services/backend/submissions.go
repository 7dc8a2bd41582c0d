package backend

import (
	"context"

	"github.com/trezcool/lava/core/submission"
)

// CreateSubmission registers a new student attempt; the server assigns the
// id, analyzes the problem and returns the full record. Not idempotent, so
// never retried here.
func (c *Client) CreateSubmission(ctx context.Context, ns submission.NewSubmission) (submission.Submission, error) {
	var sub submission.Submission
	if err := ns.Validate(); err != nil {
		return sub, err
	}
	err := c.post(ctx, "submissions.create", "/submissions", ns, &sub)
	return sub, err
}

func (c *Client) Submission(ctx context.Context, submissionID string) (submission.Submission, error) {
	var sub submission.Submission
	if err := requireID("submission_id", submissionID); err != nil {
		return sub, err
	}
	err := c.get(ctx, "submissions.get", "/submissions/"+submissionID, &sub)
	return sub, err
}

// ReviewSubmission applies a coach decision to exactly one submission.
func (c *Client) ReviewSubmission(ctx context.Context, submissionID string, review submission.Review) error {
	if err := requireID("submission_id", submissionID); err != nil {
		return err
	}
	if err := review.Validate(); err != nil {
		return err
	}
	return c.post(ctx, "submissions.review", "/submissions/"+submissionID+"/review", review, nil)
}

func (c *Client) StudentSubmissions(ctx context.Context, studentID string) ([]submission.Submission, error) {
	if err := requireID("student_id", studentID); err != nil {
		return nil, err
	}
	var subs []submission.Submission
	err := c.get(ctx, "submissions.listByStudent", "/students/"+studentID+"/submissions", &subs)
	return subs, err
}

// PendingSubmissions lists the submissions awaiting the coach's review.
func (c *Client) PendingSubmissions(ctx context.Context, coachID string) ([]submission.Submission, error) {
	if err := requireID("coach_id", coachID); err != nil {
		return nil, err
	}
	var subs []submission.Submission
	err := c.get(ctx, "submissions.listByCoachPending", "/coaches/"+coachID+"/pending-submissions", &subs)
	return subs, err
}
