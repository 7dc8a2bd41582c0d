package ui

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/trezcool/lava/core"
	"github.com/trezcool/lava/core/mastery"
	"github.com/trezcool/lava/core/nav"
	"github.com/trezcool/lava/core/submission"
	"github.com/trezcool/lava/core/user"
)

// reviewView lets a coach inspect one submission next to the student's
// latest 4-axis vector and apply a decision.
type reviewView struct {
	app          *App
	submissionID string

	sub     submission.Submission
	student user.Student
	vector  mastery.Vector
	err     error

	// review form
	feedbackText string
	decision     string
	busy         bool
	submitted    bool
	submitErr    error
}

func newReviewView(app *App, submissionID string) *reviewView {
	return &reviewView{app: app, submissionID: submissionID, decision: submission.DecisionApproved}
}

func (v *reviewView) Page() nav.Page { return nav.AssignmentReview }

// Load fetches the submission first (it names the student), then joins the
// student record and latest vector; the view only renders once both landed,
// whatever order they resolve in.
func (v *reviewView) Load(ctx context.Context) {
	sub, err := v.app.api.Submission(ctx, v.submissionID)
	if err != nil {
		v.err = err
		return
	}
	v.sub = sub

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		std, err := v.app.api.Student(gctx, sub.StudentID)
		if err != nil {
			return err
		}
		v.student = std
		return nil
	})
	g.Go(func() error {
		vec, err := v.app.api.LatestVector(gctx, sub.StudentID)
		if err != nil {
			return err
		}
		v.vector = vec
		return nil
	})
	v.err = g.Wait()
}

// SetFeedback edits the form; any edit re-arms the submit action after a
// successful submission.
func (v *reviewView) SetFeedback(decision, text string) {
	v.decision = decision
	v.feedbackText = text
	v.submitted = false
	v.submitErr = nil
}

// SuggestFeedback asks the feedback collaborator for a draft and prefills
// the form; on collaborator failure the fallback text lands instead.
func (v *reviewView) SuggestFeedback() core.Feedback {
	fb := v.app.feedback.GenerateFeedback(v.app.currentCtx(), v.sub.LogicalPathText)
	v.SetFeedback(v.decision, fb.Feedback)
	return fb
}

// SubmitReview sends the coach decision. While a submit is in flight, or
// after one succeeded with no new edit, further submits are no-ops.
func (v *reviewView) SubmitReview() error {
	if v.busy || v.submitted {
		return nil
	}
	sess := v.app.sess.Current()
	if sess.User == nil {
		return nil
	}
	v.busy = true
	defer func() { v.busy = false }()
	v.submitErr = nil

	review := submission.Review{
		CoachID:       sess.User.ID,
		Decision:      v.decision,
		CoachFeedback: v.feedbackText,
	}
	if err := v.app.api.ReviewSubmission(v.app.currentCtx(), v.submissionID, review); err != nil {
		v.submitErr = err
		return err
	}
	v.submitted = true
	return nil
}

// CanSubmit reports whether the submit action is armed.
func (v *reviewView) CanSubmit() bool { return !v.busy && !v.submitted }

func (v *reviewView) Render(w io.Writer) {
	fmt.Fprintln(w, titleStyle.Render("Assignment Review"))
	if v.err != nil {
		fmt.Fprintln(w, errorStyle.Render(userMessage(v.err)))
		return
	}
	fmt.Fprintf(w, "Student: %s (%s)\n", v.student.Name, v.student.ID)
	fmt.Fprintf(w, "Problem: %s\n", v.sub.ProblemText)
	fmt.Fprintf(w, "Logical path: %s\n", v.sub.LogicalPathText)
	fmt.Fprintf(w, "Status: %s\n", v.sub.Status)
	if v.sub.ManimContentURL.Valid {
		fmt.Fprintf(w, "Visualization: %s\n", v.sub.ManimContentURL.String)
	}
	fmt.Fprintln(w, labelStyle.Render("Latest 4-axis vector:"))
	fmt.Fprintf(w, "  geo=%d alg=%d ana=%d | opt=%d piv=%d dia=%d | con=%d pro=%d ret=%d | acc=%d gri=%d\n",
		v.vector.Axis1Geo, v.vector.Axis1Alg, v.vector.Axis1Ana,
		v.vector.Axis2Opt, v.vector.Axis2Piv, v.vector.Axis2Dia,
		v.vector.Axis3Con, v.vector.Axis3Pro, v.vector.Axis3Ret,
		v.vector.Axis4Acc, v.vector.Axis4Gri)
	if v.submitErr != nil {
		fmt.Fprintln(w, errorStyle.Render(userMessage(v.submitErr)))
	}
	if v.submitted {
		fmt.Fprintln(w, successStyle.Render("Review submitted."))
	}
}
