package ui

import (
	"context"
	"fmt"
	"io"

	"github.com/trezcool/lava/core/nav"
	"github.com/trezcool/lava/core/submission"
)

// submitView is the student's problem submission form. The server assigns
// the id and runs the logical-path analysis; the result lands back here.
type submitView struct {
	app *App

	busy   bool
	result *submission.Submission
	err    error
}

func newSubmitView(app *App) *submitView { return &submitView{app: app} }

func (v *submitView) Page() nav.Page { return nav.AssignmentSubmission }

func (v *submitView) Load(ctx context.Context) {} // form only, nothing to fetch

// Submit creates the submission for the signed-in student. Repeat calls
// while one is in flight are no-ops; a fresh submission replaces the
// previous result.
func (v *submitView) Submit(problemText string) error {
	if v.busy {
		return nil
	}
	sess := v.app.sess.Current()
	if sess.User == nil {
		return nil
	}
	v.busy = true
	defer func() { v.busy = false }()
	v.err = nil

	sub, err := v.app.api.CreateSubmission(v.app.currentCtx(), submission.NewSubmission{
		StudentID:   sess.User.ID,
		ProblemText: problemText,
	})
	if err != nil {
		v.err = err
		return err
	}
	v.result = &sub
	return nil
}

func (v *submitView) Result() *submission.Submission { return v.result }

func (v *submitView) Render(w io.Writer) {
	fmt.Fprintln(w, titleStyle.Render("Submit a Problem"))
	if v.err != nil {
		fmt.Fprintln(w, errorStyle.Render(userMessage(v.err)))
	}
	if v.result == nil {
		fmt.Fprintln(w, "Paste your problem text to submit it for analysis.")
		return
	}
	fmt.Fprintln(w, successStyle.Render("Submitted."))
	fmt.Fprintf(w, "Submission: %s (%s)\n", v.result.ID, v.result.Status)
	if v.result.LogicalPathText != "" {
		fmt.Fprintf(w, "Logical path: %s\n", v.result.LogicalPathText)
	}
	if v.result.ManimContentURL.Valid {
		fmt.Fprintf(w, "Visualization: %s\n", v.result.ManimContentURL.String)
	}
	if v.result.AudioExplanationURL.Valid {
		fmt.Fprintf(w, "Audio explanation: %s\n", v.result.AudioExplanationURL.String)
	}
}
