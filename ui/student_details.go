package ui

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/trezcool/lava/core"
	"github.com/trezcool/lava/core/mastery"
	"github.com/trezcool/lava/core/nav"
	"github.com/trezcool/lava/core/report"
	"github.com/trezcool/lava/core/submission"
	"github.com/trezcool/lava/core/user"
)

// studentDetailsView is the coach's single-student drill-down: profile,
// vector history, submissions, progress reports and private memos.
type studentDetailsView struct {
	app       *App
	studentID string

	student     user.Student
	vectors     []mastery.Vector
	submissions []submission.Submission
	reports     []report.Report
	memos       []user.CoachMemo
	err         error
}

func newStudentDetailsView(app *App, studentID string) *studentDetailsView {
	return &studentDetailsView{app: app, studentID: studentID}
}

func (v *studentDetailsView) Page() nav.Page { return nav.StudentDetails }

func (v *studentDetailsView) Load(ctx context.Context) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		std, err := v.app.api.Student(gctx, v.studentID)
		if err != nil {
			return err
		}
		v.student = std
		return nil
	})
	g.Go(func() error {
		vecs, err := v.app.api.VectorHistory(gctx, v.studentID)
		if err != nil {
			return err
		}
		v.vectors = vecs
		return nil
	})
	g.Go(func() error {
		subs, err := v.app.api.StudentSubmissions(gctx, v.studentID)
		if err != nil {
			return err
		}
		v.submissions = subs
		return nil
	})
	g.Go(func() error {
		reps, err := v.app.api.StudentReports(gctx, v.studentID)
		if err != nil {
			return err
		}
		v.reports = reps
		return nil
	})
	g.Go(func() error {
		memos, err := v.app.api.CoachMemos(gctx, v.studentID)
		if err != nil {
			return err
		}
		v.memos = memos
		return nil
	})
	v.err = g.Wait()
}

// AddMemo files a private note about this student under the signed-in coach.
func (v *studentDetailsView) AddMemo(text string) error {
	sess := v.app.sess.Current()
	if sess.User == nil {
		return nil
	}
	memo, err := v.app.api.CreateCoachMemo(v.app.currentCtx(), user.NewCoachMemo{
		CoachID:   sess.User.ID,
		StudentID: v.studentID,
		MemoText:  text,
	})
	if err != nil {
		return err
	}
	v.memos = append(v.memos, memo)
	return nil
}

// FinalizeReport attaches the coach comment and moves a draft to FINALIZED.
func (v *studentDetailsView) FinalizeReport(reportID int, comment string) error {
	idx := v.reportIndex(reportID)
	if idx < 0 {
		return nil
	}
	if err := v.reports[idx].CanFinalize(); err != nil {
		return err
	}
	rep, err := v.app.api.FinalizeReport(v.app.currentCtx(), reportID, report.CoachComment{CoachComment: comment})
	if err != nil {
		return err
	}
	v.reports[idx] = rep
	return nil
}

// SendReport delivers a finalized report; drafts and already-sent reports
// are rejected before any request goes out.
func (v *studentDetailsView) SendReport(reportID int) error {
	idx := v.reportIndex(reportID)
	if idx < 0 {
		return nil
	}
	if err := v.reports[idx].CanSend(); err != nil {
		return err
	}
	if err := v.app.api.SendReport(v.app.currentCtx(), reportID); err != nil {
		return err
	}
	v.reports[idx].Status = report.StatusSent
	return nil
}

func (v *studentDetailsView) reportIndex(reportID int) int {
	for i, r := range v.reports {
		if r.ID == reportID {
			return i
		}
	}
	return -1
}

func (v *studentDetailsView) Render(w io.Writer) {
	fmt.Fprintln(w, titleStyle.Render("Student Details"))
	if v.err != nil {
		fmt.Fprintln(w, errorStyle.Render(userMessage(v.err)))
		return
	}
	fmt.Fprintf(w, "%s (%s)\n", v.student.Name, v.student.ID)

	fmt.Fprintln(w, labelStyle.Render("Vector history:"))
	for _, vec := range v.vectors {
		fmt.Fprintf(w, "  %s: geo=%d alg=%d ana=%d opt=%d piv=%d dia=%d con=%d pro=%d ret=%d acc=%d gri=%d\n",
			vec.CreatedAt.Format("2006-01-02"),
			vec.Axis1Geo, vec.Axis1Alg, vec.Axis1Ana,
			vec.Axis2Opt, vec.Axis2Piv, vec.Axis2Dia,
			vec.Axis3Con, vec.Axis3Pro, vec.Axis3Ret,
			vec.Axis4Acc, vec.Axis4Gri)
	}

	fmt.Fprintln(w, labelStyle.Render("Submissions:"))
	for _, sub := range v.submissions {
		fmt.Fprintf(w, "  %s [%s] %s\n", sub.ID, sub.Status, core.Truncate(sub.ProblemText, 60))
	}

	fmt.Fprintln(w, labelStyle.Render("Reports:"))
	for _, rep := range v.reports {
		fmt.Fprintf(w, "  #%d [%s] %s - %s\n", rep.ID, rep.Status,
			rep.PeriodStart.Format("2006-01-02"), rep.PeriodEnd.Format("2006-01-02"))
	}

	fmt.Fprintln(w, labelStyle.Render("Memos:"))
	for _, memo := range v.memos {
		fmt.Fprintf(w, "  %s: %s\n", memo.CreatedAt.Format("2006-01-02"), memo.MemoText)
	}
}
