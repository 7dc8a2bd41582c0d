package ui

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/trezcool/lava/core/mastery"
	"github.com/trezcool/lava/core/nav"
	"github.com/trezcool/lava/core/submission"
	"github.com/trezcool/lava/core/user"
)

type studentDashboardView struct {
	app *App

	student     user.Student
	submissions []submission.Submission
	mastered    []mastery.Entry
	err         error
}

func newStudentDashboardView(app *App) *studentDashboardView {
	return &studentDashboardView{app: app}
}

func (v *studentDashboardView) Page() nav.Page { return nav.StudentDashboard }

func (v *studentDashboardView) Load(ctx context.Context) {
	sess := v.app.sess.Current()
	if sess.User == nil {
		return
	}
	studentID := sess.User.ID

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		std, err := v.app.api.Student(gctx, studentID)
		if err != nil {
			return err
		}
		v.student = std
		return nil
	})
	g.Go(func() error {
		subs, err := v.app.api.StudentSubmissions(gctx, studentID)
		if err != nil {
			return err
		}
		v.submissions = subs
		return nil
	})
	g.Go(func() error {
		entries, err := v.app.api.StudentMastery(gctx, studentID)
		if err != nil {
			return err
		}
		v.mastered = entries
		return nil
	})
	v.err = g.Wait()
}

func (v *studentDashboardView) Render(w io.Writer) {
	fmt.Fprintln(w, titleStyle.Render("Student Dashboard"))
	if v.err != nil {
		fmt.Fprintln(w, errorStyle.Render(userMessage(v.err)))
		return
	}
	fmt.Fprintf(w, "%s (%s)\n", v.student.Name, v.student.ID)
	fmt.Fprintln(w, labelStyle.Render(fmt.Sprintf("Submissions (%d):", len(v.submissions))))
	for _, sub := range v.submissions {
		fmt.Fprintf(w, "  %s [%s]\n", sub.ID, sub.Status)
	}
	fmt.Fprintln(w, labelStyle.Render("Mastery:"))
	for _, m := range v.mastered {
		fmt.Fprintf(w, "  %s: %d/100 (%s)\n", m.ConceptID, m.MasteryScore, m.Status)
	}
}
