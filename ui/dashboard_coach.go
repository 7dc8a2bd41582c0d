package ui

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/trezcool/lava/core/nav"
	"github.com/trezcool/lava/core/notification"
	"github.com/trezcool/lava/core/submission"
	"github.com/trezcool/lava/core/user"
)

type coachDashboardView struct {
	app *App

	students []user.Student
	pending  []submission.Submission
	unread   int
	err      error
}

func newCoachDashboardView(app *App) *coachDashboardView {
	return &coachDashboardView{app: app}
}

func (v *coachDashboardView) Page() nav.Page { return nav.CoachDashboard }

// Load joins all three fetches before the view leaves its loading state;
// partial arrival never renders.
func (v *coachDashboardView) Load(ctx context.Context) {
	sess := v.app.sess.Current()
	if sess.User == nil {
		return
	}
	coachID := sess.User.ID

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		students, err := v.app.api.CoachStudents(gctx, coachID)
		if err != nil {
			return err
		}
		v.students = students
		return nil
	})
	g.Go(func() error {
		pending, err := v.app.api.PendingSubmissions(gctx, coachID)
		if err != nil {
			return err
		}
		v.pending = pending
		return nil
	})
	g.Go(func() error {
		notifs, err := v.app.api.Notifications(gctx)
		if err != nil {
			return err
		}
		v.unread = notification.CountUnread(notifs)
		return nil
	})
	v.err = g.Wait()
}

// OpenReview jumps to the review page for one pending submission.
func (v *coachDashboardView) OpenReview(submissionID string) {
	v.app.Open(nav.AssignmentReview, submissionID)
}

func (v *coachDashboardView) Render(w io.Writer) {
	fmt.Fprintln(w, titleStyle.Render("Coach Dashboard"))
	if v.err != nil {
		fmt.Fprintln(w, errorStyle.Render(userMessage(v.err)))
		return
	}
	if v.unread > 0 {
		fmt.Fprintln(w, badgeStyle.Render(fmt.Sprintf("%d unread notifications", v.unread)))
	}
	fmt.Fprintln(w, labelStyle.Render(fmt.Sprintf("Students (%d):", len(v.students))))
	for _, std := range v.students {
		fmt.Fprintf(w, "  %s (%s)\n", std.Name, std.ID)
	}
	fmt.Fprintln(w, labelStyle.Render(fmt.Sprintf("Pending reviews (%d):", len(v.pending))))
	for _, sub := range v.pending {
		fmt.Fprintf(w, "  %s by %s [%s]\n", sub.ID, sub.StudentID, sub.Status)
	}
}
