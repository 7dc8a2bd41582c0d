package ui

import (
	"context"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/trezcool/lava/core"
	"github.com/trezcool/lava/core/anki"
	"github.com/trezcool/lava/core/nav"
	"github.com/trezcool/lava/core/submission"
)

// historyView shows a student's full submission history alongside their
// spaced-repetition cards, with the review action for cards that came due.
type historyView struct {
	app       *App
	studentID string

	submissions []submission.Submission
	cards       []anki.Card
	err         error
}

func newHistoryView(app *App, studentID string) *historyView {
	if studentID == "" {
		if sess := app.sess.Current(); sess.User != nil {
			studentID = sess.User.ID
		}
	}
	return &historyView{app: app, studentID: studentID}
}

func (v *historyView) Page() nav.Page { return nav.SubmissionHistory }

func (v *historyView) Load(ctx context.Context) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		subs, err := v.app.api.StudentSubmissions(gctx, v.studentID)
		if err != nil {
			return err
		}
		v.submissions = subs
		return nil
	})
	g.Go(func() error {
		cards, err := v.app.api.StudentAnkiCards(gctx, v.studentID)
		if err != nil {
			return err
		}
		v.cards = cards
		return nil
	})
	v.err = g.Wait()
}

// DueCards returns the cards ready for review right now.
func (v *historyView) DueCards() []anki.Card {
	return anki.Due(v.cards, time.Now())
}

// ReviewCard grades a recall and swaps in the rescheduled card.
func (v *historyView) ReviewCard(cardID, grade int) error {
	card, err := v.app.api.ReviewAnkiCard(v.app.currentCtx(), cardID, anki.CardReview{Grade: grade})
	if err != nil {
		return err
	}
	for i, c := range v.cards {
		if c.ID == cardID {
			v.cards[i] = card
			break
		}
	}
	return nil
}

func (v *historyView) Render(w io.Writer) {
	fmt.Fprintln(w, titleStyle.Render("Submission History"))
	if v.err != nil {
		fmt.Fprintln(w, errorStyle.Render(userMessage(v.err)))
		return
	}
	for _, sub := range v.submissions {
		fmt.Fprintf(w, "%s [%s] %s\n", sub.SubmittedAt.Format("2006-01-02"), sub.Status, core.Truncate(sub.ProblemText, 60))
		if sub.CoachFeedback.Valid {
			fmt.Fprintf(w, "  feedback: %s\n", sub.CoachFeedback.String)
		}
	}
	if due := v.DueCards(); len(due) > 0 {
		fmt.Fprintln(w, labelStyle.Render(fmt.Sprintf("%d cards due for review:", len(due))))
		for _, c := range due {
			fmt.Fprintf(w, "  #%d %s\n", c.ID, c.Question)
		}
	}
}
