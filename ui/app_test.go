package ui

import (
	"bytes"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/lava/core/mastery"
	"github.com/trezcool/lava/core/nav"
	"github.com/trezcool/lava/core/notification"
	"github.com/trezcool/lava/core/session"
	"github.com/trezcool/lava/core/submission"
	"github.com/trezcool/lava/core/user"
	"github.com/trezcool/lava/services/backend"
	dummyfeedback "github.com/trezcool/lava/services/feedback/dummy"
	inmemstore "github.com/trezcool/lava/storage/session/inmem"
	testutil "github.com/trezcool/lava/tests"
)

var (
	coachUsr   = user.User{ID: "coach_01", Username: "moussa", Email: "moussa@test.test", Type: user.TypeCoach}
	studentUsr = user.User{ID: "std_01", Username: "amina", Email: "amina@test.test", Type: user.TypeStudent}

	testStudent = user.Student{ID: "std_01", Name: "Amina D."}

	testSubmission = submission.Submission{
		ID:              "sub_42",
		StudentID:       "std_01",
		ProblemText:     "Solve 2x + 3 = 7",
		LogicalPathText: "isolate x; divide by 2",
		Status:          submission.StatusPending,
		SubmittedAt:     time.Now().UTC(),
	}

	testVector = mastery.Vector{
		ID: "vec_9", AssessmentID: "asm_1", StudentID: "std_01", CreatedAt: time.Now().UTC(),
		Axis1Geo: 70, Axis1Alg: 65, Axis1Ana: 60,
		Axis2Opt: 55, Axis2Piv: 40, Axis2Dia: 50,
		Axis3Con: 62, Axis3Pro: 58, Axis3Ret: 66,
		Axis4Acc: 71, Axis4Gri: 80,
	}
)

// syncWriter keeps concurrent renders from interleaving mid-write.
type syncWriter struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (w *syncWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.Write(p)
}

func (w *syncWriter) String() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.String()
}

func setup(t *testing.T) (*App, *testutil.Server, *syncWriter) {
	t.Helper()
	srv := testutil.NewServer(t)
	sess := session.NewManager(inmemstore.NewStore())
	out := &syncWriter{}
	app := NewApp(&Options{
		Session:  sess,
		API:      backend.NewClient(testutil.NewConfig(srv.URL), sess, testutil.Logger()),
		Feedback: dummyfeedback.NewService(),
		Logger:   testutil.Logger(),
		Out:      out,
	})
	return app, srv, out
}

func signIn(t *testing.T, app *App, usr user.User) {
	t.Helper()
	token := user.TokenResponse{
		AccessToken: testutil.MintToken(t, usr, time.Now().Add(time.Hour)),
		TokenType:   "bearer",
	}
	_, err := app.Session().Establish(token, usr.Type)
	require.NoError(t, err)
}

func serveCoachDashboard(srv *testutil.Server) {
	srv.Handle(http.MethodGet, "/coaches/:id/students", http.StatusOK, []user.Student{testStudent})
	srv.Handle(http.MethodGet, "/coaches/:id/pending-submissions", http.StatusOK, []submission.Submission{testSubmission})
	srv.Handle(http.MethodGet, "/notifications", http.StatusOK, []notification.Notification{
		{ID: "ntf_1", UserID: "coach_01", Type: notification.TypeNewSubmission, Title: "New submission", CreatedAt: time.Now()},
	})
}

func TestAppLoginFlow(t *testing.T) {
	app, srv, out := setup(t)
	srv.Handle(http.MethodPost, "/auth/login", http.StatusOK, user.TokenResponse{
		AccessToken: testutil.MintToken(t, coachUsr, time.Now().Add(time.Hour)),
		TokenType:   "bearer",
	})
	serveCoachDashboard(srv)

	app.Start()
	app.WaitIdle()
	require.Equal(t, nav.Login, app.Controller().Page())

	login, ok := app.CurrentView().(*loginView)
	require.True(t, ok)
	require.NoError(t, login.Submit("moussa", "pwd", user.TypeCoach))
	app.WaitIdle()

	// the session and the dashboard landed together
	assert.True(t, app.Session().IsAuthenticated())
	assert.Equal(t, nav.CoachDashboard, app.Controller().Page())
	assert.Contains(t, out.String(), testStudent.Name)
}

func TestAppLoginRoleMismatch(t *testing.T) {
	app, srv, _ := setup(t)
	// the server issues a student token regardless of the requested portal
	srv.Handle(http.MethodPost, "/auth/login", http.StatusOK, user.TokenResponse{
		AccessToken: testutil.MintToken(t, studentUsr, time.Now().Add(time.Hour)),
		TokenType:   "bearer",
	})

	app.Start()
	app.WaitIdle()
	login := app.CurrentView().(*loginView)

	err := login.Submit("amina", "pwd", user.TypeCoach)
	assert.ErrorIs(t, err, session.ErrRoleMismatch)
	assert.False(t, app.Session().IsAuthenticated())
	assert.Equal(t, nav.Login, app.Controller().Page())
}

func TestAppLoginFailureLeavesNoState(t *testing.T) {
	app, srv, _ := setup(t)
	srv.HandleError(http.MethodPost, "/auth/login", http.StatusUnauthorized, "invalid credentials")

	app.Start()
	app.WaitIdle()
	login := app.CurrentView().(*loginView)

	err := login.Submit("moussa", "wrong", user.TypeCoach)
	assert.Error(t, err)
	assert.False(t, app.Session().IsAuthenticated())
	assert.Empty(t, app.Session().Token())
	assert.Equal(t, nav.Login, app.Controller().Page())
}

func TestAppAnonymousRedirect(t *testing.T) {
	app, _, _ := setup(t)
	app.Start()
	app.WaitIdle()

	app.Open(nav.CoachDashboard)
	app.WaitIdle()
	page, param := app.Controller().Current()
	assert.Equal(t, nav.Login, page)
	assert.Empty(t, param)
}

func TestAppResumeSession(t *testing.T) {
	app, srv, _ := setup(t)
	serveCoachDashboard(srv)
	signIn(t, app, coachUsr)

	app.Start()
	app.WaitIdle()
	assert.Equal(t, nav.CoachDashboard, app.Controller().Page())
}

// The dashboard only renders once every joined fetch has landed, regardless
// of the order they resolve in.
func TestAppDashboardJoinsFetches(t *testing.T) {
	app, srv, out := setup(t)
	serveCoachDashboard(srv)
	srv.SetDelay("/coaches/coach_01/students", 80*time.Millisecond)
	signIn(t, app, coachUsr)

	app.Open(nav.CoachDashboard)
	app.WaitIdle()

	rendered := out.String()
	assert.Contains(t, rendered, testStudent.Name)
	assert.Contains(t, rendered, testSubmission.ID)
}

// Navigating away mid-load discards the stale result: the abandoned view
// never renders.
func TestAppNavigateAwayDiscardsStaleLoad(t *testing.T) {
	app, srv, out := setup(t)
	serveCoachDashboard(srv)
	srv.Handle(http.MethodGet, "/users/me", http.StatusOK, coachUsr)
	srv.SetDelay("/notifications", 150*time.Millisecond)
	signIn(t, app, coachUsr)

	app.Open(nav.Notifications)
	app.Open(nav.Settings)
	app.WaitIdle()

	assert.Equal(t, nav.Settings, app.Controller().Page())
	rendered := out.String()
	assert.Contains(t, rendered, "Settings")
	assert.NotContains(t, rendered, "unread")
}

func TestAppReviewSubmitDebounce(t *testing.T) {
	app, srv, _ := setup(t)
	srv.Handle(http.MethodGet, "/submissions/sub_42", http.StatusOK, testSubmission)
	srv.Handle(http.MethodGet, "/students/std_01", http.StatusOK, testStudent)
	srv.Handle(http.MethodGet, "/coaches/students/std_01/latest_vector", http.StatusOK, testVector)
	srv.Handle(http.MethodPost, "/submissions/sub_42/review", http.StatusOK, nil)
	signIn(t, app, coachUsr)

	app.Open(nav.AssignmentReview, "sub_42")
	app.WaitIdle()

	view, ok := app.CurrentView().(*reviewView)
	require.True(t, ok)
	require.NoError(t, view.err)
	assert.Equal(t, testStudent, view.student)
	assert.Equal(t, testVector, view.vector)

	view.SetFeedback(submission.DecisionApproved, "Clean derivation.")
	require.True(t, view.CanSubmit())
	require.NoError(t, view.SubmitReview())
	assert.False(t, view.CanSubmit())

	// a second submit without a new edit sends nothing
	require.NoError(t, view.SubmitReview())
	var posts int
	for _, req := range srv.Requests() {
		if req.Method == http.MethodPost && req.Path == "/submissions/sub_42/review" {
			posts++
		}
	}
	assert.Equal(t, 1, posts)

	// editing re-arms the submit action
	view.SetFeedback(submission.DecisionNeedsRevision, "Actually, justify step 2.")
	assert.True(t, view.CanSubmit())
}

func TestAppReviewSuggestFeedback(t *testing.T) {
	app, srv, _ := setup(t)
	srv.Handle(http.MethodGet, "/submissions/sub_42", http.StatusOK, testSubmission)
	srv.Handle(http.MethodGet, "/students/std_01", http.StatusOK, testStudent)
	srv.Handle(http.MethodGet, "/coaches/students/std_01/latest_vector", http.StatusOK, testVector)
	signIn(t, app, coachUsr)

	app.Open(nav.AssignmentReview, "sub_42")
	app.WaitIdle()
	view := app.CurrentView().(*reviewView)

	fb := view.SuggestFeedback()
	assert.NotEmpty(t, fb.Feedback)
	assert.Equal(t, fb.Feedback, view.feedbackText)
}

func TestAppLogout(t *testing.T) {
	app, srv, _ := setup(t)
	serveCoachDashboard(srv)
	signIn(t, app, coachUsr)

	app.Start()
	app.WaitIdle()
	require.Equal(t, nav.CoachDashboard, app.Controller().Page())

	app.Logout()
	app.WaitIdle()
	assert.False(t, app.Session().IsAuthenticated())
	page, param := app.Controller().Current()
	assert.Equal(t, nav.Login, page)
	assert.Empty(t, param)
}

func TestAppStudentDashboard(t *testing.T) {
	app, srv, out := setup(t)
	srv.Handle(http.MethodGet, "/students/std_01", http.StatusOK, testStudent)
	srv.Handle(http.MethodGet, "/students/std_01/submissions", http.StatusOK, []submission.Submission{testSubmission})
	srv.Handle(http.MethodGet, "/students/std_01/mastery", http.StatusOK, []mastery.Entry{
		{StudentID: "std_01", ConceptID: "c1", MasteryScore: 90, Status: mastery.StatusMastered},
		{StudentID: "std_01", ConceptID: "c2", MasteryScore: 40, Status: mastery.StatusInProgress},
	})
	signIn(t, app, studentUsr)

	app.Start()
	app.WaitIdle()
	assert.Equal(t, nav.StudentDashboard, app.Controller().Page())
	assert.True(t, strings.Contains(out.String(), testStudent.Name))
}
