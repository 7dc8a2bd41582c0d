package ui

import (
	"context"
	"io"
	"sync"

	"github.com/trezcool/lava/core"
	"github.com/trezcool/lava/core/nav"
	"github.com/trezcool/lava/core/session"
	"github.com/trezcool/lava/services/backend"
)

type (
	Options struct {
		Session  *session.Manager
		API      *backend.Client
		Feedback core.FeedbackService
		Logger   core.Logger
		Out      io.Writer
	}

	// App owns the navigation controller and the lifetime of the current
	// view. Opening a page cancels the previous view's fetches; a fetch
	// resolving after its view was replaced never touches app state.
	App struct {
		ctrl     *nav.Controller
		sess     *session.Manager
		api      *backend.Client
		feedback core.FeedbackService
		log      core.Logger
		out      io.Writer

		mu      sync.Mutex
		view    View
		viewCtx context.Context
		cancel  context.CancelFunc
		wg      sync.WaitGroup
	}
)

func NewApp(opts *Options) *App {
	return &App{
		ctrl:     nav.NewController(),
		sess:     opts.Session,
		api:      opts.API,
		feedback: opts.Feedback,
		log:      opts.Logger,
		out:      opts.Out,
	}
}

// Start resumes a persisted session straight to the role-appropriate
// dashboard, or lands on Login.
func (a *App) Start() {
	usr, err := a.sess.Resume()
	if err != nil {
		a.Open(nav.Login)
		return
	}
	a.Open(session.HomePage(usr))
}

// Open navigates to page. The transition itself is synchronous and total;
// the destination view's fetches run until done or until the next Open
// cancels them. Anonymous users are redirected to Login by the session
// guard, not by each view.
func (a *App) Open(page nav.Page, param ...string) {
	var p string
	if len(param) > 0 {
		p = param[0]
	}

	a.mu.Lock()
	if a.cancel != nil {
		a.cancel()
	}
	page = a.sess.Authorize(page)
	if page == nav.Login {
		p = ""
	}
	a.ctrl.NavigateTo(page, p)

	view := a.buildView(page, p)
	ctx, cancel := context.WithCancel(context.Background())
	a.view = view
	a.viewCtx = ctx
	a.cancel = cancel
	a.mu.Unlock()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		view.Load(ctx)
		if ctx.Err() != nil {
			return // navigated away; discard
		}
		a.mu.Lock()
		defer a.mu.Unlock()
		if a.view != view {
			return
		}
		view.Render(a.out)
	}()
}

// Logout clears the session and forces (Login, "") in the same logical step.
func (a *App) Logout() {
	a.mu.Lock()
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	if err := a.sess.Logout(); err != nil {
		a.log.Warn("clearing persisted session", err)
	}
	a.ctrl.Reset()
	a.view = nil
	a.mu.Unlock()

	a.Open(nav.Login)
}

// CurrentView returns the view being displayed.
func (a *App) CurrentView() View {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.view
}

// Controller exposes navigation state for the shell and tests.
func (a *App) Controller() *nav.Controller { return a.ctrl }

func (a *App) Session() *session.Manager { return a.sess }

// WaitIdle blocks until in-flight view loads settle; the console shell uses
// it between commands.
func (a *App) WaitIdle() { a.wg.Wait() }

// currentCtx returns the current view's context; user actions fired from a
// view share its lifetime, since navigating away invalidates the whole view.
func (a *App) currentCtx() context.Context {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.viewCtx == nil {
		return context.Background()
	}
	return a.viewCtx
}

func (a *App) buildView(page nav.Page, param string) View {
	switch page {
	case nav.Login:
		return newLoginView(a)
	case nav.CoachDashboard:
		return newCoachDashboardView(a)
	case nav.StudentDashboard:
		return newStudentDashboardView(a)
	case nav.AssignmentReview:
		return newReviewView(a, param)
	case nav.AssignmentSubmission:
		return newSubmitView(a)
	case nav.Curriculum:
		return newCurriculumView(a)
	case nav.Notifications:
		return newNotificationsView(a)
	case nav.StudentDetails:
		return newStudentDetailsView(a, param)
	case nav.SubmissionHistory:
		return newHistoryView(a, param)
	case nav.Settings:
		return newSettingsView(a)
	default:
		return newLoginView(a)
	}
}
