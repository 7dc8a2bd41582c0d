package nav

// Page is one of the fixed set of top-level views the controller can display.
type Page int

const (
	Login Page = iota
	CoachDashboard
	StudentDashboard
	AssignmentReview
	AssignmentSubmission
	Curriculum
	Notifications
	StudentDetails
	SubmissionHistory
	Settings
)

var pageNames = map[Page]string{
	Login:                "login",
	CoachDashboard:       "coach-dashboard",
	StudentDashboard:     "student-dashboard",
	AssignmentReview:     "assignment-review",
	AssignmentSubmission: "assignment-submission",
	Curriculum:           "curriculum",
	Notifications:        "notifications",
	StudentDetails:       "student-details",
	SubmissionHistory:    "submission-history",
	Settings:             "settings",
}

func (p Page) String() string {
	if name, ok := pageNames[p]; ok {
		return name
	}
	return "unknown"
}

// AllPages in declaration order.
var AllPages = []Page{
	Login, CoachDashboard, StudentDashboard, AssignmentReview, AssignmentSubmission,
	Curriculum, Notifications, StudentDetails, SubmissionHistory, Settings,
}

// CommonPages are visible to both roles; the primary sets are disjoint per role.
var (
	CommonPages         = []Page{Notifications, Curriculum, Settings}
	CoachPrimaryPages   = []Page{CoachDashboard, AssignmentReview, StudentDetails}
	StudentPrimaryPages = []Page{StudentDashboard, AssignmentSubmission, SubmissionHistory}
)

// Controller maps a requested logical page plus an optional context parameter
// (e.g. a submission id) to the view that should be visible. It performs no
// I/O and never fails; a view receiving a nonsensical param handles its own
// "not found". Access control is the session guard's concern, not ours.
type Controller struct {
	page  Page
	param string
}

func NewController() *Controller {
	return &Controller{page: Login}
}

// NavigateTo is a pure, synchronous, total state transition.
func (c *Controller) NavigateTo(page Page, param ...string) {
	c.page = page
	if len(param) > 0 {
		c.param = param[0]
	} else {
		c.param = ""
	}
}

// Reset forces (Login, "") as part of the logout step.
func (c *Controller) Reset() {
	c.page = Login
	c.param = ""
}

func (c *Controller) Current() (Page, string) {
	return c.page, c.param
}

func (c *Controller) Page() Page { return c.page }

func (c *Controller) Param() string { return c.param }
