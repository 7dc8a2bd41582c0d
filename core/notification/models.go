package notification

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// Known notification types.
const (
	TypeAssignmentGraded = "assignment_graded"
	TypeNewFeedback      = "new_feedback"
	TypeNewStudent       = "new_student"
	TypeNewSubmission    = "new_submission"
	TypeReportSent       = "report_sent"
	TypePlatformUpdate   = "platform_update"
)

// Notification is a per-user message; IsRead flips false -> true via the
// read action and never reverts.
type Notification struct {
	ID        string      `json:"notification_id" validate:"required"`
	UserID    string      `json:"user_id" validate:"required"`
	Type      string      `json:"type" validate:"required,oneof=assignment_graded new_feedback new_student new_submission report_sent platform_update"`
	Title     string      `json:"title" validate:"required"`
	Message   string      `json:"message"`
	CreatedAt time.Time   `json:"created_at"`
	IsRead    bool        `json:"is_read"`
	RelatedID null.String `json:"related_id,omitempty"`
}

// CountUnread is what the views badge on.
func CountUnread(notifs []Notification) int {
	var n int
	for _, notif := range notifs {
		if !notif.IsRead {
			n++
		}
	}
	return n
}
