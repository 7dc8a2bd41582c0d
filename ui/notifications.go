package ui

import (
	"context"
	"fmt"
	"io"

	"github.com/trezcool/lava/core/nav"
	"github.com/trezcool/lava/core/notification"
)

// notificationsView lists the signed-in user's notifications and lets them
// be marked read, one at a time or all at once. Read flags flip locally on
// success so the badge count stays honest without a refetch.
type notificationsView struct {
	app *App

	notifs []notification.Notification
	err    error
}

func newNotificationsView(app *App) *notificationsView { return &notificationsView{app: app} }

func (v *notificationsView) Page() nav.Page { return nav.Notifications }

func (v *notificationsView) Load(ctx context.Context) {
	v.notifs, v.err = v.app.api.Notifications(ctx)
}

func (v *notificationsView) Unread() int { return notification.CountUnread(v.notifs) }

// MarkRead marks a single notification read; already-read ones are no-ops.
func (v *notificationsView) MarkRead(notificationID string) error {
	for i, n := range v.notifs {
		if n.ID != notificationID {
			continue
		}
		if n.IsRead {
			return nil
		}
		if err := v.app.api.MarkNotificationRead(v.app.currentCtx(), notificationID); err != nil {
			return err
		}
		v.notifs[i].IsRead = true
		return nil
	}
	return nil
}

// MarkAllRead marks every notification of the signed-in user read.
func (v *notificationsView) MarkAllRead() error {
	if err := v.app.api.MarkAllNotificationsRead(v.app.currentCtx()); err != nil {
		return err
	}
	for i := range v.notifs {
		v.notifs[i].IsRead = true
	}
	return nil
}

func (v *notificationsView) Render(w io.Writer) {
	fmt.Fprintln(w, titleStyle.Render("Notifications"))
	if v.err != nil {
		fmt.Fprintln(w, errorStyle.Render(userMessage(v.err)))
		return
	}
	if unread := v.Unread(); unread > 0 {
		fmt.Fprintln(w, badgeStyle.Render(fmt.Sprintf("%d unread", unread)))
	}
	for _, n := range v.notifs {
		marker := " "
		if !n.IsRead {
			marker = "*"
		}
		fmt.Fprintf(w, "%s [%s] %s: %s\n", marker, n.Type, n.Title, n.Message)
	}
}
