package backend

import (
	"context"

	"github.com/trezcool/lava/core/notification"
)

// Notifications lists the authenticated user's notifications, newest first.
func (c *Client) Notifications(ctx context.Context) ([]notification.Notification, error) {
	var notifs []notification.Notification
	err := c.get(ctx, "notifications.list", "/notifications", &notifs)
	return notifs, err
}

func (c *Client) MarkNotificationRead(ctx context.Context, notificationID string) error {
	if err := requireID("notification_id", notificationID); err != nil {
		return err
	}
	return c.put(ctx, "notifications.markRead", "/notifications/"+notificationID+"/read", nil, nil)
}

// MarkAllNotificationsRead marks every notification of the authenticated
// user as read; scope is per-user, never global.
func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return c.put(ctx, "notifications.markAllRead", "/notifications/mark-all-read", nil, nil)
}
