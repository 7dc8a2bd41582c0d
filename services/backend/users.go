package backend

import (
	"context"

	"github.com/trezcool/lava/core/user"
)

// Me returns the authenticated user's profile.
func (c *Client) Me(ctx context.Context) (user.User, error) {
	var usr user.User
	err := c.get(ctx, "users.getProfile", "/users/me", &usr)
	return usr, err
}

func (c *Client) UpdateMe(ctx context.Context, uu user.UpdateUser) (user.User, error) {
	var usr user.User
	if err := uu.Validate(); err != nil {
		return usr, err
	}
	err := c.put(ctx, "users.updateProfile", "/users/me", uu, &usr)
	return usr, err
}

// UpdatePassword changes the account password; mismatched confirmation is
// caught before any network call.
func (c *Client) UpdatePassword(ctx context.Context, pu user.PasswordUpdate) error {
	if err := pu.Validate(); err != nil {
		return err
	}
	return c.put(ctx, "users.updatePassword", "/users/me/password", pu, nil)
}

func (c *Client) UpdateNotificationPrefs(ctx context.Context, prefs user.NotificationPrefs) (user.NotificationPrefs, error) {
	var out user.NotificationPrefs
	err := c.put(ctx, "users.updateNotificationPrefs", "/users/me/notifications", prefs, &out)
	return out, err
}

// DeactivateAccount disables the account server-side; the caller logs out next.
func (c *Client) DeactivateAccount(ctx context.Context) error {
	return c.delete(ctx, "users.deactivate", "/users/me")
}
