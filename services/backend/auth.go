package backend

import (
	"context"

	"github.com/trezcool/lava/core/user"
)

// Login exchanges credentials for an access token. Invalid input fails
// before any network call.
func (c *Client) Login(ctx context.Context, creds user.Credentials) (user.TokenResponse, error) {
	var token user.TokenResponse
	if err := creds.Validate(); err != nil {
		return token, err
	}
	err := c.post(ctx, "auth.login", "/auth/login", creds, &token)
	return token, err
}
