package session

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"

	"github.com/trezcool/lava/core/user"
)

// Claims is the identity the backend encodes in the access token. The token
// is opaque credential material to us; the signature is the server's to
// verify. We only read the claims to know who logged in.
type Claims struct {
	jwt.StandardClaims
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	UserType string `json:"user_type,omitempty"`
}

// User builds the session user from the claims; Subject carries the user id.
func (c Claims) User() user.User {
	return user.User{
		ID:       c.Subject,
		Username: c.Username,
		Email:    c.Email,
		Type:     c.UserType,
	}
}

func (c Claims) Expired(now time.Time) bool {
	return c.ExpiresAt > 0 && now.Unix() >= c.ExpiresAt
}

// ParseClaims decodes the claims without verifying the signature.
func ParseClaims(token string) (Claims, error) {
	claims := new(Claims)
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return Claims{}, errors.Wrap(err, "parsing access token")
	}
	if claims.Subject == "" || claims.UserType == "" {
		return Claims{}, errors.New("access token is missing identity claims")
	}
	return *claims, nil
}
