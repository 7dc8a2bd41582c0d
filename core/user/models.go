package user

import (
	"github.com/trezcool/lava/core"
)

// User types
const (
	TypeStudent = "student"
	TypeCoach   = "coach"
)

var AllTypes = []string{TypeStudent, TypeCoach}

// User is the authenticated account as served by /users/me.
type User struct {
	ID       string `json:"user_id" validate:"required"`
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
	Type     string `json:"user_type" validate:"required,oneof=student coach"`
}

func (u User) IsStudent() bool { return u.Type == TypeStudent }
func (u User) IsCoach() bool   { return u.Type == TypeCoach }

type Student struct {
	ID   string `json:"student_id" validate:"required"`
	Name string `json:"student_name" validate:"required"`
}

type Coach struct {
	ID   string `json:"coach_id" validate:"required"`
	Name string `json:"coach_name" validate:"required"`
}

// Credentials contains information needed to log in.
type Credentials struct {
	EmailOrUsername string `json:"email_or_username" validate:"required,notblank"`
	Password        string `json:"password" validate:"required"`
	UserType        string `json:"user_type" validate:"required,oneof=student coach"`
}

func (c *Credentials) Validate() error {
	c.EmailOrUsername = core.CleanString(c.EmailOrUsername, true /* lower */)
	return core.Validate.Struct(c)
}

// TokenResponse is the body of a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token" validate:"required"`
	TokenType   string `json:"token_type" validate:"required"`
}

// UpdateUser defines what profile information may be modified.
type UpdateUser struct {
	Username string `json:"username,omitempty" validate:"omitempty,min=3"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
}

func (uu *UpdateUser) Validate() error {
	uu.Username = core.CleanString(uu.Username, true /* lower */)
	uu.Email = core.CleanString(uu.Email, true /* lower */)
	return core.Validate.Struct(uu)
}

type PasswordUpdate struct {
	CurrentPassword    string `json:"current_password" validate:"required"`
	NewPassword        string `json:"new_password" validate:"required,min=8"`
	ConfirmNewPassword string `json:"confirm_new_password" validate:"required,eqfield=NewPassword"`
}

func (pu PasswordUpdate) Validate() error { return core.Validate.Struct(pu) }

type NotificationPrefs struct {
	NewAssignments    bool `json:"new_assignments"`
	FeedbackFromCoach bool `json:"feedback_from_coach"`
	PlatformUpdates   bool `json:"platform_updates"`
}
