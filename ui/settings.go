package ui

import (
	"context"
	"fmt"
	"io"

	"github.com/trezcool/lava/core/nav"
	"github.com/trezcool/lava/core/user"
)

// settingsView manages the signed-in user's profile, password and
// notification preferences, and account deactivation.
type settingsView struct {
	app *App

	usr   user.User
	prefs user.NotificationPrefs
	err   error
	busy  bool
}

func newSettingsView(app *App) *settingsView { return &settingsView{app: app} }

func (v *settingsView) Page() nav.Page { return nav.Settings }

func (v *settingsView) Load(ctx context.Context) {
	v.usr, v.err = v.app.api.Me(ctx)
}

func (v *settingsView) UpdateProfile(username, email string) error {
	if v.busy {
		return nil
	}
	v.busy = true
	defer func() { v.busy = false }()

	usr, err := v.app.api.UpdateMe(v.app.currentCtx(), user.UpdateUser{Username: username, Email: email})
	if err != nil {
		return err
	}
	v.usr = usr
	return nil
}

func (v *settingsView) ChangePassword(current, new_, confirm string) error {
	if v.busy {
		return nil
	}
	v.busy = true
	defer func() { v.busy = false }()

	return v.app.api.UpdatePassword(v.app.currentCtx(), user.PasswordUpdate{
		CurrentPassword:    current,
		NewPassword:        new_,
		ConfirmNewPassword: confirm,
	})
}

func (v *settingsView) UpdatePrefs(prefs user.NotificationPrefs) error {
	out, err := v.app.api.UpdateNotificationPrefs(v.app.currentCtx(), prefs)
	if err != nil {
		return err
	}
	v.prefs = out
	return nil
}

// Deactivate disables the account server-side then signs out locally.
func (v *settingsView) Deactivate() error {
	if err := v.app.api.DeactivateAccount(v.app.currentCtx()); err != nil {
		return err
	}
	v.app.Logout()
	return nil
}

func (v *settingsView) Render(w io.Writer) {
	fmt.Fprintln(w, titleStyle.Render("Settings"))
	if v.err != nil {
		fmt.Fprintln(w, errorStyle.Render(userMessage(v.err)))
		return
	}
	fmt.Fprintf(w, "Username: %s\n", v.usr.Username)
	fmt.Fprintf(w, "Email: %s\n", v.usr.Email)
	fmt.Fprintf(w, "Role: %s\n", v.usr.Type)
}
