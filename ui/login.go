package ui

import (
	"context"
	"fmt"
	"io"

	"github.com/trezcool/lava/core/nav"
	"github.com/trezcool/lava/core/session"
	"github.com/trezcool/lava/core/user"
)

type loginView struct {
	app *App

	busy bool
	err  error
}

func newLoginView(app *App) *loginView {
	return &loginView{app: app}
}

func (v *loginView) Page() nav.Page { return nav.Login }

func (v *loginView) Load(context.Context) {} // nothing to fetch

// Submit performs the full login transition: credentials -> token ->
// session -> role-appropriate dashboard. A failure leaves the session
// Anonymous with no partial state.
func (v *loginView) Submit(emailOrUsername, password, userType string) error {
	if v.busy {
		return nil // an identical submit is already in flight
	}
	v.busy = true
	defer func() { v.busy = false }()
	v.err = nil

	creds := user.Credentials{
		EmailOrUsername: emailOrUsername,
		Password:        password,
		UserType:        userType,
	}
	token, err := v.app.api.Login(v.app.currentCtx(), creds)
	if err != nil {
		v.err = err
		return err
	}

	usr, err := v.app.sess.Establish(token, userType)
	if err != nil {
		v.err = err
		return err
	}

	v.app.Open(session.HomePage(usr))
	return nil
}

func (v *loginView) Render(w io.Writer) {
	fmt.Fprintln(w, titleStyle.Render("Welcome Back"))
	fmt.Fprintln(w, labelStyle.Render("Please enter your details to log in."))
	if v.err != nil {
		fmt.Fprintln(w, errorStyle.Render(userMessage(v.err)))
	}
}
