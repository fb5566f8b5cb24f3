package cli

import (
	"context"

	"github.com/RitishHUB/polling-frountend/internal/client/models"
	"github.com/RitishHUB/polling-frountend/internal/client/pages"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and signs in. On success the router moves
// to the role's dashboard; on failure the form's message is printed.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.ui)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.ui)
	if err != nil {
		return err
	}

	if _, err := a.login.Login(ctx, email, password); err != nil {
		a.ui.Alert(a.login.Error())
		return err
	}
	return nil
}

// Register prompts for a new account. The server assigns the role; students
// may give their roll number and department up front.
func (a *App) Register(ctx context.Context) error {
	var req models.RegisterRequest
	var err error

	if req.Name, err = getSimpleText(a.reader, "Enter full name", a.ui); err != nil {
		return err
	}
	if req.Email, err = getSimpleText(a.reader, "Enter email", a.ui); err != nil {
		return err
	}
	if req.Password, err = getPassword(a.reader, a.ui); err != nil {
		return err
	}
	if req.RollNumber, err = getSimpleText(a.reader, "Roll number (optional)", a.ui); err != nil {
		return err
	}
	if req.Department, err = getSimpleText(a.reader, "Department (optional)", a.ui); err != nil {
		return err
	}

	if _, err := a.login.Register(ctx, req); err != nil {
		a.ui.Alert(a.login.Error())
		return err
	}
	return nil
}

// Logout ends the session from any page.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	a.router.Navigate(pages.RouteLogin)
	a.ui.printf("Logged out.\n")
	return nil
}
