package cli

import (
	"context"
	"errors"
	"strings"

	"svcadmin/internal/auth"
	"svcadmin/internal/shared"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates. The email gets a cheap
// shape check before the authenticator is consulted. On success the session
// token is attached to the backend client and the dashboard page is loaded.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	if !strings.Contains(email, "@") {
		a.notify.Error("Please enter a valid email")
		return nil
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	session, err := a.auth.Authenticate(ctx, auth.Credentials{
		Email:    email,
		Password: string(password),
	})
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			a.notify.Error("Invalid email or password")
			return nil
		}
		a.notify.Error("Login failed")
		return err
	}

	a.session = session
	a.client.SetToken(session.Token)
	a.notify.Success("Login successful")
	a.log.Info(ctx, "admin logged in", "email", session.Email)

	a.switchPage(ctx, PageDashboard)
	return nil
}

// Logout drops the session and detaches the token from the client.
func (a *App) Logout(ctx context.Context) {
	if a.session == nil {
		return
	}
	a.log.Info(ctx, "admin logged out", "email", a.session.Email)
	a.session = nil
	a.client.SetToken("")
	a.notify.Success("Logged out")
}
