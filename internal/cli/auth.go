package cli

import (
	"context"
	"errors"

	"github.com/pixelstudio/asia/internal/common"
	"github.com/pixelstudio/asia/internal/models"
	"github.com/pixelstudio/asia/internal/services"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a name, an email, and a password, creates the account,
// and signs the user in right away.
//
// Service errors are translated to the same short messages the assistant
// shows elsewhere. The password byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.auth.Register(ctx, name, email, password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrIncompleteFields):
			printlnFn(errorStyle.Render("Complete all fields."))
		case errors.Is(err, common.ErrAccountExists):
			printlnFn(errorStyle.Render("Account already exists."))
		default:
			a.logger.Error(ctx, "registration failed", "error", err)
			printlnFn(errorStyle.Render("Something went wrong."))
		}
		return err
	}

	email = models.NormalizeEmail(email)
	if err := a.sessions.Activate(ctx, user.ID, email, user.Name); err != nil {
		a.logger.Error(ctx, "saving session failed", "error", err)
		return err
	}
	a.setUser(user.Name, email)

	printlnFn("Account created and signed in.")
	return nil
}

// Login prompts for credentials, authenticates against the local store, and
// persists the session so it survives a restart.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.auth.Authenticate(ctx, email, password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrAccountNotFound):
			printlnFn(errorStyle.Render("Account not found."))
		case errors.Is(err, common.ErrWrongPassword):
			printlnFn(errorStyle.Render("Wrong password."))
		default:
			a.logger.Error(ctx, "login failed", "error", err)
			printlnFn(errorStyle.Render("Something went wrong."))
		}
		return err
	}

	email = models.NormalizeEmail(email)
	if err := a.sessions.Activate(ctx, user.ID, email, user.Name); err != nil {
		a.logger.Error(ctx, "saving session failed", "error", err)
		return err
	}
	a.setUser(user.Name, email)

	printlnFn("Signed in.")
	return nil
}

// Logout drops the persisted session and forgets the cached history view.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.Clear(ctx); err != nil {
		a.logger.Error(ctx, "clearing session failed", "error", err)
		return err
	}
	a.setUser("", "")

	a.mu.Lock()
	a.lastItems = nil
	a.lastStatus = services.StatusNotSignedIn
	a.mu.Unlock()

	printlnFn("Signed out.")
	return nil
}
