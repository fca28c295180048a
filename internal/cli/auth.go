package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/travelbook/internal/common"
)

// getSimpleText, getMultiline and getPassword are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getMultiline  = GetMultiline
	getPassword   = GetPassword
)

// Register prompts for email and name, then delegates to RegisterUser.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	return a.RegisterUser(ctx, email, name)
}

// RegisterUser prompts for a password and creates the account. It does not
// log the new user in. The password is wiped before returning.
func (a *App) RegisterUser(ctx context.Context, email, name string) error {
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.sessions.Register(ctx, email, password, name); err != nil {
		a.report(ctx, "register", err)
		return err
	}

	fmt.Fprintln(a.out, "Success! You can now log in.")
	return nil
}

// Login prompts for credentials and opens a session. On success the view is
// loaded for the new user.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.sessions.Login(ctx, email, password)
	if err != nil {
		a.report(ctx, "login", err)
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", u.Name)

	if err := a.reloadView(ctx); err != nil {
		a.report(ctx, "load destinations", err)
		return err
	}
	return nil
}

// Logout ends the session and discards the view.
func (a *App) Logout(ctx context.Context) error {
	a.view = nil
	if err := a.sessions.Logout(ctx); err != nil {
		a.report(ctx, "logout", err)
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// WhoAmI prints the logged-in user.
func (a *App) WhoAmI(ctx context.Context) error {
	u, err := a.currentUser()
	if err != nil {
		a.report(ctx, "whoami", err)
		return err
	}
	fmt.Fprintf(a.out, "%s <%s>\n", u.Name, u.Email)
	return nil
}
