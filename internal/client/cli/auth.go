package cli

import (
	"context"
	"fmt"

	"github.com/Annomy111/foerder-finder/internal/client/api"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for account details and creates a new account. The
// user still has to log in afterwards.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	schoolName, err := getSimpleText(a.reader, "Enter school name", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	_, err = a.api.Auth.Register(ctx, api.RegisterRequest{
		Email:      email,
		Password:   string(password),
		SchoolName: schoolName,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Account created, you can log in now.")
	return nil
}

// Login prompts for credentials and authenticates. On success the session
// is persisted, so the next start of the client is already logged in.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	resp, err := a.api.Auth.Login(ctx, email, string(password))
	if err != nil {
		fmt.Fprintln(a.out, "Login failed:", err)
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s (%s)\n", resp.User.Email, resp.User.SchoolName)
	return nil
}

// Logout clears the persisted session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.api.Auth.Logout(ctx); err != nil {
		return err
	}
	a.application = nil
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// whoami prints the current session owner.
func (a *App) whoami() {
	snapshot := a.session.Snapshot()
	if !snapshot.IsAuthenticated || snapshot.User == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return
	}
	fmt.Fprintf(a.out, "%s (%s, %s)\n", snapshot.User.Email, snapshot.User.SchoolName, snapshot.User.Role)
	if expiry, ok := a.session.TokenExpiry(); ok {
		fmt.Fprintf(a.out, "Token valid until %s\n", expiry.Format("2006-01-02 15:04"))
	}
}
