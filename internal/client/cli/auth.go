package cli

import (
	"context"
	"fmt"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a user name, an optional email and a password, then
// creates the account.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email (empty for default)", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.client.Register(ctx, userName, password, email); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Success!")
	return nil
}

// Login prompts for credentials and keeps the issued token pair in the client.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.client.Login(ctx, userName, password); err != nil {
		return err
	}

	a.userName = userName
	fmt.Fprintln(a.out, "Login successful")
	return nil
}

func (a *App) Me(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	p, err := a.client.Me(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "username: %s\nemail:    %s\nrole:     %s\n", p.UserName, p.Email, p.Role)
	return nil
}

func (a *App) Refresh(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.client.Refresh(ctx); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Access token refreshed")
	return nil
}

// Logout revokes the session's refresh token.
func (a *App) Logout(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.client.Logout(ctx); err != nil {
		return err
	}

	a.userName = ""
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) Ping(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.client.Ping(ctx); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "OK")
	return nil
}
