package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/finanzas-network/fincli/internal/client/session"
	"github.com/finanzas-network/fincli/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates. On success the token is
// already durable in the store when this returns, so the caller can enter
// the authenticated area immediately and the guard will observe it.
//
// Failures are surfaced with a message differentiated by cause: rejected
// credentials, unreachable endpoint, or an unexpected server error. No
// credential is stored on failure.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Enter password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	err = a.auth.Login(ctx, email, password)
	switch {
	case err == nil:
		fmt.Fprintln(a.out, "Login successful.")
		return nil
	case errors.Is(err, common.ErrInvalidCredentials):
		fmt.Fprintln(a.out, "Email or password is incorrect.")
	case errors.Is(err, common.ErrEndpointUnavailable):
		fmt.Fprintln(a.out, "Could not reach the server. Check the configured base URL or try again later.")
	default:
		fmt.Fprintln(a.out, "Unexpected server error. Try again later.")
	}
	return err
}

// Register prompts for an email, a password and its confirmation, and
// creates the account. A mismatched confirmation is a local validation
// failure: no request is sent. Backend rejections are shown with the
// server's own detail message.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Enter password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(a.out, "Confirm password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if !bytes.Equal(password, confirm) {
		fmt.Fprintln(a.out, "Passwords do not match.")
		return common.ErrValidation
	}

	if err := a.auth.Register(ctx, email, password); err != nil {
		surfaceDetail(a.out, err, "Could not create the account. Try again later.")
		return err
	}

	fmt.Fprintln(a.out, "Account created. You can now log in.")
	return nil
}

// Logout clears the credential and resets the session. The store mutation
// completes before control returns to the login prompt, so no further
// request can carry the evicted token. Logging out with nothing stored
// still succeeds and still navigates.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.session = session.Unauthenticated()
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
