package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/jobkeeper/internal/common"
)

// getSimpleText, getPassword and getMultiline point to the interactive input
// helpers and are swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getMultiline = GetMultiline

// credentials asks for an email, offering the last used one, and a password.
func (a *App) credentials(ctx context.Context) (string, []byte, error) {
	last := a.session.LastEmail(ctx)
	prompt := "Email"
	if last != "" {
		prompt += " (" + last + ")"
	}

	email, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", nil, err
	}
	if email == "" {
		email = last
	}
	if email == "" {
		return "", nil, fmt.Errorf("%w: email is required", common.ErrWrite)
	}

	password, err := getPassword(a.out)
	if err != nil {
		return "", nil, err
	}
	if len(password) == 0 {
		return "", nil, fmt.Errorf("%w: password is required", common.ErrWrite)
	}
	return strings.ToLower(email), password, nil
}

// SignUp creates an account and signs into it.
func (a *App) SignUp(ctx context.Context) error {
	if id, ok := a.session.Current(); ok {
		fmt.Fprintf(a.out, "Already signed in as %s.\n", id.Email)
		return nil
	}

	email, password, err := a.credentials(ctx)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	id, err := a.session.SignUp(ctx, email, string(password))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", id.Email)
	a.load(ctx)
	return nil
}

func (a *App) SignIn(ctx context.Context) error {
	if id, ok := a.session.Current(); ok {
		fmt.Fprintf(a.out, "Already signed in as %s.\n", id.Email)
		return nil
	}

	email, password, err := a.credentials(ctx)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	id, err := a.session.SignIn(ctx, email, string(password))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Signed in as %s.\n", id.Email)
	a.load(ctx)
	return nil
}

// SignOut ends the session; the cache drops everything on the state change.
func (a *App) SignOut(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not signed in.")
		return nil
	}
	a.session.SignOut(ctx)
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}
