package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/authgate/authgate/internal/client/client"
	"github.com/authgate/authgate/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Signup prompts for email, password, and name, and creates an account.
//
// The server signs the new user in as part of signup, so on success the
// session flag flips to authenticated immediately. The password byte slice
// is wiped before returning.
func (a *App) Signup(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.client.Signup(ctx, email, string(password), name); err != nil {
		log.Printf("Signup unsuccessful: %s", err.Error())
		return err
	}

	a.session.SetAuthenticated(email)
	fmt.Println("Account created. You are now signed in.")
	return nil
}

// Signin prompts for credentials and authenticates against the server.
//
// On success the session cookie lands in the client's jar and the local flag
// flips to authenticated. An ErrUnavailable is reported separately from bad
// credentials so the user knows whether to retry or re-type. The password is
// wiped before returning.
func (a *App) Signin(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.client.Signin(ctx, email, string(password)); err != nil {
		if errors.Is(err, client.ErrUnavailable) {
			log.Printf("Server unavailable, try again later")
		} else {
			log.Printf("Signin unsuccessful: %s", err.Error())
		}
		return err
	}

	a.session.SetAuthenticated(email)
	fmt.Println("Signed in successfully.")
	return nil
}

// Logout ends the session. The server call is best effort: the local flag
// clears regardless, so the user is never stuck signed in against a dead
// server.
func (a *App) Logout(ctx context.Context) error {
	if err := a.client.Logout(ctx); err != nil {
		log.Printf("Logout request failed: %s", err.Error())
	}
	a.session.Clear()
	fmt.Println("Signed out.")
	return nil
}

// Whoami re-validates the session against the server and reports the result.
// A rejected session clears the local flag.
func (a *App) Whoami(ctx context.Context) error {
	if err := a.client.ValidateToken(ctx); err != nil {
		a.session.Clear()
		fmt.Println("Session is no longer valid. Please sign in again.")
		return err
	}

	if email := a.session.Email(); email != "" {
		fmt.Printf("Signed in as %s\n", email)
	} else {
		fmt.Println("Session is valid.")
	}
	return nil
}
