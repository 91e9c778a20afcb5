package cli

import (
	"context"
	"log"
	"os"

	"github.com/nadocloud/nadoquest/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a name, email and password and attempts to create
// a new account. Registration does not sign the user in; on success the
// backend's confirmation message is printed and the user logs in next.
//
// The password byte slice is securely wiped before returning. Any I/O or
// service error is returned unchanged.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	msg, err := a.auth.Register(ctx, email, string(password), name)
	if err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	if msg == "" {
		msg = "Success!"
	}
	printlnFn(msg)
	return nil
}

// Login prompts for credentials and authenticates against the backend.
// On success the session is persisted and family memberships are
// refreshed so the active-family prompt is immediately usable.
//
// The password is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Login(ctx, email, string(password)); err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	log.Printf("Login successful")

	if err := a.provider.Refresh(ctx); err != nil {
		log.Printf("could not refresh families: %v", err)
	}
	return nil
}

// Whoami prints the signed-in user and token expiry.
func (a *App) Whoami(ctx context.Context) error {
	if !a.requireAuth("/profile") {
		return nil
	}
	u := a.sessions.User()
	if u == nil {
		return nil
	}
	printlnFn(u.Name, "<"+u.Email+">", "id:", u.ID)
	if exp := a.sessions.TokenExpiresAt(); !exp.IsZero() {
		printlnFn("Token expires:", exp.Format("2006-01-02 15:04:05"))
	}
	return nil
}

// Logout clears the persisted session. The family membership snapshot is
// kept so the selection survives the next login.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Logged out")
	return nil
}
