package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/example/choreboard/internal/keyring"
	"github.com/example/choreboard/internal/service"
)

// AuthLoginCmd stores a session cookie in the system keyring. The cookie
// comes from a browser login: the server's OIDC flow sets it, and the user
// pastes the value here.
type AuthLoginCmd struct {
	Cookie string `arg:"" optional:"" help:"Session cookie value from the browser. When omitted, prints the login URL."`
}

func (c *AuthLoginCmd) Run(ctx *Context) error {
	if strings.TrimSpace(c.Cookie) == "" {
		fmt.Printf("Open %s in a browser, sign in, then copy the %q cookie value and run:\n",
			ctx.Services.Session.LoginURL(), "session")
		fmt.Println("  choreboard auth login <cookie>")
		return nil
	}

	if !keyring.IsAvailable() {
		return fmt.Errorf("no OS keyring available to store the session cookie")
	}
	if err := keyring.SetSessionCookie(c.Cookie); err != nil {
		return fmt.Errorf("storing session cookie: %w", err)
	}

	// verify immediately so a bad paste fails loudly
	svc := ctx.Services.WithSessionCookie(c.Cookie)
	admin, err := svc.Session.Me(context.Background())
	if err != nil {
		if errors.Is(err, service.ErrNotAdmin) {
			fmt.Println("Cookie stored. Session is not an admin; admin commands will be unavailable.")
			return nil
		}
		return err
	}

	fmt.Printf("Logged in as %s (%s)\n", admin.Name, admin.Email)
	return nil
}

type AuthLogoutCmd struct{}

func (c *AuthLogoutCmd) Run(ctx *Context) error {
	if err := keyring.DeleteSessionCookie(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			fmt.Println("No stored session.")
			return nil
		}
		return err
	}
	fmt.Println("Session cleared.")
	return nil
}

type AuthWhoamiCmd struct{}

func (c *AuthWhoamiCmd) Run(ctx *Context) error {
	admin, err := ctx.Admin(context.Background())
	if err != nil {
		if errors.Is(err, service.ErrNotAdmin) {
			fmt.Println("Not an admin session.")
			return nil
		}
		return err
	}
	fmt.Printf("%s (%s)\n", admin.Name, admin.Email)
	return nil
}
