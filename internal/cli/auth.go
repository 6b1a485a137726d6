package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/hitec/nhplus/internal/app"
	"github.com/hitec/nhplus/internal/common"
	"github.com/hitec/nhplus/internal/models"
)

func (c *CLI) Login(ctx context.Context) error {
	if c.isLoggedIn() {
		return c.report(common.ErrorAlreadyLoggedIn)
	}

	email, err := GetSimpleText(c.reader, "Enter email", c.out)
	if err != nil {
		return c.report(err)
	}
	password, err := GetPassword(c.out)
	if err != nil {
		return c.report(err)
	}
	defer common.WipeByteArray(password)

	u, err := c.app.Login(ctx, email, string(password))
	if err != nil {
		return c.report(err)
	}
	fmt.Fprintf(c.out, "Logged in as %s\n", u.Email)
	return nil
}

func (c *CLI) Logout(ctx context.Context) error {
	if err := c.app.Logout(ctx); err != nil {
		return c.report(err)
	}
	fmt.Fprintln(c.out, "Logged out")
	return nil
}

// Register creates another back office account. It requires a session.
func (c *CLI) Register(ctx context.Context) error {
	if !c.isLoggedIn() {
		return c.report(common.ErrorNotLoggedIn)
	}

	email, err := GetSimpleText(c.reader, "Enter email of the new user", c.out)
	if err != nil {
		return c.report(err)
	}
	password, err := GetPassword(c.out)
	if err != nil {
		return c.report(err)
	}
	defer common.WipeByteArray(password)

	s, err := GetSimpleText(c.reader, "Status (0 or 1)", c.out)
	if err != nil {
		return c.report(err)
	}
	status, err := strconv.Atoi(s)
	if err != nil {
		return c.report(fmt.Errorf("invalid status %q: %w", s, common.ErrorValidation))
	}

	pw := string(password)
	u, err := app.Run(ctx, c.app, func(ctx context.Context) (*models.User, error) {
		return c.app.Auth.Register(ctx, email, pw, status)
	})
	if err != nil {
		return c.report(err)
	}
	fmt.Fprintf(c.out, "Registered user %d (%s)\n", u.ID, u.Email)
	return nil
}
