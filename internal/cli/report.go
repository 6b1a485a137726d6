package cli

import (
	"errors"
	"fmt"

	"github.com/hitec/nhplus/internal/common"
)

// report prints a user-facing message for err and returns it unchanged.
func (c *CLI) report(err error) error {
	if err == nil {
		return nil
	}

	var msg string
	switch {
	case errors.Is(err, common.ErrorValidation):
		msg = "Invalid input: " + err.Error()
	case errors.Is(err, common.ErrorUnauthorized):
		msg = "Login failed: invalid email or password"
	case errors.Is(err, common.ErrorNotLoggedIn):
		msg = "Please log in first"
	case errors.Is(err, common.ErrorAlreadyLoggedIn):
		msg = "Already logged in, log out first"
	case errors.Is(err, common.ErrorLocked):
		msg = "Refused: record is locked"
	case errors.Is(err, common.ErrorRetentionPeriod):
		msg = "Refused: retention period not reached"
	case errors.Is(err, common.ErrorConstraint):
		msg = "Refused: the change conflicts with related records"
	case errors.Is(err, common.ErrorNotFound):
		msg = "Not found: " + err.Error()
	default:
		msg = "Error: " + err.Error()
	}
	fmt.Fprintln(c.out, msg)
	return err
}
