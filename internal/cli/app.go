package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/hitec/nhplus/internal/app"
	"github.com/hitec/nhplus/internal/session"
)

// CLI binds the REPL to an application context.
type CLI struct {
	app    *app.App
	reader *bufio.Reader
	out    io.Writer
	kinds  map[string]*kind
}

func New(a *app.App, in io.Reader, out io.Writer) *CLI {
	c := &CLI{app: a, reader: bufio.NewReader(in), out: out}
	c.kinds = c.buildKinds()
	return c
}

// Run starts the REPL and returns when the user quits or input ends.
func (c *CLI) Run(ctx context.Context) {
	fmt.Fprintln(c.out, "Welcome to NHPlus (type 'help' for commands)")
	runREPL(ctx, c, c.status, c.reader)
}

func (c *CLI) isLoggedIn() bool {
	return c.app.Session.State() == session.LoggedIn
}

func (c *CLI) status() string {
	if u := c.app.Session.User(); u != nil {
		return "(" + u.Email + ")"
	}
	return ""
}
