package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for REPL output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL drives. *CLI satisfies it.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Register(ctx context.Context) error
	List(ctx context.Context, args []string) error
	Add(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Lock(ctx context.Context, args []string) error
}

const (
	helpLoggedOut = "Available commands: login, exit"
	helpLoggedIn  = "Available commands: list <patients|caregivers|treatments|users> [pid], " +
		"add <patient|caregiver|treatment>, show <kind> <id>, edit <kind> <id>, delete <kind> <id>, lock <kind> <id>, register, logout, exit"
)

// runREPL reads commands line by line from reader and dispatches them to a
// until EOF, "exit" or "quit". Command errors have already been reported by
// the handlers and do not stop the loop.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("nhplus %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				printlnFn("input error:", err)
			}
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "register":
			_ = a.Register(ctx)

		case "l", "list":
			_ = a.List(ctx, args)

		case "add":
			_ = a.Add(ctx, args)

		case "show":
			_ = a.Show(ctx, args)

		case "edit":
			_ = a.Edit(ctx, args)

		case "delete", "rm":
			_ = a.Delete(ctx, args)

		case "lock":
			_ = a.Lock(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
