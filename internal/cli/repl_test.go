package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  [][]string
}

func (f *fakeExec) record(name string, args []string) {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Login(ctx context.Context) error {
	f.record("login", nil)
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.record("logout", nil)
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Register(ctx context.Context) error { f.record("register", nil); return nil }
func (f *fakeExec) List(ctx context.Context, args []string) error {
	f.record("list", args)
	return nil
}
func (f *fakeExec) Add(ctx context.Context, args []string) error  { f.record("add", args); return nil }
func (f *fakeExec) Show(ctx context.Context, args []string) error { f.record("show", args); return nil }
func (f *fakeExec) Edit(ctx context.Context, args []string) error { f.record("edit", args); return nil }
func (f *fakeExec) Delete(ctx context.Context, args []string) error {
	f.record("delete", args)
	return nil
}
func (f *fakeExec) Lock(ctx context.Context, args []string) error { f.record("lock", args); return nil }

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	captureOutput(t)

	input := strings.Join([]string{
		"help",
		"login",
		"",
		"list patients",
		"l treatments 3",
		"add caregiver",
		"delete patient 7",
		"rm treatment 2",
		"lock caregiver 3",
		"register",
		"show patient 1",
		"edit treatment 4",
		"logout",
		"exit",
		"list patients",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader(input)))

	assert.Equal(t, []string{"login", "list", "list", "add", "delete", "delete", "lock", "register", "show", "edit", "logout"}, exec.calls)
	assert.Equal(t, []string{"patients"}, exec.args[1])
	assert.Equal(t, []string{"treatments", "3"}, exec.args[2])
	assert.Equal(t, []string{"patient", "7"}, exec.args[4])
	assert.Equal(t, []string{"treatment", "2"}, exec.args[5])
	assert.Equal(t, []string{"patient", "1"}, exec.args[8])
	assert.Equal(t, []string{"treatment", "4"}, exec.args[9])
}

func TestRunREPL_HelpDependsOnSession(t *testing.T) {
	out := captureOutput(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("help\nlogin\nhelp\nquit\n")))

	assert.Contains(t, *out, helpLoggedOut)
	assert.Contains(t, *out, helpLoggedIn)
	assert.Contains(t, *out, "Bye!")
}

func TestRunREPL_UnknownCommandAndEOF(t *testing.T) {
	out := captureOutput(t)

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader("frobnicate now")))

	require.Empty(t, exec.calls)
	assert.Contains(t, *out, "Unknown command: frobnicate")
	assert.NotContains(t, *out, "Bye!")
}
