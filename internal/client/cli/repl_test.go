package cli

import (
	"bufio"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool
	err      error

	calls []string
	args  [][]string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }

func (f *fakeExec) execute(_ context.Context, name string, args []string) error {
	if _, ok := lookupCommand(name); !ok {
		return errUnknownCommand
	}
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	if name == "login" {
		f.loggedIn = true
	}
	return f.err
}

func input(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	captureOutput(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, input(
		"help",
		"login",
		"",
		"project 12",
		"milestone-toggle 12 3",
		"exit",
		"dashboard",
	))

	assert.Equal(t, []string{"login", "project", "milestone-toggle"}, exec.calls)
	assert.Equal(t, []string{"12", "3"}, exec.args[2])
}

func TestRunREPL_UnknownAndErrors(t *testing.T) {
	out := captureOutput(t)

	exec := &fakeExec{err: errors.New("boom")}
	runREPL(context.Background(), exec, func() string { return "" }, input("foobar", "projects", "quit"))

	assert.Contains(t, *out, "Unknown command: foobar")
	assert.Contains(t, *out, "Error: boom")
	assert.Contains(t, *out, "Bye!")
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	captureOutput(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, input("projects"))

	assert.Equal(t, []string{"projects"}, exec.calls)
}

func TestRunREPL_StopsOnCancel(t *testing.T) {
	captureOutput(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	runREPL(ctx, exec, func() string { return "" }, input("projects", "projects"))

	assert.Empty(t, exec.calls)
}

func TestRunREPL_HelpDependsOnSession(t *testing.T) {
	out := captureOutput(t)

	runREPL(context.Background(), &fakeExec{}, func() string { return "" }, input("help", "quit"))
	joined := strings.Join(*out, "\n")
	require.Contains(t, joined, "login")
	assert.NotContains(t, joined, "myprojects")

	*out = nil
	runREPL(context.Background(), &fakeExec{loggedIn: true}, func() string { return "" }, input("help", "quit"))
	joined = strings.Join(*out, "\n")
	assert.Contains(t, joined, "myprojects")
	assert.NotContains(t, joined, "register")
}
