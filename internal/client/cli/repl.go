package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

var errUnknownCommand = errors.New("unknown command")

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	execute(ctx context.Context, name string, args []string) error
}

// runREPL starts a simple read-eval-print loop for the DevPair CLI.
//
// It reads a line from reader, parses the first token as the command and
// hands it with the remaining tokens to a.execute. "help" lists the commands
// that make sense for the current session (see helpText). The loop exits on
// EOF, on context cancellation or when the user types "exit" or "quit".
//
// Errors returned by commands are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		printlnFn(fmt.Sprintf("devpair %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText(a.isLoggedIn()))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			err := a.execute(ctx, cmd, args)
			switch {
			case errors.Is(err, errUnknownCommand):
				printlnFn("Unknown command:", cmd)
			case err != nil:
				printlnFn("Error:", describeError(err))
			}
		}
	}
}
