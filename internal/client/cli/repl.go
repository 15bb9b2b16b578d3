package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn prints REPL chrome (prompt, help, errors). Tests stub it.
var printlnFn = fmt.Println

// execIface is what runREPL dispatches to. *App implements it.
type execIface interface {
	isLoggedIn() bool
	Guide(ctx context.Context) error
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Switch(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Explain(ctx context.Context, arg string) error
	CloseExplanation(ctx context.Context) error
	Status(ctx context.Context) error
	Logout(ctx context.Context) error
}

type lineResult struct {
	line string
	err  error
}

// readLineCtx reads one line from reader, giving up when ctx is done. The
// read itself cannot be interrupted, so an abandoned read finishes in the
// background; the caller must not touch reader again after ctx is done.
func readLineCtx(ctx context.Context, reader *bufio.Reader) (string, error) {
	ch := make(chan lineResult, 1)
	go func() {
		line, err := reader.ReadString('\n')
		ch <- lineResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		return r.line, r.err
	}
}

// runREPL reads commands line by line and dispatches them to a until input
// ends, ctx is cancelled or the user types "exit" or "quit". The first word
// is the command, the rest its argument. A failing command is reported and
// the loop goes on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("am %s > ", statusFn()))

		line, err := readLineCtx(ctx, reader)
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}
		if ctx.Err() != nil {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, arg := parts[0], strings.Join(parts[1:], " ")

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: guide, dashboard, explain <n>, close, status, logout, exit")
			} else {
				printlnFn("Available commands: guide, login, signup, switch, dashboard, explain <n>, close, status, exit")
			}

		case "guide":
			cmdErr = a.Guide(ctx)

		case "login":
			cmdErr = a.Login(ctx)

		case "signup", "register":
			cmdErr = a.Signup(ctx)

		case "switch":
			cmdErr = a.Switch(ctx)

		case "dashboard":
			cmdErr = a.Dashboard(ctx)

		case "explain":
			cmdErr = a.Explain(ctx, arg)

		case "close":
			cmdErr = a.CloseExplanation(ctx)

		case "status":
			cmdErr = a.Status(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", cmdErr)
		}
	}
}
