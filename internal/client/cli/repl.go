package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Me(ctx context.Context) error
	Refresh(ctx context.Context) error
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
}

// runREPL reads one command per line and dispatches it to a. Errors from
// commands are printed and the loop continues. The loop exits on EOF or on
// "exit"/"quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, out io.Writer) {
	for {
		fmt.Fprintf(out, "gw%s> ", statusFn())

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		var cmdErr error
		switch cmd := parts[0]; cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(out, "Available commands: me, refresh, logout, ping, exit")
			} else {
				fmt.Fprintln(out, "Available commands: register, login, ping, exit")
			}
		case "register":
			cmdErr = a.Register(ctx)
		case "login":
			cmdErr = a.Login(ctx)
		case "me":
			cmdErr = a.Me(ctx)
		case "refresh":
			cmdErr = a.Refresh(ctx)
		case "logout":
			cmdErr = a.Logout(ctx)
		case "ping":
			cmdErr = a.Ping(ctx)
		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return
		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}

		if cmdErr != nil {
			fmt.Fprintln(out, "Error:", cmdErr)
		}
	}
}
