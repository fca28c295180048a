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
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	List(ctx context.Context) error
	Search(ctx context.Context, query string) error
	Add(ctx context.Context) error
	Show(ctx context.Context, id string) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

const (
	helpLoggedOut = "Available commands: register, login, exit"
	helpLoggedIn  = "Available commands: (l)ist, search [query], add, show <id>, edit <id>, delete <id>, whoami, logout, exit"
	loginFirst    = "Please log in first (type 'login')."
)

// runREPL starts a simple read-eval-print loop for the travelbook CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. The prompt and the loop's own messages go to
// out. Unknown commands are reported back to the user. The loop exits on EOF,
// when ctx is cancelled, or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help            show available commands
//	  - register        create an account
//	  - login           authenticate
//	  - exit | quit     leave the program
//
//	Logged in:
//	  - help            show available commands
//	  - l | list        list destinations
//	  - search [query]  filter by title or description
//	  - add             add a destination
//	  - show <id>       show one destination (unique id prefix is enough)
//	  - edit <id>       edit a destination
//	  - delete <id>     delete a destination
//	  - whoami          show the logged-in user
//	  - logout          log out
//	  - exit | quit     leave the program
//
// Logged-in commands issued without a session print a prompt to log in.
// Errors returned by command handlers are not fatal; handlers report their
// own errors.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, out io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}

		fmt.Fprintf(out, "tb %s> \n", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(out, helpLoggedIn)
			} else {
				fmt.Fprintln(out, helpLoggedOut)
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		case "l", "list", "search", "add", "show", "edit", "delete", "whoami", "logout":
			if !a.isLoggedIn() {
				fmt.Fprintln(out, loginFirst)
				continue
			}
			dispatchLoggedIn(ctx, a, out, cmd, argsOf(line, cmd))

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}
	}
}

// argsOf returns the text after cmd on line with its inner spacing intact.
func argsOf(line, cmd string) string {
	rest := strings.TrimPrefix(strings.TrimSpace(line), cmd)
	return strings.TrimSpace(rest)
}

func dispatchLoggedIn(ctx context.Context, a execIface, out io.Writer, cmd, rest string) {
	switch cmd {
	case "l", "list":
		_ = a.List(ctx)
	case "search":
		_ = a.Search(ctx, rest)
	case "add":
		_ = a.Add(ctx)
	case "whoami":
		_ = a.WhoAmI(ctx)
	case "logout":
		_ = a.Logout(ctx)
	case "show", "edit", "delete":
		args := strings.Fields(rest)
		if len(args) == 0 {
			fmt.Fprintf(out, "Usage: %s <id>\n", cmd)
			return
		}
		switch cmd {
		case "show":
			_ = a.Show(ctx, args[0])
		case "edit":
			_ = a.Edit(ctx, args[0])
		case "delete":
			_ = a.Delete(ctx, args[0])
		}
	}
}
