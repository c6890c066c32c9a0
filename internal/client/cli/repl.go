package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/gophfeed/internal/client/navigator"
	"github.com/dmitrijs2005/gophfeed/internal/common"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	group() navigator.Group
	screen() navigator.Screen
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Home(ctx context.Context, refresh bool) error
	Profile(ctx context.Context) error
	Back(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL reads commands line by line from reader, dispatches to a and writes
// prompts and notices to out.
// Only the commands of the current screen group are accepted; the group is
// re-read before every prompt, so a login or logout switches the command
// set immediately. The loop ends on EOF or on "exit"/"quit".
//
//	Unauthenticated group:
//	  - login          : sign in
//	  - register       : create an account
//	  - help           : show available commands
//	  - exit | quit    : leave the program
//
//	Authenticated group:
//	  - home | feed    : show the feed
//	  - refresh        : re-fetch the feed
//	  - profile        : show the profile
//	  - back           : previous screen
//	  - logout         : log out (asks for confirmation)
//	  - help           : show available commands
//	  - exit | quit    : leave the program
//
// A failed command prints exactly one notice.
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader, out io.Writer) {
	for {
		fmt.Fprintf(out, "gophfeed (%s)> ", a.screen())

		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			fmt.Fprintln(out)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		if cmd == "exit" || cmd == "quit" {
			fmt.Fprintln(out, "Bye!")
			return
		}
		if cmd == "help" {
			fmt.Fprintln(out, helpFor(a.group()))
			continue
		}

		action := lookup(a, cmd)
		if action == nil {
			fmt.Fprintln(out, "Unknown command:", cmd)
			continue
		}
		if err := action(ctx); err != nil {
			fmt.Fprintln(out, common.Notice(err))
		}
	}
}

// lookup resolves cmd against the commands of the current group.
func lookup(a execIface, cmd string) func(context.Context) error {
	switch a.group().Name {
	case navigator.GroupUnauthenticated.Name:
		switch cmd {
		case "login":
			return a.Login
		case "register":
			return a.Register
		}

	case navigator.GroupAuthenticated.Name:
		switch cmd {
		case "home", "feed":
			return func(ctx context.Context) error { return a.Home(ctx, false) }
		case "refresh":
			return func(ctx context.Context) error { return a.Home(ctx, true) }
		case "profile":
			return a.Profile
		case "back":
			return a.Back
		case "logout":
			return a.Logout
		}
	}
	return nil
}

func helpFor(g navigator.Group) string {
	switch g.Name {
	case navigator.GroupAuthenticated.Name:
		return "Available commands: home (feed), refresh, profile, back, logout, exit"
	case navigator.GroupUnauthenticated.Name:
		return "Available commands: login, register, exit"
	default:
		return "Please wait..."
	}
}
