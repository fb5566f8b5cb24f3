package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/RitishHUB/polling-frountend/internal/client/pages"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	route() string

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Go(ctx context.Context, args []string) error

	Show(ctx context.Context) error
	Refresh(ctx context.Context) error
	Vote(ctx context.Context, args []string) error
	Badges(ctx context.Context) error
	Profile(ctx context.Context) error
	NewPoll(ctx context.Context) error
	Results(ctx context.Context, args []string) error
	DeletePoll(ctx context.Context, args []string) error
	Users(ctx context.Context) error
	DeleteUser(ctx context.Context, args []string) error

	// settle mounts the page for the route a command may have moved to.
	settle(ctx context.Context)
}

var helpByRoute = map[string]string{
	pages.RouteLogin:   "Available commands: login, register, go <route>, logout, exit",
	pages.RouteStudent: "Available commands: (l)ist, refresh, vote <poll> <option>, badges, profile, go <route>, logout, exit",
	pages.RouteStaff:   "Available commands: (l)ist, refresh, new, results <poll>, go <route>, logout, exit",
	pages.RouteAdmin:   "Available commands: (l)ist, refresh, users, results <poll>, delete-poll <poll>, delete-user <user>, go <route>, logout, exit",
}

// runREPL starts a simple read–eval–print loop for the Campus Poll Hub CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF or when the user types "exit" or "quit".
//
// Which commands exist depends on the current route; see helpByRoute.
// Polls and users are referred to by their list number or their id.
//
// Any errors returned by command handlers are ignored here; handlers report
// to the user themselves. After every command the current route's page is
// mounted if the command navigated.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("poll %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}
		if cmd == "help" {
			printlnFn(helpByRoute[a.route()])
			continue
		}

		if !dispatch(ctx, a, cmd, args) {
			printlnFn("Unknown command:", cmd)
			continue
		}
		a.settle(ctx)
	}
}

// dispatch runs cmd if it is valid on the current route.
func dispatch(ctx context.Context, a execIface, cmd string, args []string) bool {
	route := a.route()

	switch {
	case cmd == "login" && route == pages.RouteLogin:
		_ = a.Login(ctx)
	case cmd == "register" && route == pages.RouteLogin:
		_ = a.Register(ctx)
	case !a.isLoggedIn():
		return false

	case cmd == "logout":
		_ = a.Logout(ctx)
	case cmd == "go":
		_ = a.Go(ctx, args)
	case route == pages.RouteLogin:
		return false

	case cmd == "l" || cmd == "list":
		_ = a.Show(ctx)
	case cmd == "refresh":
		_ = a.Refresh(ctx)
	case cmd == "results" && (route == pages.RouteStaff || route == pages.RouteAdmin):
		_ = a.Results(ctx, args)
	case cmd == "new" && route == pages.RouteStaff:
		_ = a.NewPoll(ctx)
	case cmd == "vote" && route == pages.RouteStudent:
		_ = a.Vote(ctx, args)
	case cmd == "badges" && route == pages.RouteStudent:
		_ = a.Badges(ctx)
	case cmd == "profile" && route == pages.RouteStudent:
		_ = a.Profile(ctx)
	case cmd == "users" && route == pages.RouteAdmin:
		_ = a.Users(ctx)
	case cmd == "delete-poll" && route == pages.RouteAdmin:
		_ = a.DeletePoll(ctx, args)
	case cmd == "delete-user" && route == pages.RouteAdmin:
		_ = a.DeleteUser(ctx, args)
	default:
		return false
	}
	return true
}
