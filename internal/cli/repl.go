package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with
// a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	currentPage() Page
	switchPage(ctx context.Context, p Page)
	Login(ctx context.Context) error
	Logout(ctx context.Context)
	HandlePageCommand(ctx context.Context, cmd string, args []string) bool
}

// runREPL is the console command loop.
//
// It reads a line from the scanner, parses the first token as the command,
// and dispatches to methods on 'a'. Unknown commands are reported back to
// the user. The loop exits on scanner EOF or when the user types "exit" or
// "quit".
//
// Session commands (login, logout, help, exit) always work. Every other
// command requires a session: page switches (dashboard, svcs, users) are
// handled here, the rest goes to the current page via HandlePageCommand.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("svcadmin %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printHelp(a)
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		case "login":
			_ = a.Login(ctx)
			continue
		case "logout":
			a.Logout(ctx)
			continue
		}

		if !a.isLoggedIn() {
			printlnFn("Please login first")
			continue
		}

		switch cmd {
		case "dashboard", "dash":
			a.switchPage(ctx, PageDashboard)
		case "svcs", "svc":
			a.switchPage(ctx, PageSvcs)
		case "users":
			a.switchPage(ctx, PageUsers)
		default:
			if !a.HandlePageCommand(ctx, cmd, args) {
				printlnFn("Unknown command:", cmd)
			}
		}
	}
}

func printHelp(a execIface) {
	if !a.isLoggedIn() {
		printlnFn("Available commands: login, exit")
		return
	}

	printlnFn("Pages: dashboard, svcs, users. Session: logout, exit.")
	switch a.currentPage() {
	case PageDashboard:
		printlnFn("Dashboard commands: refresh")
	case PageSvcs:
		printlnFn("SVC commands: list, search <text>, clear, check <id>, checkall, add, bulkadd, edit <id>, del <id>, bulkdel, toggle <id>, export <file>, refresh")
	case PageUsers:
		printlnFn("User commands: list, search <text>, clear, check <id>, checkall, del <id>, bulkdel, export <file>, refresh")
	}
}
