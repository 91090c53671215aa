package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool
	page     Page

	calls    []string
	pageCmds []string
}

func (f *fakeExec) isLoggedIn() bool  { return f.loggedIn }
func (f *fakeExec) currentPage() Page { return f.page }

func (f *fakeExec) switchPage(ctx context.Context, p Page) {
	f.page = p
	f.calls = append(f.calls, "page:"+p.String())
}

func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}

func (f *fakeExec) Logout(ctx context.Context) {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
}

func (f *fakeExec) HandlePageCommand(ctx context.Context, cmd string, args []string) bool {
	f.pageCmds = append(f.pageCmds, cmd)
	return cmd != "bogus"
}

func silenceOutput(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func runScript(exec *fakeExec, lines ...string) {
	sc := bufio.NewScanner(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(context.Background(), exec, func() string { return "" }, sc)
}

func TestRunREPLLoginFlowAndCommands(t *testing.T) {
	silenceOutput(t)

	exec := &fakeExec{}
	runScript(exec,
		"help",
		"login",
		"svcs",
		"list",
		"search kandy",
		"users",
		"dashboard",
		"logout",
		"exit",
	)

	require.Equal(t,
		[]string{"login", "page:svcs", "page:users", "page:dashboard", "logout"},
		exec.calls)
	require.Equal(t, []string{"list", "search"}, exec.pageCmds)
}

func TestRunREPLRequiresLogin(t *testing.T) {
	silenceOutput(t)

	exec := &fakeExec{}
	runScript(exec, "svcs", "list", "quit")

	require.Empty(t, exec.calls)
	require.Empty(t, exec.pageCmds)
}

func TestRunREPLUnknownCommand(t *testing.T) {
	silenceOutput(t)

	exec := &fakeExec{loggedIn: true}
	runScript(exec, "bogus", "exit")

	// The command reached the page handler and was rejected there.
	require.Equal(t, []string{"bogus"}, exec.pageCmds)
}

func TestRunREPLBlankLinesAndEOF(t *testing.T) {
	silenceOutput(t)

	exec := &fakeExec{loggedIn: true}
	runScript(exec, "", "   ", "list")

	require.Equal(t, []string{"list"}, exec.pageCmds)
}
