package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/dmitrijs2005/jobkeeper/internal/common"
	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	err      error

	calls []string
	args  [][]string
}

func (f *fakeExec) call(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	return f.err
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) SignUp(ctx context.Context) error {
	f.loggedIn = true
	return f.call("signup", nil)
}
func (f *fakeExec) SignIn(ctx context.Context) error {
	f.loggedIn = true
	return f.call("signin", nil)
}
func (f *fakeExec) SignOut(ctx context.Context) error {
	f.loggedIn = false
	return f.call("signout", nil)
}
func (f *fakeExec) List(ctx context.Context, args []string) error    { return f.call("list", args) }
func (f *fakeExec) Show(ctx context.Context, args []string) error    { return f.call("show", args) }
func (f *fakeExec) Add(ctx context.Context, args []string) error     { return f.call("add", args) }
func (f *fakeExec) Edit(ctx context.Context, args []string) error    { return f.call("edit", args) }
func (f *fakeExec) Delete(ctx context.Context, args []string) error  { return f.call("delete", args) }
func (f *fakeExec) Toggle(ctx context.Context, args []string) error  { return f.call("toggle", args) }
func (f *fakeExec) Dashboard(ctx context.Context) error              { return f.call("dashboard", nil) }
func (f *fakeExec) Reload(ctx context.Context) error                 { return f.call("reload", nil) }
func (f *fakeExec) Profile(ctx context.Context, args []string) error { return f.call("profile", args) }
func (f *fakeExec) Upload(ctx context.Context, args []string) error  { return f.call("upload", args) }

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	origPrintln, origPrint := printlnFn, printFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	printFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn, printFn = origPrintln, origPrint })
	return &lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	out := captureOutput(t)

	input := strings.Join([]string{
		"help",
		"login",
		"",
		"help",
		"list apps status=offer",
		"show tasks t1",
		"add contacts",
		"edit apps a1",
		"rm tasks t1",
		"toggle t2",
		"d",
		"sync",
		"profile edit",
		"upload cv /tmp/cv.pdf",
		"LOGOUT",
		"frobnicate",
		"exit",
		"list ignored",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewReader(strings.NewReader(input)))

	assert.Equal(t, []string{
		"signin", "list", "show", "add", "edit", "delete", "toggle",
		"dashboard", "reload", "profile", "upload", "signout",
	}, exec.calls)
	assert.Equal(t, []string{"apps", "status=offer"}, exec.args[1])
	assert.Equal(t, []string{"cv", "/tmp/cv.pdf"}, exec.args[10])

	assert.Equal(t, helpAnonymous, (*out)[0])
	assert.Equal(t, helpSignedIn, (*out)[1])
	assert.Contains(t, *out, "Unknown command: frobnicate")
	assert.Equal(t, "Bye!", (*out)[len(*out)-1])
}

func TestRunREPL_PrintsHandlerErrors(t *testing.T) {
	out := captureOutput(t)

	exec := &fakeExec{loggedIn: true, err: fmt.Errorf("load: %w", common.ErrNetwork)}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("reload\nreload")))

	assert.Equal(t, []string{"reload", "reload"}, exec.calls)
	assert.Equal(t, 2, strings.Count(strings.Join(*out, "\n"), "Server unreachable"))
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	out := captureOutput(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("")))

	assert.Empty(t, exec.calls)
	assert.Equal(t, []string{""}, *out)
}
