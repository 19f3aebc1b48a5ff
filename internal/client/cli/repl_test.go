package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	err   error
}

func (f *fakeExec) record(c string) error {
	f.calls = append(f.calls, c)
	return f.err
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Login(_ context.Context, email string) error {
	f.loggedIn = true
	return f.record("login " + email)
}
func (f *fakeExec) Logout(context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) Revoke(_ context.Context, id string) error { return f.record("revoke " + id) }
func (f *fakeExec) Account(context.Context) error             { return f.record("account") }
func (f *fakeExec) Show(_ context.Context, id string) error   { return f.record("show " + id) }
func (f *fakeExec) Put(_ context.Context, id, path string) error {
	return f.record(fmt.Sprintf("put %s %s", id, path))
}
func (f *fakeExec) Ping(context.Context) error { return f.record("ping") }

func silence(t *testing.T) *[]string {
	t.Helper()
	var printed []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		printed = append(printed, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &printed
}

func TestRunREPL_Commands(t *testing.T) {
	printed := silence(t)

	input := bufio.NewReader(strings.NewReader(strings.Join([]string{
		"help",
		"login a@b.com",
		"help",
		"",
		"account",
		"show",
		"get s2",
		"put store.json",
		"put s2 other.json",
		"revoke x1",
		"ping",
		"foobar",
		"logout",
		"exit",
		"account",
	}, "\n")))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, input)

	want := []string{
		"login a@b.com", "account", "show ", "show s2",
		"put  store.json", "put s2 other.json", "revoke x1", "ping", "logout",
	}
	if strings.Join(exec.calls, "|") != strings.Join(want, "|") {
		t.Fatalf("calls = %v, want %v", exec.calls, want)
	}

	out := strings.Join(*printed, "\n")
	for _, s := range []string{helpLoggedOut, helpLoggedIn, "unknown command: foobar", "Bye!"} {
		if !strings.Contains(out, s) {
			t.Fatalf("output missing %q:\n%s", s, out)
		}
	}
}

func TestRunREPL_UsageErrorsAndEOF(t *testing.T) {
	printed := silence(t)

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader("revoke\nput a b c\nshow last")))

	if len(exec.calls) != 1 || exec.calls[0] != "show last" {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
	if !strings.Contains(strings.Join(*printed, "\n"), "usage: revoke <session>") {
		t.Fatalf("usage not printed: %v", *printed)
	}
}

func TestRunREPL_PrintsCommandErrors(t *testing.T) {
	printed := silence(t)

	exec := &fakeExec{loggedIn: true, err: errors.New("store not found")}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("show nope\n")))

	if !strings.Contains(strings.Join(*printed, "\n"), "Error: store not found") {
		t.Fatalf("error not printed: %v", *printed)
	}
}

func TestDispatch_Quit(t *testing.T) {
	for _, cmd := range []string{"exit", "quit"} {
		quit, err := dispatch(context.Background(), &fakeExec{}, cmd, nil)
		if !quit || err != nil {
			t.Fatalf("%s: quit=%v err=%v", cmd, quit, err)
		}
	}
}

func TestDispatch_UsageError(t *testing.T) {
	_, err := dispatch(context.Background(), &fakeExec{}, "put", nil)
	if !errors.Is(err, errUsage) {
		t.Fatalf("err = %v", err)
	}
}
