package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Signup(ctx context.Context) error {
	f.calls = append(f.calls, "signup")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Signin(ctx context.Context) error {
	f.calls = append(f.calls, "signin")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Whoami(ctx context.Context) error {
	f.calls = append(f.calls, "whoami")
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}

func runWithInput(t *testing.T, exec *fakeExec, lines ...string) {
	t.Helper()

	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	sc := bufio.NewScanner(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(context.Background(), exec, func() string { return "status" }, sc)
}

func TestRunREPL_SigninFlowAndCommands(t *testing.T) {
	exec := &fakeExec{loggedIn: false}

	runWithInput(t, exec,
		"help",
		"signin",
		"help",
		"whoami",
		"logout",
		"foobar",
		"exit",
	)

	want := []string{"signin", "whoami", "logout"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls mismatch: got %v, want %v", exec.calls, want)
	}
	for i, c := range want {
		if exec.calls[i] != c {
			t.Fatalf("calls mismatch: got %v, want %v", exec.calls, want)
		}
	}
}

func TestRunREPL_GuardsWhileSignedOut(t *testing.T) {
	exec := &fakeExec{loggedIn: false}

	runWithInput(t, exec, "whoami", "logout", "quit")

	if len(exec.calls) != 0 {
		t.Fatalf("guarded commands must not dispatch, got %v", exec.calls)
	}
}

func TestRunREPL_GuardsWhileSignedIn(t *testing.T) {
	exec := &fakeExec{loggedIn: true}

	runWithInput(t, exec, "signup", "signin", "quit")

	if len(exec.calls) != 0 {
		t.Fatalf("guarded commands must not dispatch, got %v", exec.calls)
	}
}

func TestRunREPL_SignupThenGuardedSignin(t *testing.T) {
	exec := &fakeExec{loggedIn: false}

	// signup flips the flag, so the second signup must be refused
	runWithInput(t, exec, "signup", "signup", "exit")

	if len(exec.calls) != 1 || exec.calls[0] != "signup" {
		t.Fatalf("expected a single signup dispatch, got %v", exec.calls)
	}
}
