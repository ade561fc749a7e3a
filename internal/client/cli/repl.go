package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Signin(ctx context.Context) error
	Whoami(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the AuthGate CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands are guarded by the session flag: signup and signin are refused
// while a session is active, and whoami and logout are refused while signed
// out. This mirrors route guarding in a browser front end, with the flag as
// the single source of truth.
//
//	Signed out:
//	  - help           show available commands
//	  - signup         create an account (signs you in)
//	  - signin         authenticate
//	  - exit | quit    leave the program
//
//	Signed in:
//	  - help           show available commands
//	  - whoami         re-validate the session
//	  - logout         sign out
//	  - exit | quit    leave the program
//
// Any errors returned by command handlers are ignored here; handlers log
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("authgate %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, logout, exit")
			} else {
				printlnFn("Available commands: signup, signin, exit")
			}

		case "signup":
			if a.isLoggedIn() {
				printlnFn("Already signed in. Use 'logout' first.")
				continue
			}
			_ = a.Signup(ctx)

		case "signin":
			if a.isLoggedIn() {
				printlnFn("Already signed in. Use 'logout' first.")
				continue
			}
			_ = a.Signin(ctx)

		case "whoami":
			if !a.isLoggedIn() {
				printlnFn("Not signed in. Use 'signin' or 'signup' first.")
				continue
			}
			_ = a.Whoami(ctx)

		case "logout":
			if !a.isLoggedIn() {
				printlnFn("Not signed in. Use 'signin' or 'signup' first.")
				continue
			}
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
