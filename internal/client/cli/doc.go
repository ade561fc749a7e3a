// Package cli provides the interactive AuthGate command-line client.
//
// It wires configuration, the HTTP API client, and an interactive REPL that
// keeps a local signed-in flag in sync with the server-held session cookie.
// Typical flow: probe the server for an existing session, then execute user
// commands.
//
// Key features:
//   - Signup / Signin (the flag flips as soon as the server accepts)
//   - Whoami (re-validates the session against the server)
//   - Logout (best effort; the local flag clears even if the server is down)
//
// Commands that require a session are refused while signed out, and signup
// or signin are refused while a session is active. The REPL is started via
// App.Root(ctx), which blocks until the user exits.
package cli
