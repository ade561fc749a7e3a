package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
)

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return "(signed out)"
	}
	if email := a.session.Email(); email != "" {
		return fmt.Sprintf("(%s)", email)
	}
	return "(signed in)"
}

func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to AuthGate CLI (type 'help' for commands)")

	// an earlier session may still be valid on the server
	a.checkSession(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
