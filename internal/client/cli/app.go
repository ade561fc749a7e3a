package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/authgate/authgate/internal/client/client"
	"github.com/authgate/authgate/internal/client/config"
	"github.com/authgate/authgate/internal/client/session"
)

type App struct {
	config  *config.Config
	client  client.Client
	session *session.Session
	reader  *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewAuthGateClient(c.ServerBaseURL, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	return &App{
		config:  c,
		client:  apiClient,
		session: session.New(),
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.client.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// checkSession asks the server whether the cookie jar still holds a valid
// session and syncs the local flag with the answer.
func (a *App) checkSession(ctx context.Context) {
	if err := a.client.ValidateToken(ctx); err != nil {
		a.session.Clear()
		return
	}
	a.session.SetAuthenticated(a.session.Email())
}
