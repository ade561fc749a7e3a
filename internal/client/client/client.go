package client

import "context"

// Client defines the remote operations the CLI needs. The server keeps the
// session in an HTTP-only cookie, so the implementation owns cookie storage
// and none of the methods expose a token.
type Client interface {
	Signup(ctx context.Context, email string, password string, name string) error
	Signin(ctx context.Context, email string, password string) error
	Logout(ctx context.Context) error
	ValidateToken(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}
