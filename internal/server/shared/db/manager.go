// Package db wires the credential store: it opens the database, runs the
// embedded migrations, and hands out repositories.
package db

import (
	"context"
	"database/sql"

	"github.com/authgate/authgate/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Users() users.Repository
	Close() error
}
