package db

import (
	"context"
	"database/sql"

	"github.com/authgate/authgate/internal/server/users"
)

// InMemoryRepositoryManager backs the server with the map-based store.
// Useful for local runs and handler tests where Postgres is not available.
type InMemoryRepositoryManager struct {
	users users.Repository
}

func (m InMemoryRepositoryManager) Conn() *sql.DB {
	return nil
}

func (m InMemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m InMemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m InMemoryRepositoryManager) Close() error {
	return nil
}

func NewInMemoryRepositoryManager() RepositoryManager {
	return InMemoryRepositoryManager{users: users.NewInMemoryRepository()}
}
