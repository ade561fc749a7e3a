package users

import (
	"context"
	"sync"
	"time"

	"github.com/authgate/authgate/internal/common"
	"github.com/google/uuid"
)

// InMemoryRepository keeps users in a map keyed by email. It backs tests and
// local development; the mutex gives it the same at-most-one-success
// guarantee under concurrent duplicate signups as the Postgres unique index.
type InMemoryRepository struct {
	mu    sync.RWMutex
	users map[string]*User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{users: make(map[string]*User)}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}

	stored := *user
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now()
	r.users[stored.Email] = &stored

	out := stored
	return &out, nil
}

func (r *InMemoryRepository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[email]
	if !ok {
		return nil, common.ErrorNotFound
	}

	out := *user
	return &out, nil
}

// Count reports the number of stored records; used by tests asserting the
// exactly-one-record property of signup.
func (r *InMemoryRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
