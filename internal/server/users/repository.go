package users

import (
	"context"
)

// Repository is the credential store: one record per user, looked up by
// email. Create must fail with common.ErrorAlreadyExists when the email is
// taken; uniqueness is the store's responsibility, not the caller's.
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
}
