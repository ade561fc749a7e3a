package users

import "time"

// User is the single persisted record per registered account. PasswordHash
// holds the salted bcrypt digest, never the raw password.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}
