// Package hashing wraps the one-way password hashing scheme. A fresh salt is
// generated per call and embedded in the digest; comparison is constant-time.
package hashing

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Cost is the bcrypt work factor. At 10 rounds a hash takes on the order of
// tens of milliseconds on commodity hardware, which bounds online guessing.
const Cost = 10

// Hash returns the salted bcrypt digest of plaintext. The raw password must
// never be stored; callers persist only the returned digest.
func Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), Cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Compare reports whether plaintext matches the stored digest. A benign
// mismatch returns (false, nil); an error is returned only for a malformed
// digest, which indicates corrupted stored data rather than a bad password.
func Compare(plaintext, digest string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}
