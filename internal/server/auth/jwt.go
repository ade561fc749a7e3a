// Package auth issues and verifies the signed session tokens that prove a
// prior successful authentication. Tokens are stateless: the validity window
// embedded at signing time is the sole expiry mechanism.
package auth

import (
	"fmt"
	"time"

	"github.com/authgate/authgate/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the session token payload: registered claims (subject = user ID,
// expiry, issued-at) plus the user's email.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// GenerateToken mints an HS256-signed token bound to the given user ID and
// email, expiring after validityDuration.
func GenerateToken(userID, email string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		Email: email,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies signature and expiry and returns the embedded claims.
// Any failure (malformed, bad signature, expired) yields an error matching
// common.ErrInvalidToken; the underlying cause stays in the message for logs.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
