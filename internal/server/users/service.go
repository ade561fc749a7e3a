// Package users implements the credential store and the authentication
// service on top of it: signup, signin, and session-token validation.
package users

import (
	"context"
	"errors"
	"time"

	"github.com/authgate/authgate/internal/common"
	"github.com/authgate/authgate/internal/logging"
	"github.com/authgate/authgate/internal/server/auth"
	"github.com/authgate/authgate/internal/server/config"
	"github.com/authgate/authgate/internal/server/hashing"
)

// Service provides authentication-related operations:
//   - SignUp: create a user and mint a session token
//   - SignIn: verify credentials and mint a session token
//   - ValidateToken: verify a presented token's signature and expiry
type Service struct {
	repo                  Repository
	logger                logging.Logger
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewService constructs a Service using the repository and server config.
func NewService(repo Repository, logger logging.Logger, cfg *config.Config) *Service {
	return &Service{
		repo:                  repo,
		logger:                logger.With("module", "users"),
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// SignUp validates the payload, creates the user with a hashed password, and
// returns a session token bound to the new record.
//
// The existence lookup is only a fast path: two concurrent signups with the
// same email can both pass it, so the store's unique constraint is the
// authoritative duplicate signal and its conflict maps to
// common.ErrorAlreadyExists. Exactly one record exists on success, zero on
// failure.
func (s *Service) SignUp(ctx context.Context, email, password, name string) (string, error) {
	if err := ValidateSignup(email, password, name); err != nil {
		return "", err
	}

	_, err := s.repo.GetUserByEmail(ctx, email)
	if err == nil {
		s.logger.Warn(ctx, "signup rejected, email taken", "email", email)
		return "", common.ErrorAlreadyExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		s.logger.Error(ctx, "signup lookup failed", "error", err.Error())
		return "", common.ErrorInternal
	}

	digest, err := hashing.Hash(password)
	if err != nil {
		s.logger.Error(ctx, "password hashing failed", "error", err.Error())
		return "", common.ErrorInternal
	}

	user, err := s.repo.Create(ctx, &User{Email: email, Name: name, PasswordHash: digest})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			// lost the race to a concurrent signup with the same email
			s.logger.Warn(ctx, "signup rejected by store constraint", "email", email)
			return "", common.ErrorAlreadyExists
		}
		s.logger.Error(ctx, "user creation failed", "error", err.Error())
		return "", common.ErrorInternal
	}

	s.logger.Info(ctx, "user registered", "id", user.ID)

	token, err := auth.GenerateToken(user.ID, user.Email, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		s.logger.Error(ctx, "token generation failed", "error", err.Error())
		return "", common.ErrorInternal
	}

	return token, nil
}

// SignIn verifies the supplied credentials and returns a session token.
//
// A missing user and a wrong password both come back as
// common.ErrorInvalidCredentials so callers cannot enumerate accounts; the
// two cases are distinguished only in operator logs.
func (s *Service) SignIn(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.logger.Debug(ctx, "signin failed, unknown email", "email", email)
			return "", common.ErrorInvalidCredentials
		}
		s.logger.Error(ctx, "signin lookup failed", "error", err.Error())
		return "", common.ErrorInternal
	}

	ok, err := hashing.Compare(password, user.PasswordHash)
	if err != nil {
		s.logger.Error(ctx, "stored digest malformed", "id", user.ID)
		return "", common.ErrorInternal
	}
	if !ok {
		s.logger.Debug(ctx, "signin failed, wrong password", "id", user.ID)
		return "", common.ErrorInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Email, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		s.logger.Error(ctx, "token generation failed", "error", err.Error())
		return "", common.ErrorInternal
	}

	s.logger.Info(ctx, "user authenticated", "id", user.ID)
	return token, nil
}

// ValidateToken verifies signature and expiry and returns the claims.
// It has no side effects; failures match common.ErrInvalidToken.
func (s *Service) ValidateToken(token string) (*auth.Claims, error) {
	return auth.ParseToken(token, s.jwtSecret)
}
