// Package service contains the business logic layer: handlers parse HTTP
// and delegate here; this layer enforces the rules and talks to the
// repository.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sakif/quiztracker/internal/apperror"
	"github.com/sakif/quiztracker/internal/auth"
	"github.com/sakif/quiztracker/internal/model"
	"github.com/sakif/quiztracker/internal/repository"
)

// AuthService handles the credential lifecycle: sign-up and login.
type AuthService struct {
	users     repository.UserRepository
	tokens    *auth.TokenService
	passwords *auth.PasswordService
	logger    *slog.Logger
}

// NewAuthService creates an AuthService with its injected dependencies.
func NewAuthService(
	users repository.UserRepository,
	tokens *auth.TokenService,
	passwords *auth.PasswordService,
	logger *slog.Logger,
) *AuthService {
	return &AuthService{
		users:     users,
		tokens:    tokens,
		passwords: passwords,
		logger:    logger,
	}
}

// AuthResult is what a successful sign-up or login yields: the user record
// and a fresh token proving their id.
type AuthResult struct {
	User  *model.User
	Token string
}

// SignUp registers a new account and issues its first token.
//
// The plaintext password is hashed and discarded — it is never persisted
// or logged. No duplicate-email check is performed: registering the same
// address twice creates two accounts (login resolves to the oldest).
func (s *AuthService) SignUp(ctx context.Context, name, email, password string) (*AuthResult, error) {
	switch {
	case name == "":
		return nil, apperror.ValidationFailed("name", "name is required")
	case email == "":
		return nil, apperror.ValidationFailed("email", "email is required")
	case password == "":
		return nil, apperror.ValidationFailed("password", "password is required")
	}

	hash, err := s.passwords.Hash(password)
	if err != nil {
		if len(password) > 72 {
			return nil, apperror.ValidationFailed("password", "password must be 72 bytes or fewer")
		}
		return nil, fmt.Errorf("service/auth: hashing password: %w", err)
	}

	user := &model.User{
		Name:          name,
		Email:         email,
		PasswordHash:  hash,
		TakenQuizList: []model.TakenQuiz{},
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("service/auth: creating user: %w", err)
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("service/auth: issuing token for %s: %w", user.ID, err)
	}

	s.logger.Info("user signed up", slog.String("userID", user.ID))

	return &AuthResult{User: user, Token: token}, nil
}

// Login authenticates an email/password pair. Three outcomes:
//
//   - unknown email → apperror.ErrNotFound (the handler turns this into a
//     200 envelope, per the API contract)
//   - password mismatch → apperror.ErrAuthentication, which never reveals
//     whether the email or the password was the wrong part
//   - match → a fresh token and the user record
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("service/auth: looking up %s: %w", email, err)
	}

	if err := s.passwords.Verify(user.PasswordHash, password); err != nil {
		s.logger.Warn("failed login attempt", slog.String("userID", user.ID))
		return nil, apperror.Authentication()
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("service/auth: issuing token for %s: %w", user.ID, err)
	}

	return &AuthResult{User: user, Token: token}, nil
}
