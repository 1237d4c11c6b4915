package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"unicode/utf8"

	"todoweb/internal/model"
	"todoweb/internal/repository"
)

const maxUserNameLen = 30

type AuthService struct {
	users repository.UserRepository
}

func NewAuthService(users repository.UserRepository) *AuthService {
	return &AuthService{users: users}
}

func validateUserName(userName string) error {
	if userName == "" {
		return fmt.Errorf("%w: userName is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(userName) > maxUserNameLen {
		return fmt.Errorf("%w: userName must be at most %d characters", ErrInvalidInput, maxUserNameLen)
	}
	return nil
}

// Register creates a new user. A taken userName is the only business-rule
// failure; there is no password to check.
func (s *AuthService) Register(ctx context.Context, userName string) (model.User, error) {
	if err := validateUserName(userName); err != nil {
		return model.User{}, err
	}

	_, err := s.users.GetByUserName(ctx, userName)
	if err == nil {
		return model.User{}, fmt.Errorf("%w: userName %q is already taken", ErrConflict, userName)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return model.User{}, fmt.Errorf("failed to check userName: %w", err)
	}

	user, err := s.users.Create(ctx, userName)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Login resolves an existing user by name. Unknown names are NotFound so
// the caller can be told to register instead.
func (s *AuthService) Login(ctx context.Context, userName string) (model.User, error) {
	if err := validateUserName(userName); err != nil {
		return model.User{}, err
	}

	user, err := s.users.GetByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, fmt.Errorf("%w: no such user, register first", ErrNotFound)
		}
		return model.User{}, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}
