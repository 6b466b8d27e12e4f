package services

import (
	"context"
	"errors"
	"time"

	"cnapp/apperrors"
	"cnapp/auth"
	"cnapp/models"
	"cnapp/repository"
)

type AuthService struct {
	users  repository.UserRepository
	tokens *auth.TokenIssuer
	now    func() time.Time
}

func NewAuthService(users repository.UserRepository, tokens *auth.TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens, now: time.Now}
}

// Register creates a user and returns a token for it. The repository's unique
// constraint decides races between concurrent registrations of one username.
func (s *AuthService) Register(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", apperrors.Invalid("username and password are required")
	}

	_, err := s.users.GetByUsername(ctx, username)
	switch {
	case err == nil:
		return "", apperrors.ErrConflict
	case !errors.Is(err, apperrors.ErrNotFound):
		return "", err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", err
	}

	user := &models.User{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return "", err
	}

	return s.tokens.Issue(user.ID.Hex())
}

// Login returns apperrors.ErrInvalidCredentials for both an unknown username and a
// wrong password.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", apperrors.ErrInvalidCredentials
	}

	user, err := s.users.GetByUsername(ctx, username)
	if errors.Is(err, apperrors.ErrNotFound) {
		return "", apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	ok, err := auth.CheckPassword(user.PasswordHash, password)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", apperrors.ErrInvalidCredentials
	}

	return s.tokens.Issue(user.ID.Hex())
}

// ParseToken returns the user id a token was issued for.
func (s *AuthService) ParseToken(token string) (string, error) {
	return s.tokens.Parse(token)
}

func (s *AuthService) ListUsernames(ctx context.Context) ([]string, error) {
	names, err := s.users.ListUsernames(ctx)
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}
