package repository

import (
	"context"
	"time"

	"cnapp/models"
)

// opTimeout bounds every single store round trip.
const opTimeout = 10 * time.Second

type UserRepository interface {
	// Create persists u and fills u.ID. Returns apperrors.ErrConflict when the username is taken.
	Create(ctx context.Context, u *models.User) error
	// GetByUsername returns apperrors.ErrNotFound when no user matches exactly.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	ListUsernames(ctx context.Context) ([]string, error)
}

type MessageRepository interface {
	// Create persists m and fills m.ID.
	Create(ctx context.Context, m *models.Message) error
	// ListAll returns every message ordered by CreatedAt ascending.
	ListAll(ctx context.Context) ([]models.Message, error)
}
