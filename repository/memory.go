package repository

import (
	"context"
	"sort"
	"sync"

	"cnapp/apperrors"
	"cnapp/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryUserRepository keeps users in process memory. Username uniqueness is checked
// under the write lock, matching the unique index the Mongo store relies on.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users []models.User
	index map[string]int
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{index: make(map[string]int)}
}

func (r *MemoryUserRepository) Create(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[u.Username]; exists {
		return apperrors.ErrConflict
	}
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	r.index[u.Username] = len(r.users)
	r.users = append(r.users, *u)
	return nil
}

func (r *MemoryUserRepository) GetByUsername(_ context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[username]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	user := r.users[i]
	return &user, nil
}

func (r *MemoryUserRepository) ListUsernames(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.users))
	for _, u := range r.users {
		names = append(names, u.Username)
	}
	return names, nil
}

type MemoryMessageRepository struct {
	mu       sync.RWMutex
	messages []models.Message
}

func NewMemoryMessageRepository() *MemoryMessageRepository {
	return &MemoryMessageRepository{}
}

func (r *MemoryMessageRepository) Create(_ context.Context, m *models.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}
	r.messages = append(r.messages, *m)
	return nil
}

func (r *MemoryMessageRepository) ListAll(_ context.Context) ([]models.Message, error) {
	r.mu.RLock()
	out := make([]models.Message, len(r.messages))
	copy(out, r.messages)
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
