package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"cnapp/apperrors"
	"cnapp/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryUserRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()

	u := &models.User{Username: "alice", PasswordHash: "hash"}
	require.NoError(t, repo.Create(ctx, u))
	assert.False(t, u.ID.IsZero())

	got, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, "hash", got.PasswordHash)

	_, err = repo.GetByUsername(ctx, "Alice")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestMemoryUserRepository_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()

	require.NoError(t, repo.Create(ctx, &models.User{Username: "alice"}))
	err := repo.Create(ctx, &models.User{Username: "alice"})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestMemoryUserRepository_ConcurrentCreateSameUsername(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()

	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- repo.Create(ctx, &models.User{Username: "bob"})
		}()
	}
	wg.Wait()
	close(errs)

	created := 0
	for err := range errs {
		if err == nil {
			created++
			continue
		}
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	}
	assert.Equal(t, 1, created)

	names, err := repo.ListUsernames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, names)
}

func TestMemoryMessageRepository_ListAllSortsByCreatedAt(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryMessageRepository()
	base := time.Now()

	offsets := []int{3, 1, 2, 1, 0}
	for i, off := range offsets {
		m := &models.Message{
			Sender:    fmt.Sprintf("s%d", i),
			Receiver:  "r",
			CreatedAt: base.Add(time.Duration(off) * time.Second),
		}
		require.NoError(t, repo.Create(ctx, m))
	}

	got, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, len(offsets))
	for i := 1; i < len(got); i++ {
		assert.False(t, got[i].CreatedAt.Before(got[i-1].CreatedAt))
	}
	// equal timestamps keep insertion order
	assert.Equal(t, "s1", got[1].Sender)
	assert.Equal(t, "s3", got[2].Sender)
}

func TestMemoryMessageRepository_ListAllEmpty(t *testing.T) {
	got, err := NewMemoryMessageRepository().ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
