package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tours/internal/entities"
)

func TestMemoryTokenStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	store := NewMemoryTokenStore(time.Hour)
	store.now = func() time.Time { return now }

	first, expiresAt, err := store.Issue(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), expiresAt)

	second, _, err := store.Issue(ctx, "user-1")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	other, _, err := store.Issue(ctx, "user-2")
	require.NoError(t, err)

	userID, err := store.Validate(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	require.NoError(t, store.Revoke(ctx, first))
	_, err = store.Validate(ctx, first)
	assert.ErrorIs(t, err, entities.ErrUnauthorized)

	require.NoError(t, store.RevokeAll(ctx, "user-1"))
	_, err = store.Validate(ctx, second)
	assert.ErrorIs(t, err, entities.ErrUnauthorized)

	_, err = store.Validate(ctx, other)
	assert.NoError(t, err)
}

func TestMemoryTokenStore_expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	store := NewMemoryTokenStore(time.Hour)
	store.now = func() time.Time { return now }

	lazy, _, err := store.Issue(ctx, "user-1")
	require.NoError(t, err)
	_, _, err = store.Issue(ctx, "user-2")
	require.NoError(t, err)

	now = now.Add(time.Hour)

	_, err = store.Validate(ctx, lazy)
	assert.ErrorIs(t, err, entities.ErrUnauthorized)

	removed, err := store.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
	assert.Empty(t, store.tokens)
}
