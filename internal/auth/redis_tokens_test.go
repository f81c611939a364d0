package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tours/internal/auth"
	"tours/internal/entities"
)

func TestRedisTokenStore_Issue(t *testing.T) {
	db, mock := redismock.NewClientMock()

	mock.Regexp().ExpectSet(`^auth:token:[0-9a-f]{64}$`, "user-1", time.Hour).SetVal("OK")
	mock.Regexp().ExpectSAdd("auth:user-tokens:user-1", `^[0-9a-f]{64}$`).SetVal(1)
	mock.ExpectExpire("auth:user-tokens:user-1", time.Hour).SetVal(true)

	store := auth.NewRedisTokenStore(db, time.Hour)
	token, expiresAt, err := store.Issue(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Len(t, token, 64)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisTokenStore_Validate(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := auth.NewRedisTokenStore(db, time.Hour)
	ctx := context.Background()

	mock.ExpectGet("auth:token:known").SetVal("user-1")
	mock.ExpectGet("auth:token:expired").RedisNil()
	mock.ExpectGet("auth:token:any").SetErr(errors.New("dial tcp: connection refused"))

	userID, err := store.Validate(ctx, "known")
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	_, err = store.Validate(ctx, "expired")
	assert.ErrorIs(t, err, entities.ErrUnauthorized)

	_, err = store.Validate(ctx, "any")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, entities.ErrUnauthorized)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisTokenStore_Revoke(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := auth.NewRedisTokenStore(db, time.Hour)

	mock.ExpectGet("auth:token:abc").SetVal("user-1")
	mock.ExpectDel("auth:token:abc").SetVal(1)
	mock.ExpectSRem("auth:user-tokens:user-1", "abc").SetVal(1)
	mock.ExpectGet("auth:token:gone").RedisNil()

	require.NoError(t, store.Revoke(context.Background(), "abc"))
	require.NoError(t, store.Revoke(context.Background(), "gone"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisTokenStore_RevokeAll(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := auth.NewRedisTokenStore(db, time.Hour)

	mock.ExpectSMembers("auth:user-tokens:user-1").SetVal([]string{"a", "b"})
	mock.ExpectDel("auth:token:a", "auth:token:b", "auth:user-tokens:user-1").SetVal(3)

	require.NoError(t, store.RevokeAll(context.Background(), "user-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
