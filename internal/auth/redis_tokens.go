package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"tours/internal/entities"
)

const (
	tokenKeyPrefix      = "auth:token:"
	userTokensKeyPrefix = "auth:user-tokens:"
)

// RedisTokenStore shares tokens between instances. Every token is its own key
// expiring with the token; a per-user set lists them for RevokeAll.
type RedisTokenStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRedisTokenStore(client redis.UniversalClient, ttl time.Duration) *RedisTokenStore {
	if client == nil {
		panic("missing redis client")
	}

	return &RedisTokenStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *RedisTokenStore) Issue(ctx context.Context, userID string) (string, time.Time, error) {
	token, err := randomToken()
	if err != nil {
		return "", time.Time{}, err
	}
	expiresAt := time.Now().Add(s.ttl)

	if err := s.client.Set(ctx, tokenKeyPrefix+token, userID, s.ttl).Err(); err != nil {
		return "", time.Time{}, fmt.Errorf("could not store token: %w", err)
	}
	if err := s.client.SAdd(ctx, userTokensKeyPrefix+userID, token).Err(); err != nil {
		return "", time.Time{}, fmt.Errorf("could not index token: %w", err)
	}
	// the index lives as long as the newest token
	if err := s.client.Expire(ctx, userTokensKeyPrefix+userID, s.ttl).Err(); err != nil {
		return "", time.Time{}, fmt.Errorf("could not expire token index: %w", err)
	}

	return token, expiresAt, nil
}

func (s *RedisTokenStore) Validate(ctx context.Context, token string) (string, error) {
	userID, err := s.client.Get(ctx, tokenKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", entities.ErrUnauthorized
	}
	if err != nil {
		return "", fmt.Errorf("could not read token: %w", err)
	}

	return userID, nil
}

func (s *RedisTokenStore) Revoke(ctx context.Context, token string) error {
	userID, err := s.Validate(ctx, token)
	if errors.Is(err, entities.ErrUnauthorized) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := s.client.Del(ctx, tokenKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("could not revoke token: %w", err)
	}
	if err := s.client.SRem(ctx, userTokensKeyPrefix+userID, token).Err(); err != nil {
		return fmt.Errorf("could not unindex token: %w", err)
	}

	return nil
}

func (s *RedisTokenStore) RevokeAll(ctx context.Context, userID string) error {
	tokens, err := s.client.SMembers(ctx, userTokensKeyPrefix+userID).Result()
	if err != nil {
		return fmt.Errorf("could not list tokens of user %s: %w", userID, err)
	}

	keys := make([]string, 0, len(tokens)+1)
	for _, token := range tokens {
		keys = append(keys, tokenKeyPrefix+token)
	}
	keys = append(keys, userTokensKeyPrefix+userID)

	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("could not revoke tokens of user %s: %w", userID, err)
	}

	return nil
}
