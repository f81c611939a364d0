package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// TokenStore keeps bearer tokens issued to users. Validate fails with
// entities.ErrUnauthorized for unknown, revoked and expired tokens.
type TokenStore interface {
	Issue(ctx context.Context, userID string) (string, time.Time, error)
	Validate(ctx context.Context, token string) (string, error)
	Revoke(ctx context.Context, token string) error
	RevokeAll(ctx context.Context, userID string) error
}

const tokenBytes = 32

func randomToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("could not generate token: %w", err)
	}

	return hex.EncodeToString(b), nil
}
