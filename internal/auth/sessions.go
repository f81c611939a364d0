package auth

import (
	"context"
	"errors"
	"time"

	"tours/internal/entities"
)

const SessionCookie = "tours.sid"

type SessionsRepo interface {
	Create(ctx context.Context, s entities.Session) error
	Get(ctx context.Context, sid string) (*entities.Session, error)
	Delete(ctx context.Context, sid string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// Sessions backs the browser cookie login with rows in the sessions table.
type Sessions struct {
	repo SessionsRepo
	ttl  time.Duration
}

func NewSessions(repo SessionsRepo, ttl time.Duration) *Sessions {
	return &Sessions{
		repo: repo,
		ttl:  ttl,
	}
}

func (s *Sessions) Create(ctx context.Context, userID string) (entities.Session, error) {
	sid, err := randomToken()
	if err != nil {
		return entities.Session{}, err
	}

	session := entities.Session{
		SID:       sid,
		UserID:    userID,
		ExpiresAt: time.Now().Add(s.ttl).UTC(),
	}
	if err := s.repo.Create(ctx, session); err != nil {
		return entities.Session{}, err
	}

	return session, nil
}

func (s *Sessions) Lookup(ctx context.Context, sid string) (string, error) {
	session, err := s.repo.Get(ctx, sid)
	if errors.Is(err, entities.ErrNotFound) {
		return "", entities.ErrUnauthorized
	}
	if err != nil {
		return "", err
	}

	return session.UserID, nil
}

func (s *Sessions) Destroy(ctx context.Context, sid string) error {
	return s.repo.Delete(ctx, sid)
}

func (s *Sessions) Sweep(ctx context.Context) (int64, error) {
	return s.repo.DeleteExpired(ctx, time.Now())
}
