package auth

import (
	"context"
	"sync"
	"time"

	"tours/internal/entities"
)

type memoryToken struct {
	userID    string
	expiresAt time.Time
}

// MemoryTokenStore keeps tokens in process memory. Expired tokens are refused on
// read and removed by Sweep.
type MemoryTokenStore struct {
	mu     sync.Mutex
	tokens map[string]memoryToken
	ttl    time.Duration
	now    func() time.Time
}

func NewMemoryTokenStore(ttl time.Duration) *MemoryTokenStore {
	return &MemoryTokenStore{
		tokens: map[string]memoryToken{},
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *MemoryTokenStore) Issue(_ context.Context, userID string) (string, time.Time, error) {
	token, err := randomToken()
	if err != nil {
		return "", time.Time{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	expiresAt := s.now().Add(s.ttl)
	s.tokens[token] = memoryToken{userID: userID, expiresAt: expiresAt}

	return token, expiresAt, nil
}

func (s *MemoryTokenStore) Validate(_ context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tokens[token]
	if !ok {
		return "", entities.ErrUnauthorized
	}
	if !s.now().Before(t.expiresAt) {
		delete(s.tokens, token)
		return "", entities.ErrUnauthorized
	}

	return t.userID, nil
}

func (s *MemoryTokenStore) Revoke(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.tokens, token)
	return nil
}

func (s *MemoryTokenStore) RevokeAll(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for token, t := range s.tokens {
		if t.userID == userID {
			delete(s.tokens, token)
		}
	}
	return nil
}

// Sweep drops expired tokens and reports how many were removed.
func (s *MemoryTokenStore) Sweep(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	var removed int64
	for token, t := range s.tokens {
		if !now.Before(t.expiresAt) {
			delete(s.tokens, token)
			removed++
		}
	}

	return removed, nil
}
