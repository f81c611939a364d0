package http

import (
	"context"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/redis/go-redis/v9"
)

// RedisRateLimiterStore counts requests per identifier in fixed windows shared by
// all instances. When Redis is unreachable requests are let through.
type RedisRateLimiterStore struct {
	client redis.UniversalClient
	prefix string
	limit  int64
	window time.Duration
	now    func() time.Time
}

func NewRedisRateLimiterStore(client redis.UniversalClient, prefix string, limit int, window time.Duration) *RedisRateLimiterStore {
	return &RedisRateLimiterStore{
		client: client,
		prefix: prefix,
		limit:  int64(limit),
		window: window,
		now:    time.Now,
	}
}

func (s *RedisRateLimiterStore) Allow(identifier string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	slot := s.now().UnixNano() / int64(s.window)
	key := fmt.Sprintf("ratelimit:%s:%s:%d", s.prefix, identifier, slot)

	n, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		log.FromContext(ctx).WithError(err).Warn("Rate limiter unavailable")
		return true, nil
	}
	if n == 1 {
		if err := s.client.Expire(ctx, key, s.window).Err(); err != nil {
			log.FromContext(ctx).WithError(err).Warn("Could not expire rate limit window")
		}
	}

	return n <= s.limit, nil
}
