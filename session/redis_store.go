package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL keeps abandoned shopper sessions from accumulating. Every
// write refreshes it, so an active shopper never loses state mid-visit.
const DefaultTTL = 30 * 24 * time.Hour

// RedisStore keeps each session as a Redis hash under one key, so a whole
// session can be dropped or expired in a single call.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, ttl: DefaultTTL}
}

func (s *RedisStore) key(sessionID string) string {
	return "shopper:" + sessionID
}

func (s *RedisStore) Get(ctx context.Context, sessionID, key string) (string, error) {
	val, err := s.client.HGet(ctx, s.key(sessionID), key).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("session: redis hget: %w", err)
	}
	return val, nil
}

func (s *RedisStore) Set(ctx context.Context, sessionID, key, value string) error {
	hkey := s.key(sessionID)
	if err := s.client.HSet(ctx, hkey, key, value).Err(); err != nil {
		return fmt.Errorf("session: redis hset: %w", err)
	}
	if err := s.client.Expire(ctx, hkey, s.ttl).Err(); err != nil {
		return fmt.Errorf("session: redis expire: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.HDel(ctx, s.key(sessionID), keys...).Err(); err != nil {
		return fmt.Errorf("session: redis hdel: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("session: redis del: %w", err)
	}
	return nil
}
