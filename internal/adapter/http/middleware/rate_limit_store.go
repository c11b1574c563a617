package middleware

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// RateLimitStore counts hits per key inside a fixed window.
type RateLimitStore interface {
	// Hit records one request for key and returns the count inside the current
	// window together with the time the window resets.
	Hit(ctx context.Context, key string, window time.Duration) (int, time.Time, error)
}

type rateLimitEntry struct {
	Count     int
	ResetTime time.Time
}

// MemoryStore keeps counters in process memory.
type MemoryStore struct {
	cache *cache.Cache
	mutex sync.Mutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{cache: cache.New(5*time.Minute, 10*time.Minute)}
}

func (s *MemoryStore) Hit(_ context.Context, key string, window time.Duration) (int, time.Time, error) {
	now := time.Now()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if item, found := s.cache.Get(key); found {
		entry := item.(rateLimitEntry)

		if now.Before(entry.ResetTime) {
			entry.Count++
			s.cache.Set(key, entry, time.Until(entry.ResetTime))
			return entry.Count, entry.ResetTime, nil
		}
	}

	entry := rateLimitEntry{Count: 1, ResetTime: now.Add(window)}
	s.cache.Set(key, entry, window)

	return entry.Count, entry.ResetTime, nil
}

func (s *MemoryStore) ItemCount() int {
	return s.cache.ItemCount()
}

// RedisStore shares counters between instances through redis.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(redisURL string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}

	return &RedisStore{client: redis.NewClient(opts)}, nil
}

func (s *RedisStore) Hit(ctx context.Context, key string, window time.Duration) (int, time.Time, error) {
	count, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, time.Time{}, err
	}

	if count == 1 {
		if err := s.client.Expire(ctx, key, window).Err(); err != nil {
			return 0, time.Time{}, err
		}
	}

	ttl, err := s.client.PTTL(ctx, key).Result()
	if err != nil {
		return 0, time.Time{}, err
	}

	if ttl < 0 {
		// The key lost its expiry; restart the window.
		if err := s.client.Expire(ctx, key, window).Err(); err != nil {
			return 0, time.Time{}, err
		}
		ttl = window
	}

	return int(count), time.Now().Add(ttl), nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
