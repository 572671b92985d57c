package auth

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// RevocationStore remembers revoked refresh token ids until the token would have expired anyway
type RevocationStore interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// MemoryRevocationStore keeps revoked token ids in process memory
type MemoryRevocationStore struct {
	mu   sync.RWMutex
	data map[string]time.Time
	now  func() time.Time
}

// NewMemoryRevocationStore creates an empty in-memory store
func NewMemoryRevocationStore() *MemoryRevocationStore {
	return &MemoryRevocationStore{
		data: make(map[string]time.Time),
		now:  time.Now,
	}
}

func (s *MemoryRevocationStore) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, expiresAt := range s.data {
		if now.After(expiresAt) {
			delete(s.data, id)
		}
	}
	s.data[jti] = now.Add(ttl)
	return nil
}

func (s *MemoryRevocationStore) IsRevoked(_ context.Context, jti string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	expiresAt, ok := s.data[jti]
	if !ok || s.now().After(expiresAt) {
		return false, nil
	}
	return true, nil
}

const revokedKeyPrefix = "teampulse:revoked:"

// RedisRevocationStore keeps revoked token ids in redis with a matching key TTL
type RedisRevocationStore struct {
	client *redis.Client
}

// NewRedisRevocationStore creates a store backed by the given redis server
func NewRedisRevocationStore(addr, password string, db int) *RedisRevocationStore {
	return &RedisRevocationStore{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

func (r *RedisRevocationStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	return r.client.Set(ctx, revokedKeyPrefix+jti, "1", ttl).Err()
}

func (r *RedisRevocationStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := r.client.Exists(ctx, revokedKeyPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Ping checks that redis is reachable
func (r *RedisRevocationStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close releases the redis connection pool
func (r *RedisRevocationStore) Close() error {
	return r.client.Close()
}
