package redis

import (
	"context"
	"errors"
	"fmt"

	"token-recovery-dapp/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

// KVStore implements ports.KeyValueStore with plain GET/SET/DEL.
// Keys never expire.
type KVStore struct {
	client *goredis.Client
}

// NewKVStore creates a Redis-backed key-value store.
func NewKVStore(client *goredis.Client) *KVStore {
	return &KVStore{client: client}
}

func (s *KVStore) Get(ctx context.Context, key string) (string, error) {
	v, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", ports.ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, nil
}

func (s *KVStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *KVStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}
