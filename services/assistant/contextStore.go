// File: services/assistant/contextStore.go
package assistant

import (
	"context"
	"encoding/json"
	"time"

	"storabook/models"

	"github.com/go-redis/redis/v8"
)

const contextPrefix = "chat:ctx:"

// RedisContextStore keeps conversation context in redis with a TTL, so
// abandoned sessions expire on their own.
type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	return &RedisContextStore{client: client, ttl: ttl}
}

func (s *RedisContextStore) Get(ctx context.Context, sessionID string) ([]models.Turn, error) {
	data, err := s.client.Get(ctx, contextPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var turns []models.Turn
	if err := json.Unmarshal([]byte(data), &turns); err != nil {
		return nil, err
	}
	return turns, nil
}

func (s *RedisContextStore) Set(ctx context.Context, sessionID string, turns []models.Turn) error {
	b, err := json.Marshal(turns)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, contextPrefix+sessionID, b, s.ttl).Err()
}

func (s *RedisContextStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, contextPrefix+sessionID).Err()
}
