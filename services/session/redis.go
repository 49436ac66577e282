package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"tailortalk/models"
)

const sessionKeyPrefix = "chat:session:"

// RedisStore keeps sessions in Redis so they survive restarts and can be
// shared across processes. Values are JSON with a sliding TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore wraps an existing Redis client as a session store.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, id string) (*models.Session, error) {
	key := sessionKeyPrefix + id
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return &models.Session{ID: id, LastIntent: models.IntentUnknown}, nil
	}
	if err != nil {
		return nil, err
	}
	var sess models.Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *RedisStore) Put(ctx context.Context, sess *models.Session) error {
	key := sessionKeyPrefix + sess.ID
	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisStore) Clear(ctx context.Context, id string) error {
	key := sessionKeyPrefix + id
	return s.client.Del(ctx, key).Err()
}
