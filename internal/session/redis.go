package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cloud-ru/kredit-schedule-go/internal/collector"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "kredit:session:"

// RedisStore хранит сессии в Redis; TTL обновляется при каждом сохранении
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore подключается к Redis по адресу addr
func NewRedisStore(addr string, ttl time.Duration) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisStore{client: rdb, ttl: ttl}
}

func redisKey(id string) string {
	return redisKeyPrefix + id
}

// Ping проверяет доступность Redis
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Load(ctx context.Context, id string) (collector.Snapshot, error) {
	val, err := s.client.Get(ctx, redisKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return collector.Snapshot{}, ErrNotFound
	}
	if err != nil {
		return collector.Snapshot{}, fmt.Errorf("load session %s: %w", id, err)
	}

	var snap collector.Snapshot
	if err := json.Unmarshal(val, &snap); err != nil {
		return collector.Snapshot{}, fmt.Errorf("decode session %s: %w", id, err)
	}
	return snap, nil
}

func (s *RedisStore) Save(ctx context.Context, id string, snap collector.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", id, err)
	}
	if err := s.client.Set(ctx, redisKey(id), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save session %s: %w", id, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, redisKey(id)).Err(); err != nil {
		return fmt.Errorf("delete session %s: %w", id, err)
	}
	return nil
}

// Close закрывает соединения с Redis
func (s *RedisStore) Close() error {
	return s.client.Close()
}
