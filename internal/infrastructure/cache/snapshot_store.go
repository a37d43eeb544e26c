package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/salon-finance-api/internal/domain/finance"
	"github.com/jhoicas/salon-finance-api/internal/domain/repository"
)

var _ repository.ParamsSnapshotStore = (*RedisSnapshotStore)(nil)

const snapshotKeyPrefix = "params:snapshot:"

// RedisSnapshotStore guarda el último BusinessParams por salón como JSON con TTL.
type RedisSnapshotStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSnapshotStore ttl <= 0 guarda sin expiración.
func NewRedisSnapshotStore(client *redis.Client, ttl time.Duration) *RedisSnapshotStore {
	if ttl < 0 {
		ttl = 0
	}
	return &RedisSnapshotStore{client: client, ttl: ttl}
}

// Get (nil, nil) si el salón no tiene snapshot o expiró.
func (s *RedisSnapshotStore) Get(ctx context.Context, salonID string) (*finance.BusinessParams, error) {
	val, err := s.client.Get(ctx, snapshotKey(salonID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get snapshot: %w", err)
	}
	return decodeSnapshot(val)
}

// Set sobrescribe el snapshot del salón.
func (s *RedisSnapshotStore) Set(ctx context.Context, salonID string, p finance.BusinessParams) error {
	payload, err := encodeSnapshot(p)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, snapshotKey(salonID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("set snapshot: %w", err)
	}
	return nil
}

func snapshotKey(salonID string) string {
	return snapshotKeyPrefix + salonID
}

func encodeSnapshot(p finance.BusinessParams) ([]byte, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return payload, nil
}

func decodeSnapshot(b []byte) (*finance.BusinessParams, error) {
	var p finance.BusinessParams
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &p, nil
}
