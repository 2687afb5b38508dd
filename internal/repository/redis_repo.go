package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"parkingslots/internal/db"
)

// RedisRepository keeps the encoded slot list under a single Redis key with no expiry.
type RedisRepository struct {
	rdb redis.Cmdable
	Key string
}

func NewRedisRepository(rdb redis.Cmdable, key string) *RedisRepository {
	if key == "" {
		key = DefaultKey
	}
	return &RedisRepository{rdb: rdb, Key: key}
}

func (r *RedisRepository) Load(ctx context.Context) ([]db.Slot, error) {
	data, err := r.rdb.Get(ctx, r.Key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("error reading key %q: %w", r.Key, err)
	}
	return DecodeSlots(data)
}

func (r *RedisRepository) Save(ctx context.Context, slots []db.Slot) error {
	data, err := EncodeSlots(slots)
	if err != nil {
		return err
	}
	if err := r.rdb.Set(ctx, r.Key, data, 0).Err(); err != nil {
		return fmt.Errorf("error writing key %q: %w", r.Key, err)
	}
	return nil
}
