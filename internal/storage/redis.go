package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisSlots 把存储槽保存为 Redis 字符串键
type RedisSlots struct {
	client *redis.Client
	prefix string
}

func NewRedisSlots(client *redis.Client, prefix string) *RedisSlots {
	if client == nil {
		panic("storage.NewRedisSlots: client is nil")
	}
	return &RedisSlots{client: client, prefix: prefix}
}

func (r *RedisSlots) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSlotNotFound
	}
	return b, err
}

func (r *RedisSlots) Set(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, r.prefix+key, value, 0).Err()
}

func (r *RedisSlots) Close() error {
	return r.client.Close()
}
