package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"TaskManager/internal/config"
)

// ErrSlotNotFound 表示存储槽中没有任何内容
var ErrSlotNotFound = errors.New("storage: slot not found")

// Slots 是持久化的键值存储，每个键保存一个完整的值
type Slots interface {
	Get(ctx context.Context, key string) ([]byte, error)
	// Set 覆盖写入，对调用方不可见部分写入
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// Open 根据配置选择存储后端；Redis 不可达时直接返回错误
func Open(ctx context.Context, cfg config.StorageConfig) (Slots, error) {
	switch cfg.Backend {
	case config.BackendSQLite, "":
		return NewDatabase(cfg.SQLite.Path)
	case config.BackendFile:
		return NewFileSlots(cfg.File.Dir)
	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, fmt.Errorf("storage: ping redis %s: %w", cfg.Redis.Addr, err)
		}
		return NewRedisSlots(client, cfg.Redis.Prefix), nil
	case config.BackendMemory:
		return NewMemorySlots(), nil
	}
	return nil, fmt.Errorf("storage: unknown backend %q", cfg.Backend)
}
