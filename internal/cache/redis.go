// Package cache кеширует соответствие ключ -> URL в Redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "shortlink:"

// Redis кеш ссылок. Записи неизменяемые, TTL нужен только чтобы кеш не рос бесконечно.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClient подключается к Redis по адресу addr и проверяет соединение.
func NewRedisClient(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return client, nil
}

func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

// Get возвращает URL по ключу. found=false при промахе.
func (r *Redis) Get(ctx context.Context, id int32) (string, bool, error) {
	val, err := r.client.Get(ctx, cacheKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %d: %w", id, err)
	}
	return val, true, nil
}

func (r *Redis) Set(ctx context.Context, id int32, url string) error {
	if err := r.client.Set(ctx, cacheKey(id), url, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %d: %w", id, err)
	}
	return nil
}

func (r *Redis) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

func (r *Redis) Close() error {
	return r.client.Close() //nolint:wrapcheck
}

func cacheKey(id int32) string {
	return keyPrefix + strconv.FormatInt(int64(id), 10)
}
