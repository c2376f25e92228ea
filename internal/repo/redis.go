package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const themeKeyPrefix = "tunelab:theme:"

type RedisPrefsRepository struct {
	client *redis.Client
}

func NewRedisPrefs(addr string) *RedisPrefsRepository {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisPrefsRepository{client: rdb}
}

func (r *RedisPrefsRepository) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	return nil
}

func (r *RedisPrefsRepository) Close() error {
	return r.client.Close()
}

func (r *RedisPrefsRepository) GetTheme(ctx context.Context, clientID string) (Theme, error) {
	val, err := r.client.Get(ctx, themeKeyPrefix+clientID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ThemeSystem, nil
		}
		return ThemeSystem, err
	}
	return Theme(val), nil
}

// SetTheme deletes the key for ThemeSystem so unknown and reset clients look alike.
func (r *RedisPrefsRepository) SetTheme(ctx context.Context, clientID string, theme Theme) error {
	key := themeKeyPrefix + clientID
	if theme == ThemeSystem {
		return r.client.Del(ctx, key).Err()
	}
	return r.client.Set(ctx, key, string(theme), 0).Err()
}
