package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"socialgram/internal/config"
)

// TokenBlacklist хранит отозванные access-токены до истечения их срока.
type TokenBlacklist interface {
	Add(ctx context.Context, token string, ttl time.Duration) error
	IsBlacklisted(ctx context.Context, token string) (bool, error)
}

type redisBlacklist struct {
	client *redis.Client
}

func NewRedisBlacklist(cfg *config.Config) (TokenBlacklist, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("ошибка подключения к Redis: %w", err)
	}

	return &redisBlacklist{client: client}, nil
}

func blacklistKey(token string) string {
	return "blacklist:" + token
}

func (b *redisBlacklist) Add(ctx context.Context, token string, ttl time.Duration) error {
	// токен с истекшим сроком блокировать не нужно
	if ttl <= 0 {
		return nil
	}

	err := b.client.Set(ctx, blacklistKey(token), "1", ttl).Err()
	if err != nil {
		return fmt.Errorf("ошибка при добавлении токена в blacklist: %w", err)
	}

	return nil
}

func (b *redisBlacklist) IsBlacklisted(ctx context.Context, token string) (bool, error) {
	err := b.client.Get(ctx, blacklistKey(token)).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("ошибка при проверке токена в blacklist: %w", err)
	}

	return true, nil
}
