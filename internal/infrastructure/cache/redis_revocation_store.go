package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain/users"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/config"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const revokedTokenKeyPrefix = "videoshare:revoked:"

type redisRevocationStore struct {
	client *redis.Client
	logger logger.Logger
}

// NewRedisRevocationStore connects to redis and verifies the connection with PING
func NewRedisRevocationStore(ctx context.Context, settings *config.RedisSettings, logger logger.Logger) (users.TokenRevocationStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     settings.Addr,
		Password: settings.Password,
		DB:       settings.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", settings.Addr, err)
	}

	logger.Info("Connected to redis at ", settings.Addr)
	return &redisRevocationStore{
		client: client,
		logger: logger,
	}, nil
}

func (s *redisRevocationStore) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, revokedTokenKeyPrefix+tokenID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (s *redisRevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedTokenKeyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return n > 0, nil
}

// Close releases the redis connection pool
func (s *redisRevocationStore) Close() error {
	return s.client.Close()
}
