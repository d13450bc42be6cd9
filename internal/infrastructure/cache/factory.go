package cache

import (
	"context"
	"fmt"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain/users"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/config"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/logger"
)

// NewTokenRevocationStore creates the store selected by settings.Type
func NewTokenRevocationStore(ctx context.Context, settings *config.CacheSettings, logger logger.Logger) (users.TokenRevocationStore, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	switch settings.Type {
	case config.MemoryCacheType:
		return NewMemoryRevocationStore(), nil
	case config.RedisCacheType:
		return NewRedisRevocationStore(ctx, &settings.Redis, logger)
	default:
		return nil, fmt.Errorf("unsupported cache type: %s", settings.Type)
	}
}
