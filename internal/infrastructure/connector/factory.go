package connector

import (
	"context"
	"fmt"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain/videos"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/config"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/logger"
)

// NewVideoStorage creates the VideoStorage selected by settings.Type
func NewVideoStorage(ctx context.Context, settings *config.StorageSettings, logger logger.Logger) (videos.VideoStorage, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	switch settings.Type {
	case config.LocalStorageType:
		return NewLocalVideoStorage(settings.LocalPath, logger)
	case config.AzureStorageType:
		return NewAzureVideoStorage(ctx, settings, logger)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", settings.Type)
	}
}
