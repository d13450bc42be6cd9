package connector

import (
	"context"
	"fmt"
	"io"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/videos"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/config"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/logger"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
)

// azureVideoStorage keeps video files as blobs of a single container
type azureVideoStorage struct {
	client        *azblob.Client
	containerName string
	logger        logger.Logger
}

// NewAzureVideoStorage creates a client from the connection string and ensures the container exists
func NewAzureVideoStorage(ctx context.Context, settings *config.StorageSettings, logger logger.Logger) (videos.VideoStorage, error) {
	client, err := azblob.NewClientFromConnectionString(settings.ConnectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure Blob client: %w", err)
	}

	_, err = client.CreateContainer(ctx, settings.ContainerName, nil)
	if err != nil && !bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
		return nil, fmt.Errorf("failed to create storage container %s: %w", settings.ContainerName, err)
	}

	logger.Info("Using Azure Blob container ", settings.ContainerName)
	return &azureVideoStorage{
		client:        client,
		containerName: settings.ContainerName,
		logger:        logger,
	}, nil
}

func (s *azureVideoStorage) Upload(ctx context.Context, videoID, fileName string, data []byte) (string, error) {
	key, err := storageKey(videoID, fileName)
	if err != nil {
		return "", err
	}

	if _, err := s.client.UploadBuffer(ctx, s.containerName, key, data, nil); err != nil {
		return "", fmt.Errorf("failed to upload blob %s: %w", key, err)
	}

	s.logger.Info("Uploaded video blob ", key, " (", len(data), " bytes)")
	return key, nil
}

func (s *azureVideoStorage) Download(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	resp, err := s.client.DownloadStream(ctx, s.containerName, key, nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound) {
			return nil, fmt.Errorf("video file %s %w", key, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to download blob %s: %w", key, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			s.logger.Warn("Failed to close blob stream: ", closeErr)
		}
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read blob %s: %w", key, err)
	}
	return data, nil
}

func (s *azureVideoStorage) Delete(ctx context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	_, err := s.client.DeleteBlob(ctx, s.containerName, key, nil)
	if err != nil && !bloberror.HasCode(err, bloberror.BlobNotFound) {
		return fmt.Errorf("failed to delete blob %s: %w", key, err)
	}

	s.logger.Info("Deleted video blob ", key)
	return nil
}
