package connector

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/videos"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/logger"
)

// localVideoStorage keeps video files below a root directory
type localVideoStorage struct {
	root   string
	logger logger.Logger
}

// NewLocalVideoStorage creates the root directory when missing and returns a VideoStorage on it
func NewLocalVideoStorage(root string, logger logger.Logger) (videos.VideoStorage, error) {
	if root == "" {
		return nil, fmt.Errorf("local storage path must not be empty")
	}
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", root, err)
	}

	return &localVideoStorage{
		root:   root,
		logger: logger,
	}, nil
}

func (s *localVideoStorage) Upload(_ context.Context, videoID, fileName string, data []byte) (string, error) {
	key, err := storageKey(videoID, fileName)
	if err != nil {
		return "", err
	}

	fullPath := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o750); err != nil {
		return "", fmt.Errorf("failed to create directory for %s: %w", key, err)
	}
	if err := os.WriteFile(fullPath, data, 0o640); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", key, err)
	}

	s.logger.Info("Stored video file ", key, " (", len(data), " bytes)")
	return key, nil
}

func (s *localVideoStorage) Download(_ context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(s.root, filepath.FromSlash(key)))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("video file %s %w", key, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, nil
}

func (s *localVideoStorage) Delete(_ context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	fullPath := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.Remove(fullPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	// The per-video directory is removed once empty
	_ = os.Remove(filepath.Dir(fullPath))

	s.logger.Info("Deleted video file ", key)
	return nil
}
