//go:build unit
// +build unit

package connector

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/config"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalVideoStorage(t *testing.T) {
	logger := testutil.SetupTestLogger(t)
	root := filepath.Join(t.TempDir(), "videos")
	storage, err := NewLocalVideoStorage(root, logger)
	require.NoError(t, err)

	ctx := context.Background()
	videoID := uuid.NewString()
	content := []byte("not really an mp4")

	t.Run("UploadDownloadDelete", func(t *testing.T) {
		key, err := storage.Upload(ctx, videoID, "clip.mp4", content)
		require.NoError(t, err)
		assert.Equal(t, videoID+"/clip.mp4", key)
		assert.FileExists(t, filepath.Join(root, videoID, "clip.mp4"))

		data, err := storage.Download(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, content, data)

		require.NoError(t, storage.Delete(ctx, key))
		_, err = storage.Download(ctx, key)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		require.NoError(t, storage.Delete(ctx, key))
	})

	t.Run("StripsDirectories", func(t *testing.T) {
		key, err := storage.Upload(ctx, videoID, "../../etc/passwd", content)
		require.NoError(t, err)
		assert.Equal(t, videoID+"/passwd", key)

		_, err = os.Stat(filepath.Join(root, videoID, "passwd"))
		assert.NoError(t, err)
	})

	t.Run("RejectsEscapingKeys", func(t *testing.T) {
		_, err := storage.Download(ctx, "../secret")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		_, err = storage.Upload(ctx, videoID, "..", content)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestNewVideoStorage(t *testing.T) {
	logger := testutil.SetupTestLogger(t)

	storage, err := NewVideoStorage(context.Background(), &config.StorageSettings{
		Type:      config.LocalStorageType,
		LocalPath: t.TempDir(),
	}, logger)
	require.NoError(t, err)
	assert.NotNil(t, storage)

	_, err = NewVideoStorage(context.Background(), &config.StorageSettings{Type: config.AzureStorageType}, logger)
	assert.Error(t, err)
}
