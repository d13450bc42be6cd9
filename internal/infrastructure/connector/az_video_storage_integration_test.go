//go:build integration
// +build integration

package connector

import (
	"context"
	"testing"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/config"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAzureVideoStorage_UploadDownloadDelete(t *testing.T) {
	logger := testutil.SetupTestLogger(t)
	ctx := context.Background()

	storage, err := NewAzureVideoStorage(ctx, &config.StorageSettings{
		Type:             config.AzureStorageType,
		ConnectionString: TestConnectionString,
		ContainerName:    TestContainerName,
	}, logger)
	require.NoError(t, err)

	videoID := uuid.NewString()
	content := []byte("This is test video content")

	key, err := storage.Upload(ctx, videoID, "clip.mp4", content)
	require.NoError(t, err)
	assert.Equal(t, videoID+"/clip.mp4", key)

	data, err := storage.Download(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, content, data)

	require.NoError(t, storage.Delete(ctx, key))

	_, err = storage.Download(ctx, key)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Deleting twice is not an error
	require.NoError(t, storage.Delete(ctx, key))
}
