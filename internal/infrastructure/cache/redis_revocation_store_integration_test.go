//go:build integration
// +build integration

package cache

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/config"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRedisAddr points to the redis instance started for integration tests
const TestRedisAddr = "localhost:6379"

func TestRedisRevocationStore(t *testing.T) {
	logger := testutil.SetupTestLogger(t)
	ctx := context.Background()

	store, err := NewRedisRevocationStore(ctx, &config.RedisSettings{Addr: TestRedisAddr}, logger)
	require.NoError(t, err)

	tokenID := uuid.NewString()
	revoked, err := store.IsRevoked(ctx, tokenID)
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, tokenID, time.Now().Add(time.Minute)))
	revoked, err = store.IsRevoked(ctx, tokenID)
	require.NoError(t, err)
	assert.True(t, revoked)

	expiredID := uuid.NewString()
	require.NoError(t, store.Revoke(ctx, expiredID, time.Now().Add(-time.Minute)))
	revoked, err = store.IsRevoked(ctx, expiredID)
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedisRevocationStore_Close(t *testing.T) {
	logger := testutil.SetupTestLogger(t)
	ctx := context.Background()

	store, err := NewRedisRevocationStore(ctx, &config.RedisSettings{Addr: TestRedisAddr}, logger)
	require.NoError(t, err)

	closer, ok := store.(io.Closer)
	require.True(t, ok)
	require.NoError(t, closer.Close())

	_, err = store.IsRevoked(ctx, uuid.NewString())
	assert.ErrorIs(t, err, redis.ErrClosed)
}
