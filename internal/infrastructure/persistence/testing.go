//go:build integration
// +build integration

package persistence

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain/categories"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/comments"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/likes"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/playlists"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/users"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/videos"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/config"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB           *gorm.DB
	UserRepo     users.UserRepository
	RoleRepo     users.RoleRepository
	CategoryRepo categories.CategoryRepository
	VideoRepo    videos.VideoRepository
	CommentRepo  comments.CommentRepository
	LikeRepo     likes.LikeRepository
	PlaylistRepo playlists.PlaylistRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	logger := testutil.SetupTestLogger(t)
	tc := &TestContext{DB: db}

	tc.UserRepo, err = NewGormUserRepository(db, logger)
	require.NoError(t, err)
	tc.RoleRepo, err = NewGormRoleRepository(db, logger)
	require.NoError(t, err)
	tc.CategoryRepo, err = NewGormCategoryRepository(db, logger)
	require.NoError(t, err)
	tc.VideoRepo, err = NewGormVideoRepository(db, logger)
	require.NoError(t, err)
	tc.CommentRepo, err = NewGormCommentRepository(db, logger)
	require.NoError(t, err)
	tc.LikeRepo, err = NewGormLikeRepository(db, logger)
	require.NoError(t, err)
	tc.PlaylistRepo, err = NewGormPlaylistRepository(db, logger)
	require.NoError(t, err)

	return tc
}

// CreateTestRoles persists the built-in roles
func CreateTestRoles(t *testing.T, tc *TestContext) {
	t.Helper()

	for _, name := range users.BuiltInRoles() {
		role := &users.Role{ID: uuid.NewString(), Name: name, NormalizedName: users.NormalizeName(name)}
		require.NoError(t, tc.RoleRepo.Create(context.Background(), role))
	}
}

// CreateTestUser persists a user with the User role
func CreateTestUser(t *testing.T, tc *TestContext, userName string) *users.User {
	t.Helper()

	user := &users.User{
		ID:              uuid.NewString(),
		UserName:        userName,
		Email:           userName + "@example.com",
		PasswordHash:    "$2a$10$hash",
		DateTimeCreated: time.Now().UTC(),
		Roles:           []string{users.RoleUser},
	}
	require.NoError(t, tc.UserRepo.Create(context.Background(), user))
	return user
}

// CreateTestCategory persists a category
func CreateTestCategory(t *testing.T, tc *TestContext, name string) *categories.Category {
	t.Helper()

	category := &categories.Category{ID: uuid.NewString(), Name: name}
	require.NoError(t, tc.CategoryRepo.Create(context.Background(), category))
	return category
}

// CreateTestVideo persists a video owned by userID
func CreateTestVideo(t *testing.T, tc *TestContext, userID, categoryID, title string) *videos.Video {
	t.Helper()

	now := time.Now().UTC()
	video := &videos.Video{
		ID:              uuid.NewString(),
		Title:           title,
		CategoryID:      categoryID,
		UserID:          userID,
		DateTimeCreated: now,
		DateTimeUpdated: now,
	}
	require.NoError(t, tc.VideoRepo.Create(context.Background(), video))
	return video
}
