//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain/categories"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/comments"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/likes"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/playlists"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/seed"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/users"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/videos"
	"github.com/Justyn-98/Video-upload-web-service/internal/infrastructure/cache"
	"github.com/Justyn-98/Video-upload-web-service/internal/infrastructure/connector"
	"github.com/Justyn-98/Video-upload-web-service/internal/infrastructure/cryptography"
	"github.com/Justyn-98/Video-upload-web-service/internal/infrastructure/persistence"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/config"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// Test constants
const (
	TestSecretKey     = "integration-test-secret-key-0123456789"
	TestAdminUserName = "admin"
	TestAdminEmail    = "admin@example.com"
	TestAdminPassword = "Admin12345"
	TestPassword      = "abcdefg1"
	TestMaxUploadSize = 1 << 20
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	AccountService        users.AccountService
	AccountDetailsService users.AccountDetailsService
	SignInHelper          users.UserSignInHelper
	TokenAuthenticator    users.TokenAuthenticator
	RolesCreateService    users.RolesCreateService
	DefaultAdminService   users.DefaultAdminService
	CategoryService       categories.VideoCategoryService
	VideosService         videos.VideosService
	CommentsService       comments.CommentsService
	LikesService          likes.LikesService
	PlaylistService       playlists.PlaylistService
	DataSeedService       seed.DataSeedService

	Storage   videos.VideoStorage
	DBContext *persistence.TestContext
}

// SetupTestServices wires every service on an in-memory database with local file storage.
// Built-in roles are ensured.
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)

	storage, err := connector.NewLocalVideoStorage(t.TempDir(), logger)
	require.NoError(t, err)

	hasher, err := cryptography.NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)

	jwtSettings := &config.JwtTokenSettings{SecretKey: TestSecretKey}
	issuer, err := cryptography.NewJwtTokenIssuer(jwtSettings, logger)
	require.NoError(t, err)

	revocations := cache.NewMemoryRevocationStore()
	passwordSettings := config.DefaultPasswordSettings()
	adminSettings := config.AdminSettings{
		UserName: TestAdminUserName,
		Email:    TestAdminEmail,
		Password: TestAdminPassword,
	}

	s := &TestServices{Storage: storage, DBContext: dbContext}

	s.SignInHelper, err = NewUserSignInHelper(issuer, jwtSettings, logger)
	require.NoError(t, err)
	s.TokenAuthenticator, err = NewTokenAuthenticator(issuer, revocations)
	require.NoError(t, err)
	s.AccountService, err = NewAccountService(dbContext.UserRepo, hasher, s.SignInHelper, revocations, passwordSettings, logger)
	require.NoError(t, err)
	s.AccountDetailsService, err = NewAccountDetailsService(dbContext.UserRepo, dbContext.VideoRepo, storage, hasher, passwordSettings, logger)
	require.NoError(t, err)
	s.RolesCreateService, err = NewRolesCreateService(dbContext.RoleRepo, nil, logger)
	require.NoError(t, err)
	s.DefaultAdminService, err = NewDefaultAdminService(dbContext.UserRepo, hasher, adminSettings, nil, logger)
	require.NoError(t, err)
	s.CategoryService, err = NewVideoCategoryService(dbContext.CategoryRepo, logger)
	require.NoError(t, err)
	s.VideosService, err = NewVideosService(dbContext.VideoRepo, dbContext.CategoryRepo, storage, TestMaxUploadSize, logger)
	require.NoError(t, err)
	s.CommentsService, err = NewCommentsService(dbContext.CommentRepo, dbContext.VideoRepo, logger)
	require.NoError(t, err)
	s.LikesService, err = NewLikesService(dbContext.LikeRepo, dbContext.VideoRepo, logger)
	require.NoError(t, err)
	s.PlaylistService, err = NewPlaylistService(dbContext.PlaylistRepo, dbContext.VideoRepo, logger)
	require.NoError(t, err)
	s.DataSeedService, err = NewDataSeedService(dbContext.CategoryRepo, dbContext.VideoRepo, dbContext.UserRepo, adminSettings, nil, logger)
	require.NoError(t, err)

	require.NoError(t, s.RolesCreateService.EnsureRoles(context.Background()))
	return s
}

// RegisterTestUser registers a user with TestPassword
func (s *TestServices) RegisterTestUser(t *testing.T, userName string) *users.User {
	t.Helper()

	user, err := s.AccountService.Register(context.Background(), &users.RegisterRequest{
		UserName: userName,
		Email:    userName + "@example.com",
		Password: TestPassword,
	})
	require.NoError(t, err)
	return user
}

// CreateTestCategory creates a category through the service
func (s *TestServices) CreateTestCategory(t *testing.T, name string) *categories.Category {
	t.Helper()

	category, err := s.CategoryService.Create(context.Background(), &categories.CategoryInput{Name: name})
	require.NoError(t, err)
	return category
}

// CreateTestVideo creates a video owned by user
func (s *TestServices) CreateTestVideo(t *testing.T, user *users.User, categoryID, title string) *videos.Video {
	t.Helper()

	video, err := s.VideosService.Create(context.Background(), user.ID, &videos.VideoInput{
		Title:      title,
		CategoryID: categoryID,
	})
	require.NoError(t, err)
	return video
}

// PrincipalFor builds the principal a token of user would carry
func PrincipalFor(user *users.User) *users.Principal {
	return &users.Principal{
		UserID:   user.ID,
		UserName: user.UserName,
		Email:    user.Email,
		Roles:    user.Roles,
	}
}
