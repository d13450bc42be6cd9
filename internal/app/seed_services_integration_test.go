//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain/categories"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/users"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/videos"
	"github.com/Justyn-98/Video-upload-web-service/internal/infrastructure/persistence/models"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/config"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRecorder struct {
	counts map[string]int
}

func (r *countingRecorder) SeedRecordCreated(kind string) {
	r.counts[kind]++
}

func TestRolesCreateService_EnsureRoles_Idempotent(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	require.NoError(t, services.RolesCreateService.EnsureRoles(ctx))
	require.NoError(t, services.RolesCreateService.EnsureRoles(ctx))

	roles, err := services.DBContext.RoleRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, roles, 2)
	assert.Equal(t, users.RoleAdmin, roles[0].Name)
	assert.Equal(t, users.RoleUser, roles[1].Name)
}

func TestRolesCreateService_RecordsCreatedRoles(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	require.NoError(t, services.DBContext.DB.Where("1 = 1").Delete(&models.RoleModel{}).Error)

	recorder := &countingRecorder{counts: map[string]int{}}
	service, err := NewRolesCreateService(services.DBContext.RoleRepo, recorder, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	require.NoError(t, service.EnsureRoles(ctx))
	assert.Equal(t, 2, recorder.counts["role"])
}

func TestDefaultAdminService_EnsureDefaultAdmin(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	created, err := services.DefaultAdminService.EnsureDefaultAdmin(ctx)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = services.DefaultAdminService.EnsureDefaultAdmin(ctx)
	require.NoError(t, err)
	assert.False(t, created)

	query := users.NewUserQuery()
	query.Role = users.RoleAdmin
	admins, err := services.AccountDetailsService.List(ctx, query)
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, TestAdminUserName, admins[0].UserName)
	assert.ElementsMatch(t, []string{users.RoleAdmin, users.RoleUser}, admins[0].Roles)

	result, err := services.AccountService.Login(ctx, &users.LoginRequest{Login: TestAdminEmail, Password: TestAdminPassword})
	require.NoError(t, err)
	assert.True(t, result.User.HasRole(users.RoleAdmin))
}

func TestDataSeedService_SeedData_Idempotent(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	_, err := services.DefaultAdminService.EnsureDefaultAdmin(ctx)
	require.NoError(t, err)

	result, err := services.DataSeedService.SeedData(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(categories.DefaultCategories()), result.Categories)
	assert.Equal(t, len(sampleVideos), result.Videos)

	result, err = services.DataSeedService.SeedData(ctx)
	require.NoError(t, err)
	assert.Zero(t, result.Categories)
	assert.Zero(t, result.Videos)

	list, err := services.VideosService.List(ctx, videos.NewVideoQuery())
	require.NoError(t, err)
	assert.Len(t, list, len(sampleVideos))

	all, err := services.CategoryService.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, len(categories.DefaultCategories()))
}

func TestDataSeedService_SeedData_KeepsExistingCategories(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	_, err := services.DefaultAdminService.EnsureDefaultAdmin(ctx)
	require.NoError(t, err)
	music := services.CreateTestCategory(t, "music")

	result, err := services.DataSeedService.SeedData(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(categories.DefaultCategories())-1, result.Categories)

	query := videos.NewVideoQuery()
	query.CategoryID = music.ID
	list, err := services.VideosService.List(ctx, query)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestDataSeedService_SeedData_RequiresAdmin(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	_, err := services.DataSeedService.SeedData(context.Background())
	assert.Error(t, err)
}
