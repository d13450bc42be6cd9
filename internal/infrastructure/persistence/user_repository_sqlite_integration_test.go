//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/users"
	"github.com/Justyn-98/Video-upload-web-service/internal/infrastructure/persistence/models"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserSqliteRepository_Create(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	CreateTestRoles(t, ctx)

	user := CreateTestUser(t, ctx, "alice")

	var model models.UserModel
	err := ctx.DB.First(&model, "id = ?", user.ID).Error
	require.NoError(t, err)
	assert.Equal(t, "ALICE", model.NormalizedUserName)
	assert.Equal(t, "ALICE@EXAMPLE.COM", model.NormalizedEmail)

	fetched, err := ctx.UserRepo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{users.RoleUser}, fetched.Roles)
}

func TestUserSqliteRepository_Create_Duplicate(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	CreateTestRoles(t, ctx)
	CreateTestUser(t, ctx, "alice")

	duplicate := &users.User{
		ID:              uuid.NewString(),
		UserName:        "ALICE",
		Email:           "other@example.com",
		PasswordHash:    "hash",
		DateTimeCreated: time.Now().UTC(),
	}
	err := ctx.UserRepo.Create(context.Background(), duplicate)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUserSqliteRepository_Create_UnknownRole(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := &users.User{
		ID:              uuid.NewString(),
		UserName:        "bob",
		Email:           "bob@example.com",
		PasswordHash:    "hash",
		DateTimeCreated: time.Now().UTC(),
		Roles:           []string{"Moderator"},
	}
	err := ctx.UserRepo.Create(context.Background(), user)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = ctx.UserRepo.GetByID(context.Background(), user.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserSqliteRepository_Create_InvalidUser(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	err := ctx.UserRepo.Create(context.Background(), &users.User{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestUserSqliteRepository_GetByLogin(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	CreateTestRoles(t, ctx)
	user := CreateTestUser(t, ctx, "alice")

	byName, err := ctx.UserRepo.GetByLogin(context.Background(), "ALICE")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	byEmail, err := ctx.UserRepo.GetByLogin(context.Background(), "Alice@Example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	_, err = ctx.UserRepo.GetByLogin(context.Background(), "nobody")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserSqliteRepository_GetByID_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	_, err := ctx.UserRepo.GetByID(context.Background(), "non-existent-id")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestUserSqliteRepository_List_FilterByRole(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	CreateTestRoles(t, ctx)
	alice := CreateTestUser(t, ctx, "alice")
	CreateTestUser(t, ctx, "bob")

	require.NoError(t, ctx.UserRepo.SetRoles(context.Background(), alice.ID, []string{users.RoleAdmin, users.RoleUser}))

	query := users.NewUserQuery()
	query.Role = "admin"
	list, err := ctx.UserRepo.List(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, alice.ID, list[0].ID)
	assert.ElementsMatch(t, []string{users.RoleAdmin, users.RoleUser}, list[0].Roles)

	all, err := ctx.UserRepo.List(context.Background(), users.NewUserQuery())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUserSqliteRepository_List_NameWildcardsAreLiteral(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	CreateTestRoles(t, ctx)
	underscored := CreateTestUser(t, ctx, "a_b")
	CreateTestUser(t, ctx, "axb")

	query := users.NewUserQuery()
	query.UserName = "a_b"
	list, err := ctx.UserRepo.List(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, underscored.ID, list[0].ID)

	query = users.NewUserQuery()
	query.Email = "A_B@"
	list, err = ctx.UserRepo.List(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, underscored.ID, list[0].ID)
}

func TestUserSqliteRepository_List_InvalidSort(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	query := users.NewUserQuery()
	query.SortBy = "password_hash; DROP TABLE users"
	_, err := ctx.UserRepo.List(context.Background(), query)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserSqliteRepository_UpdateByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	CreateTestRoles(t, ctx)
	user := CreateTestUser(t, ctx, "alice")

	user.DisplayName = "Alice A."
	user.Email = "alice@example.org"
	require.NoError(t, ctx.UserRepo.UpdateByID(context.Background(), user))

	fetched, err := ctx.UserRepo.GetByEmail(context.Background(), "ALICE@example.org")
	require.NoError(t, err)
	assert.Equal(t, "Alice A.", fetched.DisplayName)
	assert.Equal(t, []string{users.RoleUser}, fetched.Roles)
}

func TestUserSqliteRepository_UpdateByID_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := &users.User{
		ID:              uuid.NewString(),
		UserName:        "ghost",
		Email:           "ghost@example.com",
		PasswordHash:    "hash",
		DateTimeCreated: time.Now().UTC(),
	}
	err := ctx.UserRepo.UpdateByID(context.Background(), user)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserSqliteRepository_DeleteByID_Cascades(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	CreateTestRoles(t, ctx)
	alice := CreateTestUser(t, ctx, "alice")
	bob := CreateTestUser(t, ctx, "bob")
	category := CreateTestCategory(t, ctx, "Music")

	aliceVideo := CreateTestVideo(t, ctx, alice.ID, category.ID, "alice video")
	bobVideo := CreateTestVideo(t, ctx, bob.ID, category.ID, "bob video")

	// bob interacts with alice's video, alice with bob's
	_, err := ctx.LikeRepo.Create(context.Background(), newTestLike(aliceVideo.ID, bob.ID))
	require.NoError(t, err)
	_, err = ctx.LikeRepo.Create(context.Background(), newTestLike(bobVideo.ID, alice.ID))
	require.NoError(t, err)
	require.NoError(t, ctx.CommentRepo.Create(context.Background(), newTestComment(bobVideo.ID, alice.ID, "nice")))

	require.NoError(t, ctx.UserRepo.DeleteByID(context.Background(), alice.ID))

	_, err = ctx.UserRepo.GetByID(context.Background(), alice.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = ctx.VideoRepo.GetByID(context.Background(), aliceVideo.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	count, err := ctx.LikeRepo.CountByVideo(context.Background(), bobVideo.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	var likeCount int64
	require.NoError(t, ctx.DB.Model(&models.LikeModel{}).Count(&likeCount).Error)
	assert.Zero(t, likeCount)

	list, err := ctx.CommentRepo.ListByVideo(context.Background(), bobVideo.ID, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, list)

	var links int64
	require.NoError(t, ctx.DB.Model(&models.UserRoleModel{}).Where("user_id = ?", alice.ID).Count(&links).Error)
	assert.Zero(t, links)

	err = ctx.UserRepo.DeleteByID(context.Background(), alice.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRoleSqliteRepository_CreateAndGetByName(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	CreateTestRoles(t, ctx)

	role, err := ctx.RoleRepo.GetByName(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, users.RoleAdmin, role.Name)

	duplicate := &users.Role{ID: uuid.NewString(), Name: "ADMIN", NormalizedName: "ADMIN"}
	err = ctx.RoleRepo.Create(context.Background(), duplicate)
	assert.ErrorIs(t, err, domain.ErrConflict)

	roles, err := ctx.RoleRepo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, roles, 2)
}
