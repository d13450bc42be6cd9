//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/users"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/config"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountService_Register_Success(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	user := services.RegisterTestUser(t, "alice")
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, []string{users.RoleUser}, user.Roles)
	assert.NotEqual(t, TestPassword, user.PasswordHash)

	stored, err := services.AccountDetailsService.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", stored.UserName)
	assert.True(t, stored.HasRole(users.RoleUser))
}

func TestAccountService_Register_PasswordPolicy(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	tests := []struct {
		name     string
		userName string
		password string
		wantErr  bool
	}{
		{"digit and length", "user_a", "abcdefg1", false},
		{"no digit", "user_b", "abcdefgh", true},
		{"too short", "user_c", "abc1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := services.AccountService.Register(context.Background(), &users.RegisterRequest{
				UserName: tt.userName,
				Email:    tt.userName + "@example.com",
				Password: tt.password,
			})
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAccountService_Register_Duplicate(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	services.RegisterTestUser(t, "alice")

	_, err := services.AccountService.Register(context.Background(), &users.RegisterRequest{
		UserName: "ALICE",
		Email:    "other@example.com",
		Password: TestPassword,
	})
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = services.AccountService.Register(context.Background(), &users.RegisterRequest{
		UserName: "bob",
		Email:    "Alice@Example.com",
		Password: TestPassword,
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestAccountService_Login(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	user := services.RegisterTestUser(t, "alice")
	ctx := context.Background()

	for _, login := range []string{"alice", "ALICE", "alice@example.com", "Alice@Example.COM"} {
		result, err := services.AccountService.Login(ctx, &users.LoginRequest{Login: login, Password: TestPassword})
		require.NoError(t, err, login)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, user.ID, result.User.ID)

		principal, err := services.TokenAuthenticator.Authenticate(ctx, result.Token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, principal.UserID)
		assert.Equal(t, []string{users.RoleUser}, principal.Roles)
	}

	_, err := services.AccountService.Login(ctx, &users.LoginRequest{Login: "alice", Password: "wrong-password1"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	wrongPassword := err.Error()

	_, err = services.AccountService.Login(ctx, &users.LoginRequest{Login: "nobody", Password: TestPassword})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, wrongPassword, err.Error())
}

func TestAccountService_Logout_RevokesToken(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	services.RegisterTestUser(t, "alice")
	ctx := context.Background()

	result, err := services.AccountService.Login(ctx, &users.LoginRequest{Login: "alice", Password: TestPassword})
	require.NoError(t, err)

	principal, err := services.TokenAuthenticator.Authenticate(ctx, result.Token)
	require.NoError(t, err)

	require.NoError(t, services.AccountService.Logout(ctx, principal))

	_, err = services.TokenAuthenticator.Authenticate(ctx, result.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	err = services.AccountService.Logout(ctx, nil)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAccountDetailsService_UpdateProfile(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	alice := services.RegisterTestUser(t, "alice")
	services.RegisterTestUser(t, "bob")
	ctx := context.Background()

	displayName := "Alice"
	bio := "Films things"
	updated, err := services.AccountDetailsService.UpdateProfile(ctx, alice.ID, &users.UpdateProfileRequest{
		DisplayName: &displayName,
		Bio:         &bio,
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice", updated.DisplayName)
	assert.Equal(t, "alice@example.com", updated.Email)

	taken := "BOB@example.com"
	_, err = services.AccountDetailsService.UpdateProfile(ctx, alice.ID, &users.UpdateProfileRequest{Email: &taken})
	assert.ErrorIs(t, err, domain.ErrConflict)

	invalid := "not-an-email"
	_, err = services.AccountDetailsService.UpdateProfile(ctx, alice.ID, &users.UpdateProfileRequest{Email: &invalid})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAccountDetailsService_ChangePassword(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	alice := services.RegisterTestUser(t, "alice")
	ctx := context.Background()

	err := services.AccountDetailsService.ChangePassword(ctx, alice.ID, &users.ChangePasswordRequest{
		CurrentPassword: "wrong-password1",
		NewPassword:     "newpassword1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = services.AccountDetailsService.ChangePassword(ctx, alice.ID, &users.ChangePasswordRequest{
		CurrentPassword: TestPassword,
		NewPassword:     "short1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = services.AccountDetailsService.ChangePassword(ctx, alice.ID, &users.ChangePasswordRequest{
		CurrentPassword: TestPassword,
		NewPassword:     "newpassword1",
	})
	require.NoError(t, err)

	_, err = services.AccountService.Login(ctx, &users.LoginRequest{Login: "alice", Password: TestPassword})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = services.AccountService.Login(ctx, &users.LoginRequest{Login: "alice", Password: "newpassword1"})
	assert.NoError(t, err)
}

func TestAccountDetailsService_SetRoles(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	alice := services.RegisterTestUser(t, "alice")
	ctx := context.Background()

	updated, err := services.AccountDetailsService.SetRoles(ctx, alice.ID, []string{users.RoleAdmin, users.RoleUser})
	require.NoError(t, err)
	assert.True(t, updated.HasRole(users.RoleAdmin))

	_, err = services.AccountDetailsService.SetRoles(ctx, alice.ID, []string{"Moderator"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = services.AccountDetailsService.SetRoles(ctx, alice.ID, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// A failed update leaves the previous roles in place
	current, err := services.AccountDetailsService.GetByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{users.RoleAdmin, users.RoleUser}, current.Roles)
}

func TestAccountDetailsService_CreateUser(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	request := &users.RegisterRequest{UserName: "moderator", Email: "moderator@example.com", Password: TestPassword}

	_, err := services.AccountDetailsService.CreateUser(ctx, request, []string{users.RoleUser, "Nope"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Nothing was persisted, so the same request succeeds with valid roles
	_, err = services.DBContext.UserRepo.GetByUserName(ctx, "moderator")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	created, err := services.AccountDetailsService.CreateUser(ctx, request, []string{users.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, []string{users.RoleAdmin}, created.Roles)

	_, err = services.AccountDetailsService.CreateUser(ctx, request, nil)
	assert.ErrorIs(t, err, domain.ErrConflict)

	plain, err := services.AccountDetailsService.CreateUser(ctx, &users.RegisterRequest{
		UserName: "viewer", Email: "viewer@example.com", Password: TestPassword,
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{users.RoleUser}, plain.Roles)
}

func TestAccountDetailsService_DeleteByID_RemovesFiles(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	alice := services.RegisterTestUser(t, "alice")
	category := services.CreateTestCategory(t, "Music")
	video := services.CreateTestVideo(t, alice, category.ID, "clip")
	ctx := context.Background()

	fileHeader := testutil.CreateVideoFileHeader(t, "clip.mp4", "video/mp4", []byte("content"))
	uploaded, err := services.VideosService.UploadFile(ctx, PrincipalFor(alice), video.ID, fileHeader)
	require.NoError(t, err)

	require.NoError(t, services.AccountDetailsService.DeleteByID(ctx, alice.ID))

	_, err = services.AccountDetailsService.GetByID(ctx, alice.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = services.VideosService.GetByID(ctx, video.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = services.Storage.Download(ctx, *uploaded.StorageKey)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = services.AccountDetailsService.DeleteByID(ctx, alice.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
