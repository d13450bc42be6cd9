//go:build unit
// +build unit

package users

import (
	"errors"
	"testing"
	"time"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidUser() *User {
	return &User{
		ID:              uuid.NewString(),
		UserName:        "jane_doe",
		Email:           "jane@example.com",
		PasswordHash:    "$2a$10$hash",
		DateTimeCreated: time.Now().UTC(),
		Roles:           []string{RoleUser},
	}
}

func TestUser_Validate(t *testing.T) {
	user := newValidUser()
	require.NoError(t, user.Validate())

	user.Email = "not-an-email"
	err := user.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Contains(t, err.Error(), "Email")
}

func TestUser_Validate_UserName(t *testing.T) {
	tests := []struct {
		name      string
		userName  string
		shouldErr bool
	}{
		{"valid", "jane.doe", false},
		{"too short", "jd", true},
		{"with space", "jane doe", true},
		{"with at sign", "jane@doe", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := newValidUser()
			user.UserName = tt.userName
			if tt.shouldErr {
				assert.Error(t, user.Validate())
			} else {
				assert.NoError(t, user.Validate())
			}
		})
	}
}

func TestPrincipal_Roles(t *testing.T) {
	admin := &Principal{UserID: "admin-id", Roles: []string{"admin", RoleUser}}
	user := &Principal{UserID: "user-id", Roles: []string{RoleUser}}
	var anonymous *Principal

	assert.True(t, admin.IsAdmin())
	assert.False(t, user.IsAdmin())
	assert.False(t, anonymous.IsAdmin())

	assert.True(t, user.CanModify("user-id"))
	assert.False(t, user.CanModify("other-id"))
	assert.True(t, admin.CanModify("other-id"))
	assert.False(t, anonymous.CanModify("user-id"))
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "JANE@EXAMPLE.COM", NormalizeName("  Jane@Example.com "))
}

func TestUserQuery_Validate(t *testing.T) {
	assert.NoError(t, NewUserQuery().Validate())
	assert.NoError(t, (&UserQuery{SortBy: "email", SortOrder: "desc", Limit: 10}).Validate())
	assert.Error(t, (&UserQuery{SortBy: "password_hash"}).Validate())
	assert.Error(t, (&UserQuery{Limit: -1}).Validate())
}

func TestRegisterRequest_Validate(t *testing.T) {
	valid := &RegisterRequest{UserName: "jane", Email: "jane@example.com", Password: "secret123"}
	assert.NoError(t, valid.Validate())

	missingEmail := &RegisterRequest{UserName: "jane", Password: "secret123"}
	assert.Error(t, missingEmail.Validate())
}
