package users

import (
	"fmt"
	"time"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain"
)

// RegisterRequest carries a self-registration
type RegisterRequest struct {
	UserName string `validate:"required,min=3,max=64,username"`
	Email    string `validate:"required,email,max=254"`
	Password string `validate:"required,max=128"`
}

// Validate for validating RegisterRequest struct. The password policy is checked by the account service.
func (r *RegisterRequest) Validate() error {
	return domain.ValidateStruct(r)
}

// LoginRequest identifies a user by user name or email
type LoginRequest struct {
	Login    string `validate:"required,max=254"`
	Password string `validate:"required,max=128"`
}

// Validate for validating LoginRequest struct
func (r *LoginRequest) Validate() error {
	return domain.ValidateStruct(r)
}

// UpdateProfileRequest changes the fields that are set
type UpdateProfileRequest struct {
	Email       *string `validate:"omitempty,email,max=254"`
	DisplayName *string `validate:"omitempty,max=100"`
	Bio         *string `validate:"omitempty,max=1000"`
}

// Validate for validating UpdateProfileRequest struct
func (r *UpdateProfileRequest) Validate() error {
	return domain.ValidateStruct(r)
}

// ChangePasswordRequest replaces the password after checking the current one
type ChangePasswordRequest struct {
	CurrentPassword string `validate:"required,max=128"`
	NewPassword     string `validate:"required,max=128"`
}

// Validate for validating ChangePasswordRequest struct
func (r *ChangePasswordRequest) Validate() error {
	return domain.ValidateStruct(r)
}

// SignInResult is returned after a successful login
type SignInResult struct {
	Token     string
	ExpiresAt time.Time
	User      *User
}

// UserQuery filters and pages the user list
type UserQuery struct {
	UserName  string
	Email     string
	Role      string
	Limit     int    `validate:"gte=0,lte=500"`
	Offset    int    `validate:"gte=0"`
	SortBy    string `validate:"omitempty,oneof=user_name email date_time_created"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewUserQuery creates a UserQuery with default values
func NewUserQuery() *UserQuery {
	return &UserQuery{}
}

// Validate for validating UserQuery struct
func (q *UserQuery) Validate() error {
	if err := domain.ValidateStruct(q); err != nil {
		return fmt.Errorf("invalid user query: %w", err)
	}
	return nil
}
