package models

import (
	"time"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain/users"
)

// UserModel is the GORM database model for user accounts
type UserModel struct {
	ID                 string    `gorm:"primaryKey;type:varchar(36)"`
	UserName           string    `gorm:"not null;type:varchar(64)"`
	NormalizedUserName string    `gorm:"not null;uniqueIndex;type:varchar(64)"`
	Email              string    `gorm:"not null;type:varchar(254)"`
	NormalizedEmail    string    `gorm:"not null;uniqueIndex;type:varchar(254)"`
	PasswordHash       string    `gorm:"not null;type:varchar(255)"`
	DisplayName        string    `gorm:"type:varchar(100)"`
	Bio                string    `gorm:"type:text"`
	DateTimeCreated    time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain(roles []string) *users.User {
	if roles == nil {
		roles = []string{}
	}
	return &users.User{
		ID:              m.ID,
		UserName:        m.UserName,
		Email:           m.Email,
		PasswordHash:    m.PasswordHash,
		DisplayName:     m.DisplayName,
		Bio:             m.Bio,
		DateTimeCreated: m.DateTimeCreated,
		Roles:           roles,
	}
}

// FromDomain converts domain entity to GORM model, deriving the normalized lookup columns
func (m *UserModel) FromDomain(u *users.User) {
	m.ID = u.ID
	m.UserName = u.UserName
	m.NormalizedUserName = users.NormalizeName(u.UserName)
	m.Email = u.Email
	m.NormalizedEmail = users.NormalizeName(u.Email)
	m.PasswordHash = u.PasswordHash
	m.DisplayName = u.DisplayName
	m.Bio = u.Bio
	m.DateTimeCreated = u.DateTimeCreated
}

// RoleModel is the GORM database model for roles
type RoleModel struct {
	ID             string `gorm:"primaryKey;type:varchar(36)"`
	Name           string `gorm:"not null;type:varchar(64)"`
	NormalizedName string `gorm:"not null;uniqueIndex;type:varchar(64)"`
}

// TableName specifies the table name for GORM
func (RoleModel) TableName() string {
	return "roles"
}

// ToDomain converts GORM model to domain entity
func (m *RoleModel) ToDomain() *users.Role {
	return &users.Role{
		ID:             m.ID,
		Name:           m.Name,
		NormalizedName: m.NormalizedName,
	}
}

// FromDomain converts domain entity to GORM model
func (m *RoleModel) FromDomain(r *users.Role) {
	m.ID = r.ID
	m.Name = r.Name
	m.NormalizedName = users.NormalizeName(r.Name)
}

// UserRoleModel links users to roles
type UserRoleModel struct {
	UserID string `gorm:"primaryKey;type:varchar(36)"`
	RoleID string `gorm:"primaryKey;type:varchar(36);index"`
}

// TableName specifies the table name for GORM
func (UserRoleModel) TableName() string {
	return "user_roles"
}
