package users

import (
	"strings"
	"time"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain"
)

// Built-in roles ensured at every startup
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// BuiltInRoles returns the roles every deployment has.
func BuiltInRoles() []string {
	return []string{RoleAdmin, RoleUser}
}

// NormalizeName returns the canonical form used for case-insensitive lookups of user names, emails and roles.
func NormalizeName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// User entity
type User struct {
	ID              string    `validate:"required,uuid4"`
	UserName        string    `validate:"required,min=3,max=64,username"`
	Email           string    `validate:"required,email,max=254"`
	PasswordHash    string    `validate:"required"`
	DisplayName     string    `validate:"max=100"`
	Bio             string    `validate:"max=1000"`
	DateTimeCreated time.Time `validate:"required"`
	Roles           []string
}

// Validate for validating User struct
func (u *User) Validate() error {
	return domain.ValidateStruct(u)
}

// HasRole reports whether the user is a member of role, case-insensitively
func (u *User) HasRole(role string) bool {
	return containsRole(u.Roles, role)
}

// Role entity
type Role struct {
	ID             string `validate:"required,uuid4"`
	Name           string `validate:"required,min=1,max=64"`
	NormalizedName string `validate:"required"`
}

// Validate for validating Role struct
func (r *Role) Validate() error {
	return domain.ValidateStruct(r)
}

// Principal is the authenticated identity attached to a request.
type Principal struct {
	UserID    string
	UserName  string
	Email     string
	Roles     []string
	TokenID   string
	ExpiresAt time.Time
}

// HasRole reports whether the principal is a member of role, case-insensitively
func (p *Principal) HasRole(role string) bool {
	return p != nil && containsRole(p.Roles, role)
}

// IsAdmin reports whether the principal has the Admin role
func (p *Principal) IsAdmin() bool {
	return p.HasRole(RoleAdmin)
}

// CanModify reports whether the principal owns the resource of ownerID or is an administrator
func (p *Principal) CanModify(ownerID string) bool {
	if p == nil {
		return false
	}
	return p.UserID == ownerID || p.IsAdmin()
}

func containsRole(roles []string, role string) bool {
	normalized := NormalizeName(role)
	for _, r := range roles {
		if NormalizeName(r) == normalized {
			return true
		}
	}
	return false
}
