package users

import (
	"context"
	"time"
)

// AccountService registers users and manages their sessions.
type AccountService interface {
	// Register creates a user with the User role after enforcing the password policy.
	Register(ctx context.Context, request *RegisterRequest) (*User, error)

	// Login verifies the credentials and issues a bearer token.
	Login(ctx context.Context, request *LoginRequest) (*SignInResult, error)

	// Logout revokes the token of the principal until it expires.
	Logout(ctx context.Context, principal *Principal) error
}

// AccountDetailsService reads and maintains user accounts.
type AccountDetailsService interface {
	GetByID(ctx context.Context, userID string) (*User, error)
	List(ctx context.Context, query *UserQuery) ([]*User, error)
	UpdateProfile(ctx context.Context, userID string, request *UpdateProfileRequest) (*User, error)
	ChangePassword(ctx context.Context, userID string, request *ChangePasswordRequest) error
	DeleteByID(ctx context.Context, userID string) error

	// CreateUser creates an account with explicit roles in one step. Every role must exist.
	CreateUser(ctx context.Context, request *RegisterRequest, roles []string) (*User, error)

	// SetRoles replaces the roles of a user. Every role must exist.
	SetRoles(ctx context.Context, userID string, roles []string) (*User, error)
}

// UserSignInHelper issues bearer tokens for authenticated users.
type UserSignInHelper interface {
	SignIn(ctx context.Context, user *User) (*SignInResult, error)
}

// TokenAuthenticator turns a raw bearer token into a principal.
type TokenAuthenticator interface {
	Authenticate(ctx context.Context, rawToken string) (*Principal, error)
}

// RolesCreateService ensures the built-in roles exist.
type RolesCreateService interface {
	// EnsureRoles creates missing built-in roles. It is safe to call on every start.
	EnsureRoles(ctx context.Context) error
}

// DefaultAdminService ensures the configured administrator account exists.
type DefaultAdminService interface {
	// EnsureDefaultAdmin creates the administrator when absent and reports whether it did.
	EnsureDefaultAdmin(ctx context.Context) (bool, error)
}

// UserRepository defines the interface for User-related operations
type UserRepository interface {
	// Create persists the user together with its role links. Roles must exist.
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID string) (*User, error)
	GetByUserName(ctx context.Context, userName string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)

	// GetByLogin matches the user name or the email, case-insensitively.
	GetByLogin(ctx context.Context, login string) (*User, error)
	List(ctx context.Context, query *UserQuery) ([]*User, error)

	// UpdateByID persists profile fields and the password hash. Roles are left untouched.
	UpdateByID(ctx context.Context, user *User) error
	SetRoles(ctx context.Context, userID string, roles []string) error

	// DeleteByID removes the user and everything the user owns.
	DeleteByID(ctx context.Context, userID string) error
}

// RoleRepository defines the interface for Role-related operations
type RoleRepository interface {
	Create(ctx context.Context, role *Role) error
	GetByName(ctx context.Context, name string) (*Role, error)
	List(ctx context.Context) ([]*Role, error)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer signs and parses bearer tokens.
type TokenIssuer interface {
	// Issue signs a token carrying the principal, valid from issuedAt until principal.ExpiresAt.
	Issue(principal *Principal, issuedAt time.Time) (string, error)

	// Parse validates signature and lifetime and returns the principal carried by the token.
	Parse(rawToken string) (*Principal, error)
}

// TokenRevocationStore remembers revoked token IDs until they would have expired.
type TokenRevocationStore interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
