package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/users"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/videos"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/config"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/logger"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/validators"

	"github.com/google/uuid"
)

const invalidCredentialsMessage = "invalid login or password"

// accountService implements the AccountService interface
type accountService struct {
	userRepo         users.UserRepository
	hasher           users.PasswordHasher
	signInHelper     users.UserSignInHelper
	revocations      users.TokenRevocationStore
	passwordSettings config.PasswordSettings
	logger           logger.Logger
}

// NewAccountService creates a new instance of AccountService
func NewAccountService(
	userRepo users.UserRepository,
	hasher users.PasswordHasher,
	signInHelper users.UserSignInHelper,
	revocations users.TokenRevocationStore,
	passwordSettings config.PasswordSettings,
	logger logger.Logger,
) (users.AccountService, error) {
	if err := passwordSettings.Validate(); err != nil {
		return nil, err
	}

	return &accountService{
		userRepo:         userRepo,
		hasher:           hasher,
		signInHelper:     signInHelper,
		revocations:      revocations,
		passwordSettings: passwordSettings,
		logger:           logger,
	}, nil
}

// Register creates a user with the User role
func (s *accountService) Register(ctx context.Context, request *users.RegisterRequest) (*users.User, error) {
	user, err := createUser(ctx, s.userRepo, s.hasher, s.passwordSettings, request, []string{users.RoleUser})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Registered user ", user.UserName, " with id ", user.ID)
	return user, nil
}

// createUser validates request against the password policy and persists the
// user together with roles in a single repository call.
func createUser(
	ctx context.Context,
	userRepo users.UserRepository,
	hasher users.PasswordHasher,
	passwordSettings config.PasswordSettings,
	request *users.RegisterRequest,
	roles []string,
) (*users.User, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}
	if err := validators.ValidatePassword(passwordSettings, request.Password); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if err := ensureUnique(ctx, userRepo, request.UserName, request.Email); err != nil {
		return nil, err
	}

	hash, err := hasher.Hash(request.Password)
	if err != nil {
		return nil, err
	}

	user := &users.User{
		ID:              uuid.NewString(),
		UserName:        strings.TrimSpace(request.UserName),
		Email:           strings.TrimSpace(request.Email),
		PasswordHash:    hash,
		DateTimeCreated: time.Now().UTC(),
		Roles:           roles,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Login verifies the credentials; unknown users and wrong passwords fail alike
func (s *accountService) Login(ctx context.Context, request *users.LoginRequest) (*users.SignInResult, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByLogin(ctx, request.Login)
	if ok, lookupErr := found(err); lookupErr != nil {
		return nil, lookupErr
	} else if !ok {
		return nil, fmt.Errorf("%s: %w", invalidCredentialsMessage, domain.ErrUnauthorized)
	}

	if err := s.hasher.Compare(user.PasswordHash, request.Password); err != nil {
		s.logger.Debug("Failed login for user ", user.ID)
		return nil, fmt.Errorf("%s: %w", invalidCredentialsMessage, domain.ErrUnauthorized)
	}

	return s.signInHelper.SignIn(ctx, user)
}

// Logout revokes the token of principal until it expires
func (s *accountService) Logout(ctx context.Context, principal *users.Principal) error {
	if principal == nil || principal.TokenID == "" {
		return fmt.Errorf("no authenticated session: %w", domain.ErrUnauthorized)
	}
	if err := s.revocations.Revoke(ctx, principal.TokenID, principal.ExpiresAt); err != nil {
		return err
	}

	s.logger.Info("User ", principal.UserID, " logged out")
	return nil
}

// ensureUnique fails with domain.ErrConflict when the user name or email is taken
func ensureUnique(ctx context.Context, userRepo users.UserRepository, userName, email string) error {
	_, err := userRepo.GetByUserName(ctx, userName)
	exists, err := found(err)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("user name %s is already taken: %w", userName, domain.ErrConflict)
	}

	_, err = userRepo.GetByEmail(ctx, email)
	exists, err = found(err)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("email %s is already registered: %w", email, domain.ErrConflict)
	}
	return nil
}

// accountDetailsService implements the AccountDetailsService interface
type accountDetailsService struct {
	userRepo         users.UserRepository
	videoRepo        videos.VideoRepository
	storage          videos.VideoStorage
	hasher           users.PasswordHasher
	passwordSettings config.PasswordSettings
	logger           logger.Logger
}

// NewAccountDetailsService creates a new instance of AccountDetailsService
func NewAccountDetailsService(
	userRepo users.UserRepository,
	videoRepo videos.VideoRepository,
	storage videos.VideoStorage,
	hasher users.PasswordHasher,
	passwordSettings config.PasswordSettings,
	logger logger.Logger,
) (users.AccountDetailsService, error) {
	if err := passwordSettings.Validate(); err != nil {
		return nil, err
	}

	return &accountDetailsService{
		userRepo:         userRepo,
		videoRepo:        videoRepo,
		storage:          storage,
		hasher:           hasher,
		passwordSettings: passwordSettings,
		logger:           logger,
	}, nil
}

func (s *accountDetailsService) GetByID(ctx context.Context, userID string) (*users.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *accountDetailsService) List(ctx context.Context, query *users.UserQuery) ([]*users.User, error) {
	if query == nil {
		query = users.NewUserQuery()
	}
	return s.userRepo.List(ctx, query)
}

// UpdateProfile applies the fields set in request
func (s *accountDetailsService) UpdateProfile(ctx context.Context, userID string, request *users.UpdateProfileRequest) (*users.User, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if request.Email != nil {
		email := strings.TrimSpace(*request.Email)
		if users.NormalizeName(email) != users.NormalizeName(user.Email) {
			existing, err := s.userRepo.GetByEmail(ctx, email)
			if ok, lookupErr := found(err); lookupErr != nil {
				return nil, lookupErr
			} else if ok && existing.ID != user.ID {
				return nil, fmt.Errorf("email %s is already registered: %w", email, domain.ErrConflict)
			}
		}
		user.Email = email
	}
	if request.DisplayName != nil {
		user.DisplayName = strings.TrimSpace(*request.DisplayName)
	}
	if request.Bio != nil {
		user.Bio = *request.Bio
	}

	if err := s.userRepo.UpdateByID(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword replaces the password once the current one is confirmed
func (s *accountDetailsService) ChangePassword(ctx context.Context, userID string, request *users.ChangePasswordRequest) error {
	if err := request.Validate(); err != nil {
		return err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.hasher.Compare(user.PasswordHash, request.CurrentPassword); err != nil {
		return fmt.Errorf("current password is incorrect: %w", domain.ErrInvalidInput)
	}
	if err := validators.ValidatePassword(s.passwordSettings, request.NewPassword); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	hash, err := s.hasher.Hash(request.NewPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash

	if err := s.userRepo.UpdateByID(ctx, user); err != nil {
		return err
	}

	s.logger.Info("Changed password of user ", userID)
	return nil
}

// DeleteByID removes the user with everything the user owns, including stored video files
func (s *accountDetailsService) DeleteByID(ctx context.Context, userID string) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}

	query := videos.NewVideoQuery()
	query.UserID = userID
	owned, err := s.videoRepo.List(ctx, query)
	if err != nil {
		return err
	}

	if err := s.userRepo.DeleteByID(ctx, userID); err != nil {
		return err
	}

	for _, video := range owned {
		if video.HasFile() {
			if err := s.storage.Delete(ctx, *video.StorageKey); err != nil {
				s.logger.Warn("Failed to delete file of video ", video.ID, ": ", err)
			}
		}
	}
	return nil
}

// CreateUser creates an account with the given roles, or the User role when
// roles is empty. Unknown roles fail without persisting anything.
func (s *accountDetailsService) CreateUser(ctx context.Context, request *users.RegisterRequest, roles []string) (*users.User, error) {
	if len(roles) == 0 {
		roles = []string{users.RoleUser}
	}

	user, err := createUser(ctx, s.userRepo, s.hasher, s.passwordSettings, request, roles)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Created user ", user.UserName, " with id ", user.ID)
	return s.userRepo.GetByID(ctx, user.ID)
}

// SetRoles replaces the roles of the user
func (s *accountDetailsService) SetRoles(ctx context.Context, userID string, roles []string) (*users.User, error) {
	if len(roles) == 0 {
		return nil, fmt.Errorf("at least one role is required: %w", domain.ErrInvalidInput)
	}
	if err := s.userRepo.SetRoles(ctx, userID, roles); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, userID)
}

// userSignInHelper implements the UserSignInHelper interface
type userSignInHelper struct {
	issuer   users.TokenIssuer
	lifetime time.Duration
	logger   logger.Logger
}

// NewUserSignInHelper creates a new instance of UserSignInHelper
func NewUserSignInHelper(issuer users.TokenIssuer, settings *config.JwtTokenSettings, logger logger.Logger) (users.UserSignInHelper, error) {
	return &userSignInHelper{
		issuer:   issuer,
		lifetime: settings.TokenLifetime(),
		logger:   logger,
	}, nil
}

// SignIn issues a token carrying the identity and roles of user
func (h *userSignInHelper) SignIn(_ context.Context, user *users.User) (*users.SignInResult, error) {
	now := time.Now().UTC()
	principal := &users.Principal{
		UserID:    user.ID,
		UserName:  user.UserName,
		Email:     user.Email,
		Roles:     user.Roles,
		TokenID:   uuid.NewString(),
		ExpiresAt: now.Add(h.lifetime),
	}

	token, err := h.issuer.Issue(principal, now)
	if err != nil {
		return nil, err
	}

	h.logger.Info("Issued token for user ", user.ID)
	return &users.SignInResult{
		Token:     token,
		ExpiresAt: principal.ExpiresAt,
		User:      user,
	}, nil
}

// tokenAuthenticator implements the TokenAuthenticator interface
type tokenAuthenticator struct {
	issuer      users.TokenIssuer
	revocations users.TokenRevocationStore
}

// NewTokenAuthenticator creates a new instance of TokenAuthenticator
func NewTokenAuthenticator(issuer users.TokenIssuer, revocations users.TokenRevocationStore) (users.TokenAuthenticator, error) {
	return &tokenAuthenticator{
		issuer:      issuer,
		revocations: revocations,
	}, nil
}

// Authenticate parses rawToken and rejects revoked tokens
func (a *tokenAuthenticator) Authenticate(ctx context.Context, rawToken string) (*users.Principal, error) {
	principal, err := a.issuer.Parse(rawToken)
	if err != nil {
		return nil, err
	}

	if principal.TokenID != "" {
		revoked, err := a.revocations.IsRevoked(ctx, principal.TokenID)
		if err != nil {
			return nil, err
		}
		if revoked {
			return nil, fmt.Errorf("token has been revoked: %w", domain.ErrUnauthorized)
		}
	}
	return principal, nil
}
