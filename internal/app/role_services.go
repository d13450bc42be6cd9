package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/users"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/config"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/logger"

	"github.com/google/uuid"
)

// rolesCreateService implements the RolesCreateService interface
type rolesCreateService struct {
	roleRepo users.RoleRepository
	recorder SeedRecorder
	logger   logger.Logger
}

// NewRolesCreateService creates a new instance of RolesCreateService. recorder may be nil.
func NewRolesCreateService(roleRepo users.RoleRepository, recorder SeedRecorder, logger logger.Logger) (users.RolesCreateService, error) {
	return &rolesCreateService{
		roleRepo: roleRepo,
		recorder: seedRecorderOrNoop(recorder),
		logger:   logger,
	}, nil
}

// EnsureRoles creates the built-in roles that are missing
func (s *rolesCreateService) EnsureRoles(ctx context.Context) error {
	for _, name := range users.BuiltInRoles() {
		_, err := s.roleRepo.GetByName(ctx, name)
		exists, err := found(err)
		if err != nil {
			return fmt.Errorf("failed to look up role %s: %w", name, err)
		}
		if exists {
			continue
		}

		role := &users.Role{
			ID:             uuid.NewString(),
			Name:           name,
			NormalizedName: users.NormalizeName(name),
		}
		if err := s.roleRepo.Create(ctx, role); err != nil {
			// Another instance created it concurrently
			if errors.Is(err, domain.ErrConflict) {
				continue
			}
			return fmt.Errorf("failed to create role %s: %w", name, err)
		}

		s.recorder.SeedRecordCreated("role")
		s.logger.Info("Created role ", name)
	}
	return nil
}

// defaultAdminService implements the DefaultAdminService interface
type defaultAdminService struct {
	userRepo users.UserRepository
	hasher   users.PasswordHasher
	settings config.AdminSettings
	recorder SeedRecorder
	logger   logger.Logger
}

// NewDefaultAdminService creates a new instance of DefaultAdminService. recorder may be nil.
func NewDefaultAdminService(
	userRepo users.UserRepository,
	hasher users.PasswordHasher,
	settings config.AdminSettings,
	recorder SeedRecorder,
	logger logger.Logger,
) (users.DefaultAdminService, error) {
	return &defaultAdminService{
		userRepo: userRepo,
		hasher:   hasher,
		settings: settings,
		recorder: seedRecorderOrNoop(recorder),
		logger:   logger,
	}, nil
}

// EnsureDefaultAdmin creates the configured administrator with roles Admin and User unless the user name exists
func (s *defaultAdminService) EnsureDefaultAdmin(ctx context.Context) (bool, error) {
	_, err := s.userRepo.GetByUserName(ctx, s.settings.UserName)
	exists, err := found(err)
	if err != nil {
		return false, fmt.Errorf("failed to look up default administrator: %w", err)
	}
	if exists {
		return false, nil
	}

	if s.settings.Password == "" {
		return false, fmt.Errorf("default administrator password is not configured: %w", domain.ErrInvalidInput)
	}
	hash, err := s.hasher.Hash(s.settings.Password)
	if err != nil {
		return false, err
	}

	admin := &users.User{
		ID:              uuid.NewString(),
		UserName:        s.settings.UserName,
		Email:           s.settings.Email,
		PasswordHash:    hash,
		DisplayName:     "Administrator",
		DateTimeCreated: time.Now().UTC(),
		Roles:           []string{users.RoleAdmin, users.RoleUser},
	}
	if err := s.userRepo.Create(ctx, admin); err != nil {
		return false, fmt.Errorf("failed to create default administrator: %w", err)
	}

	s.recorder.SeedRecordCreated("admin")
	s.logger.Info("Created default administrator ", admin.UserName)
	return true, nil
}
