// Package bootstrap wires configuration, persistence, connectors and
// application services for the API server and the CLI.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"

	v1 "github.com/Justyn-98/Video-upload-web-service/internal/api/rest/v1"
	"github.com/Justyn-98/Video-upload-web-service/internal/app"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/categories"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/comments"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/likes"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/playlists"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/seed"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/users"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/videos"
	"github.com/Justyn-98/Video-upload-web-service/internal/infrastructure/cache"
	"github.com/Justyn-98/Video-upload-web-service/internal/infrastructure/connector"
	"github.com/Justyn-98/Video-upload-web-service/internal/infrastructure/cryptography"
	"github.com/Justyn-98/Video-upload-web-service/internal/infrastructure/persistence"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/config"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/logger"

	"gorm.io/gorm"
)

// Repositories holds the GORM repositories
type Repositories struct {
	Users      users.UserRepository
	Roles      users.RoleRepository
	Categories categories.CategoryRepository
	Videos     videos.VideoRepository
	Comments   comments.CommentRepository
	Likes      likes.LikeRepository
	Playlists  playlists.PlaylistRepository
}

// Services holds the application services
type Services struct {
	Accounts           users.AccountService
	AccountDetails     users.AccountDetailsService
	SignInHelper       users.UserSignInHelper
	TokenAuthenticator users.TokenAuthenticator
	Roles              users.RolesCreateService
	DefaultAdmin       users.DefaultAdminService
	Categories         categories.VideoCategoryService
	Videos             videos.VideosService
	Comments           comments.CommentsService
	Likes              likes.LikesService
	Playlists          playlists.PlaylistService
	DataSeed           seed.DataSeedService
}

// Container owns the database connection and everything built on it
type Container struct {
	DB           *gorm.DB
	Repositories *Repositories
	Services     *Services
	Storage      videos.VideoStorage
	Revocations  users.TokenRevocationStore

	maxUploadSize int64
	logger        logger.Logger
}

// NewContainer connects and migrates the database, then builds repositories,
// connectors and services. recorder may be nil.
func NewContainer(ctx context.Context, cfg *config.RestConfig, recorder app.SeedRecorder, log logger.Logger) (*Container, error) {
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := persistence.Migrate(db); err != nil {
		_ = persistence.CloseDB(db)
		return nil, err
	}
	log.Info("Database migrations completed successfully")

	c := &Container{DB: db, maxUploadSize: cfg.Storage.MaxUploadSize, logger: log}
	if err := c.initialize(ctx, cfg, recorder); err != nil {
		_ = c.Close()
		return nil, err
	}
	return c, nil
}

func (c *Container) initialize(ctx context.Context, cfg *config.RestConfig, recorder app.SeedRecorder) error {
	repos, err := newRepositories(c.DB, c.logger)
	if err != nil {
		return err
	}
	c.Repositories = repos

	c.Storage, err = connector.NewVideoStorage(ctx, &cfg.Storage, c.logger)
	if err != nil {
		return fmt.Errorf("failed to create video storage: %w", err)
	}

	c.Revocations, err = cache.NewTokenRevocationStore(ctx, &cfg.Cache, c.logger)
	if err != nil {
		return fmt.Errorf("failed to create token revocation store: %w", err)
	}

	c.Services, err = newServices(cfg, repos, c.Storage, c.Revocations, recorder, c.logger)
	return err
}

func newRepositories(db *gorm.DB, log logger.Logger) (*Repositories, error) {
	var (
		repos = &Repositories{}
		err   error
	)

	if repos.Users, err = persistence.NewGormUserRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}
	if repos.Roles, err = persistence.NewGormRoleRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create role repository: %w", err)
	}
	if repos.Categories, err = persistence.NewGormCategoryRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create category repository: %w", err)
	}
	if repos.Videos, err = persistence.NewGormVideoRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create video repository: %w", err)
	}
	if repos.Comments, err = persistence.NewGormCommentRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create comment repository: %w", err)
	}
	if repos.Likes, err = persistence.NewGormLikeRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create like repository: %w", err)
	}
	if repos.Playlists, err = persistence.NewGormPlaylistRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create playlist repository: %w", err)
	}
	return repos, nil
}

func newServices(
	cfg *config.RestConfig,
	repos *Repositories,
	storage videos.VideoStorage,
	revocations users.TokenRevocationStore,
	recorder app.SeedRecorder,
	log logger.Logger,
) (*Services, error) {
	hasher, err := cryptography.NewBcryptHasher(0)
	if err != nil {
		return nil, fmt.Errorf("failed to create password hasher: %w", err)
	}
	issuer, err := cryptography.NewJwtTokenIssuer(&cfg.JwtToken, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create token issuer: %w", err)
	}

	s := &Services{}
	if s.SignInHelper, err = app.NewUserSignInHelper(issuer, &cfg.JwtToken, log); err != nil {
		return nil, fmt.Errorf("failed to create sign-in helper: %w", err)
	}
	if s.TokenAuthenticator, err = app.NewTokenAuthenticator(issuer, revocations); err != nil {
		return nil, fmt.Errorf("failed to create token authenticator: %w", err)
	}
	if s.Accounts, err = app.NewAccountService(repos.Users, hasher, s.SignInHelper, revocations, cfg.Password, log); err != nil {
		return nil, fmt.Errorf("failed to create account service: %w", err)
	}
	if s.AccountDetails, err = app.NewAccountDetailsService(repos.Users, repos.Videos, storage, hasher, cfg.Password, log); err != nil {
		return nil, fmt.Errorf("failed to create account details service: %w", err)
	}
	if s.Roles, err = app.NewRolesCreateService(repos.Roles, recorder, log); err != nil {
		return nil, fmt.Errorf("failed to create roles service: %w", err)
	}
	if s.DefaultAdmin, err = app.NewDefaultAdminService(repos.Users, hasher, cfg.Seed.Admin, recorder, log); err != nil {
		return nil, fmt.Errorf("failed to create default admin service: %w", err)
	}
	if s.Categories, err = app.NewVideoCategoryService(repos.Categories, log); err != nil {
		return nil, fmt.Errorf("failed to create category service: %w", err)
	}
	if s.Videos, err = app.NewVideosService(repos.Videos, repos.Categories, storage, cfg.Storage.MaxUploadSize, log); err != nil {
		return nil, fmt.Errorf("failed to create videos service: %w", err)
	}
	if s.Comments, err = app.NewCommentsService(repos.Comments, repos.Videos, log); err != nil {
		return nil, fmt.Errorf("failed to create comments service: %w", err)
	}
	if s.Likes, err = app.NewLikesService(repos.Likes, repos.Videos, log); err != nil {
		return nil, fmt.Errorf("failed to create likes service: %w", err)
	}
	if s.Playlists, err = app.NewPlaylistService(repos.Playlists, repos.Videos, log); err != nil {
		return nil, fmt.Errorf("failed to create playlist service: %w", err)
	}
	if s.DataSeed, err = app.NewDataSeedService(repos.Categories, repos.Videos, repos.Users, cfg.Seed.Admin, recorder, log); err != nil {
		return nil, fmt.Errorf("failed to create data seed service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return s, nil
}

// Seed ensures the built-in roles and the default administrator, then seeds
// sample data when withData is set.
func (c *Container) Seed(ctx context.Context, withData bool) error {
	if err := c.Services.Roles.EnsureRoles(ctx); err != nil {
		return fmt.Errorf("failed to ensure roles: %w", err)
	}

	created, err := c.Services.DefaultAdmin.EnsureDefaultAdmin(ctx)
	if err != nil {
		return fmt.Errorf("failed to ensure default admin: %w", err)
	}
	if created {
		c.logger.Info("Default administrator created")
	}

	if !withData {
		return nil
	}
	result, err := c.Services.DataSeed.SeedData(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed data: %w", err)
	}
	c.logger.Info("Seeded ", result.Categories, " categories and ", result.Videos, " videos")
	return nil
}

// RouteServices returns the services exposed over HTTP
func (c *Container) RouteServices() *v1.Services {
	return &v1.Services{
		Accounts:       c.Services.Accounts,
		AccountDetails: c.Services.AccountDetails,
		Categories:     c.Services.Categories,
		Videos:         c.Services.Videos,
		Comments:       c.Services.Comments,
		Likes:          c.Services.Likes,
		Playlists:      c.Services.Playlists,
		MaxUploadSize:  c.maxUploadSize,
	}
}

// Close releases the database connection and the revocation store's client
func (c *Container) Close() error {
	var errs []error
	if closer, ok := c.Revocations.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close token revocation store: %w", err))
		}
	}
	if err := persistence.CloseDB(c.DB); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
