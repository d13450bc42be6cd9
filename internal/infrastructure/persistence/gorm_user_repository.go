package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/users"
	"github.com/Justyn-98/Video-upload-web-service/internal/infrastructure/persistence/models"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormUserRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormUserRepository creates a new GORM-based UserRepository implementation
func NewGormUserRepository(db *gorm.DB, logger logger.Logger) (users.UserRepository, error) {
	return &gormUserRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormUserRepository) Create(ctx context.Context, user *users.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.UserModel{}
	model.FromDomain(user)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			return translateError(err, "create", "user", user.ID)
		}
		return linkRoles(tx, user.ID, user.Roles)
	})
	if err != nil {
		return err
	}

	r.logger.Info("Created user with id ", user.ID)
	return nil
}

func (r *gormUserRepository) GetByID(ctx context.Context, userID string) (*users.User, error) {
	return r.first(r.db.WithContext(ctx), "id = ?", userID)
}

func (r *gormUserRepository) GetByUserName(ctx context.Context, userName string) (*users.User, error) {
	return r.first(r.db.WithContext(ctx), "normalized_user_name = ?", users.NormalizeName(userName))
}

func (r *gormUserRepository) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	return r.first(r.db.WithContext(ctx), "normalized_email = ?", users.NormalizeName(email))
}

func (r *gormUserRepository) GetByLogin(ctx context.Context, login string) (*users.User, error) {
	normalized := users.NormalizeName(login)
	return r.first(r.db.WithContext(ctx), "normalized_user_name = ? OR normalized_email = ?", normalized, normalized)
}

func (r *gormUserRepository) first(db *gorm.DB, condition string, args ...interface{}) (*users.User, error) {
	var model models.UserModel
	if err := db.Where(condition, args...).First(&model).Error; err != nil {
		return nil, translateError(err, "fetch", "user", fmt.Sprint(args[0]))
	}

	roles, err := loadRoles(db, []string{model.ID})
	if err != nil {
		return nil, err
	}
	return model.ToDomain(roles[model.ID]), nil
}

func (r *gormUserRepository) List(ctx context.Context, query *users.UserQuery) ([]*users.User, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	db := r.db.WithContext(ctx)
	var modelList []*models.UserModel
	dbQuery := db.Model(&models.UserModel{})

	if query.UserName != "" {
		dbQuery = dbQuery.Where(likeEscaped("normalized_user_name", "?"), containsPattern(users.NormalizeName(query.UserName)))
	}
	if query.Email != "" {
		dbQuery = dbQuery.Where(likeEscaped("normalized_email", "?"), containsPattern(users.NormalizeName(query.Email)))
	}
	if query.Role != "" {
		dbQuery = dbQuery.Where("id IN (?)", db.Table("user_roles").
			Select("user_roles.user_id").
			Joins("JOIN roles ON roles.id = user_roles.role_id").
			Where("roles.normalized_name = ?", users.NormalizeName(query.Role)))
	}

	dbQuery = dbQuery.Order(orderClause(query.SortBy, query.SortOrder, "date_time_created"))

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}

	ids := make([]string, len(modelList))
	for i, model := range modelList {
		ids[i] = model.ID
	}
	roles, err := loadRoles(db, ids)
	if err != nil {
		return nil, err
	}

	domainList := make([]*users.User, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain(roles[model.ID])
	}
	return domainList, nil
}

func (r *gormUserRepository) UpdateByID(ctx context.Context, user *users.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.UserModel{}
	model.FromDomain(user)

	result := r.db.WithContext(ctx).Model(&models.UserModel{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
		"user_name":            model.UserName,
		"normalized_user_name": model.NormalizedUserName,
		"email":                model.Email,
		"normalized_email":     model.NormalizedEmail,
		"password_hash":        model.PasswordHash,
		"display_name":         model.DisplayName,
		"bio":                  model.Bio,
	})
	if result.Error != nil {
		return translateError(result.Error, "update", "user", user.ID)
	}
	if result.RowsAffected == 0 {
		return notFound("user", user.ID)
	}

	r.logger.Info("Updated user with id ", user.ID)
	return nil
}

func (r *gormUserRepository) SetRoles(ctx context.Context, userID string, roles []string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.UserModel{}).Where("id = ?", userID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to fetch user: %w", err)
		}
		if count == 0 {
			return notFound("user", userID)
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.UserRoleModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear roles: %w", err)
		}
		return linkRoles(tx, userID, roles)
	})
	if err != nil {
		return err
	}

	r.logger.Info("Set roles of user with id ", userID, ": ", strings.Join(roles, ","))
	return nil
}

func (r *gormUserRepository) DeleteByID(ctx context.Context, userID string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", userID).Delete(&models.UserModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete user: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return notFound("user", userID)
		}

		var videoIDs []string
		if err := tx.Model(&models.VideoModel{}).Where("user_id = ?", userID).Pluck("id", &videoIDs).Error; err != nil {
			return fmt.Errorf("failed to fetch videos of user: %w", err)
		}
		if err := deleteVideos(tx, videoIDs); err != nil {
			return err
		}

		var playlistIDs []string
		if err := tx.Model(&models.PlaylistModel{}).Where("user_id = ?", userID).Pluck("id", &playlistIDs).Error; err != nil {
			return fmt.Errorf("failed to fetch playlists of user: %w", err)
		}
		if err := deletePlaylists(tx, playlistIDs); err != nil {
			return err
		}

		for _, model := range []interface{}{&models.UserRoleModel{}, &models.CommentModel{}, &models.LikeModel{}} {
			if err := tx.Where("user_id = ?", userID).Delete(model).Error; err != nil {
				return fmt.Errorf("failed to delete records of user: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Deleted user with id ", userID)
	return nil
}

// linkRoles inserts user_roles rows for the named roles, which must exist
func linkRoles(tx *gorm.DB, userID string, roles []string) error {
	for _, name := range uniqueRoles(roles) {
		var role models.RoleModel
		if err := tx.Where("normalized_name = ?", users.NormalizeName(name)).First(&role).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("role %s does not exist: %w", name, domain.ErrInvalidInput)
			}
			return fmt.Errorf("failed to fetch role: %w", err)
		}
		if err := tx.Create(&models.UserRoleModel{UserID: userID, RoleID: role.ID}).Error; err != nil {
			return translateError(err, "link", "role", name)
		}
	}
	return nil
}

func uniqueRoles(roles []string) []string {
	seen := make(map[string]bool, len(roles))
	result := make([]string, 0, len(roles))
	for _, role := range roles {
		key := users.NormalizeName(role)
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, role)
	}
	return result
}

// loadRoles returns role names per user ID, sorted by name
func loadRoles(db *gorm.DB, userIDs []string) (map[string][]string, error) {
	result := make(map[string][]string, len(userIDs))
	if len(userIDs) == 0 {
		return result, nil
	}

	var rows []struct {
		UserID string
		Name   string
	}
	err := db.Table("user_roles").
		Select("user_roles.user_id AS user_id, roles.name AS name").
		Joins("JOIN roles ON roles.id = user_roles.role_id").
		Where("user_roles.user_id IN ?", userIDs).
		Order("roles.name").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch roles: %w", err)
	}

	for _, row := range rows {
		result[row.UserID] = append(result[row.UserID], row.Name)
	}
	return result, nil
}
