package persistence

import (
	"context"
	"fmt"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain/users"
	"github.com/Justyn-98/Video-upload-web-service/internal/infrastructure/persistence/models"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormRoleRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormRoleRepository creates a new GORM-based RoleRepository implementation
func NewGormRoleRepository(db *gorm.DB, logger logger.Logger) (users.RoleRepository, error) {
	return &gormRoleRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormRoleRepository) Create(ctx context.Context, role *users.Role) error {
	if err := role.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.RoleModel{}
	model.FromDomain(role)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err, "create", "role", role.ID)
	}

	r.logger.Info("Created role ", role.Name)
	return nil
}

func (r *gormRoleRepository) GetByName(ctx context.Context, name string) (*users.Role, error) {
	var model models.RoleModel
	if err := r.db.WithContext(ctx).Where("normalized_name = ?", users.NormalizeName(name)).First(&model).Error; err != nil {
		return nil, translateError(err, "fetch", "role", name)
	}
	return model.ToDomain(), nil
}

func (r *gormRoleRepository) List(ctx context.Context) ([]*users.Role, error) {
	var modelList []*models.RoleModel
	if err := r.db.WithContext(ctx).Order("name").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch roles: %w", err)
	}

	domainList := make([]*users.Role, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}
