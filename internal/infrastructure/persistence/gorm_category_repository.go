package persistence

import (
	"context"
	"fmt"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain/categories"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/users"
	"github.com/Justyn-98/Video-upload-web-service/internal/infrastructure/persistence/models"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormCategoryRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCategoryRepository creates a new GORM-based CategoryRepository implementation
func NewGormCategoryRepository(db *gorm.DB, logger logger.Logger) (categories.CategoryRepository, error) {
	return &gormCategoryRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormCategoryRepository) Create(ctx context.Context, category *categories.Category) error {
	if err := category.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CategoryModel{}
	model.FromDomain(category)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err, "create", "category", category.ID)
	}

	r.logger.Info("Created category with id ", category.ID)
	return nil
}

func (r *gormCategoryRepository) List(ctx context.Context) ([]*categories.Category, error) {
	var modelList []*models.CategoryModel
	if err := r.db.WithContext(ctx).Order("name").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}

	domainList := make([]*categories.Category, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormCategoryRepository) GetByID(ctx context.Context, categoryID string) (*categories.Category, error) {
	var model models.CategoryModel
	if err := r.db.WithContext(ctx).Where("id = ?", categoryID).First(&model).Error; err != nil {
		return nil, translateError(err, "fetch", "category", categoryID)
	}
	return model.ToDomain(), nil
}

func (r *gormCategoryRepository) GetByName(ctx context.Context, name string) (*categories.Category, error) {
	var model models.CategoryModel
	if err := r.db.WithContext(ctx).Where("normalized_name = ?", users.NormalizeName(name)).First(&model).Error; err != nil {
		return nil, translateError(err, "fetch", "category", name)
	}
	return model.ToDomain(), nil
}

func (r *gormCategoryRepository) UpdateByID(ctx context.Context, category *categories.Category) error {
	if err := category.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CategoryModel{}
	model.FromDomain(category)

	result := r.db.WithContext(ctx).Model(&models.CategoryModel{}).Where("id = ?", category.ID).Updates(map[string]interface{}{
		"name":            model.Name,
		"normalized_name": model.NormalizedName,
		"description":     model.Description,
	})
	if result.Error != nil {
		return translateError(result.Error, "update", "category", category.ID)
	}
	if result.RowsAffected == 0 {
		return notFound("category", category.ID)
	}

	r.logger.Info("Updated category with id ", category.ID)
	return nil
}

func (r *gormCategoryRepository) DeleteByID(ctx context.Context, categoryID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", categoryID).Delete(&models.CategoryModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound("category", categoryID)
	}

	r.logger.Info("Deleted category with id ", categoryID)
	return nil
}

func (r *gormCategoryRepository) CountVideos(ctx context.Context, categoryID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.VideoModel{}).Where("category_id = ?", categoryID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count videos of category: %w", err)
	}
	return count, nil
}
