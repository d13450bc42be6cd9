package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/categories"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/logger"

	"github.com/google/uuid"
)

// videoCategoryService implements the VideoCategoryService interface
type videoCategoryService struct {
	categoryRepo categories.CategoryRepository
	logger       logger.Logger
}

// NewVideoCategoryService creates a new instance of VideoCategoryService
func NewVideoCategoryService(categoryRepo categories.CategoryRepository, logger logger.Logger) (categories.VideoCategoryService, error) {
	return &videoCategoryService{
		categoryRepo: categoryRepo,
		logger:       logger,
	}, nil
}

func (s *videoCategoryService) Create(ctx context.Context, input *categories.CategoryInput) (*categories.Category, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)
	if err := s.ensureNameFree(ctx, name, ""); err != nil {
		return nil, err
	}

	category := &categories.Category{
		ID:          uuid.NewString(),
		Name:        name,
		Description: input.Description,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *videoCategoryService) List(ctx context.Context) ([]*categories.Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *videoCategoryService) GetByID(ctx context.Context, categoryID string) (*categories.Category, error) {
	return s.categoryRepo.GetByID(ctx, categoryID)
}

func (s *videoCategoryService) Update(ctx context.Context, categoryID string, input *categories.CategoryInput) (*categories.Category, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if err := s.ensureNameFree(ctx, name, category.ID); err != nil {
		return nil, err
	}
	category.Name = name
	category.Description = input.Description

	if err := s.categoryRepo.UpdateByID(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteByID refuses to delete a category still referenced by videos
func (s *videoCategoryService) DeleteByID(ctx context.Context, categoryID string) error {
	if _, err := s.categoryRepo.GetByID(ctx, categoryID); err != nil {
		return err
	}

	count, err := s.categoryRepo.CountVideos(ctx, categoryID)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("category %s is used by %d videos: %w", categoryID, count, domain.ErrConflict)
	}

	return s.categoryRepo.DeleteByID(ctx, categoryID)
}

// ensureNameFree fails with domain.ErrConflict when another category, not exceptID, has name
func (s *videoCategoryService) ensureNameFree(ctx context.Context, name, exceptID string) error {
	existing, err := s.categoryRepo.GetByName(ctx, name)
	exists, err := found(err)
	if err != nil {
		return err
	}
	if exists && existing.ID != exceptID {
		return fmt.Errorf("category %s already exists: %w", name, domain.ErrConflict)
	}
	return nil
}
