package persistence

import (
	"context"
	"fmt"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain/comments"
	"github.com/Justyn-98/Video-upload-web-service/internal/infrastructure/persistence/models"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormCommentRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCommentRepository creates a new GORM-based CommentRepository implementation
func NewGormCommentRepository(db *gorm.DB, logger logger.Logger) (comments.CommentRepository, error) {
	return &gormCommentRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormCommentRepository) Create(ctx context.Context, comment *comments.Comment) error {
	if err := comment.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CommentModel{}
	model.FromDomain(comment)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err, "create", "comment", comment.ID)
	}

	r.logger.Info("Created comment with id ", comment.ID)
	return nil
}

func (r *gormCommentRepository) ListByVideo(ctx context.Context, videoID string, limit, offset int) ([]*comments.Comment, error) {
	var modelList []*models.CommentModel
	dbQuery := r.db.WithContext(ctx).Where("video_id = ?", videoID).Order("date_time_created desc")
	if limit > 0 {
		dbQuery = dbQuery.Limit(limit)
	}
	if offset > 0 {
		dbQuery = dbQuery.Offset(offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch comments: %w", err)
	}

	domainList := make([]*comments.Comment, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormCommentRepository) GetByID(ctx context.Context, commentID string) (*comments.Comment, error) {
	var model models.CommentModel
	if err := r.db.WithContext(ctx).Where("id = ?", commentID).First(&model).Error; err != nil {
		return nil, translateError(err, "fetch", "comment", commentID)
	}
	return model.ToDomain(), nil
}

func (r *gormCommentRepository) UpdateByID(ctx context.Context, comment *comments.Comment) error {
	if err := comment.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.CommentModel{}).Where("id = ?", comment.ID).Updates(map[string]interface{}{
		"content":           comment.Content,
		"date_time_updated": comment.DateTimeUpdated,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound("comment", comment.ID)
	}

	r.logger.Info("Updated comment with id ", comment.ID)
	return nil
}

func (r *gormCommentRepository) DeleteByID(ctx context.Context, commentID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", commentID).Delete(&models.CommentModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound("comment", commentID)
	}

	r.logger.Info("Deleted comment with id ", commentID)
	return nil
}
