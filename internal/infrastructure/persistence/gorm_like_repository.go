package persistence

import (
	"context"
	"fmt"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain/likes"
	"github.com/Justyn-98/Video-upload-web-service/internal/infrastructure/persistence/models"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormLikeRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormLikeRepository creates a new GORM-based LikeRepository implementation
func NewGormLikeRepository(db *gorm.DB, logger logger.Logger) (likes.LikeRepository, error) {
	return &gormLikeRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormLikeRepository) Create(ctx context.Context, like *likes.Like) (bool, error) {
	if err := like.Validate(); err != nil {
		return false, fmt.Errorf("validation error: %w", err)
	}

	model := &models.LikeModel{}
	model.FromDomain(like)

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "video_id"}, {Name: "user_id"}},
		DoNothing: true,
	}).Create(model)
	if result.Error != nil {
		return false, fmt.Errorf("failed to create like: %w", result.Error)
	}

	if result.RowsAffected > 0 {
		r.logger.Debug("User ", like.UserID, " liked video ", like.VideoID)
	}
	return result.RowsAffected > 0, nil
}

func (r *gormLikeRepository) Delete(ctx context.Context, videoID, userID string) error {
	if err := r.db.WithContext(ctx).Where("video_id = ? AND user_id = ?", videoID, userID).Delete(&models.LikeModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	return nil
}

func (r *gormLikeRepository) Exists(ctx context.Context, videoID, userID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.LikeModel{}).Where("video_id = ? AND user_id = ?", videoID, userID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to fetch like: %w", err)
	}
	return count > 0, nil
}

func (r *gormLikeRepository) CountByVideo(ctx context.Context, videoID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.LikeModel{}).Where("video_id = ?", videoID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}

func (r *gormLikeRepository) ListVideoIDsByUser(ctx context.Context, userID string, limit, offset int) ([]string, error) {
	var videoIDs []string
	dbQuery := r.db.WithContext(ctx).Model(&models.LikeModel{}).Where("user_id = ?", userID).Order("date_time_created desc")
	if limit > 0 {
		dbQuery = dbQuery.Limit(limit)
	}
	if offset > 0 {
		dbQuery = dbQuery.Offset(offset)
	}

	if err := dbQuery.Pluck("video_id", &videoIDs).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch liked videos: %w", err)
	}
	if videoIDs == nil {
		videoIDs = []string{}
	}
	return videoIDs, nil
}
