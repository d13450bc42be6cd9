package persistence

import (
	"context"
	"fmt"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain/videos"
	"github.com/Justyn-98/Video-upload-web-service/internal/infrastructure/persistence/models"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormVideoRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormVideoRepository creates a new GORM-based VideoRepository implementation
func NewGormVideoRepository(db *gorm.DB, logger logger.Logger) (videos.VideoRepository, error) {
	return &gormVideoRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormVideoRepository) Create(ctx context.Context, video *videos.Video) error {
	if err := video.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.VideoModel{}
	model.FromDomain(video)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err, "create", "video", video.ID)
	}

	r.logger.Info("Created video with id ", video.ID)
	return nil
}

func (r *gormVideoRepository) List(ctx context.Context, query *videos.VideoQuery) ([]*videos.Video, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.VideoModel
	dbQuery := r.db.WithContext(ctx).Model(&models.VideoModel{})

	if query.Title != "" {
		dbQuery = dbQuery.Where(likeEscaped("LOWER(title)", "LOWER(?)"), containsPattern(query.Title))
	}
	if query.CategoryID != "" {
		dbQuery = dbQuery.Where("category_id = ?", query.CategoryID)
	}
	if query.UserID != "" {
		dbQuery = dbQuery.Where("user_id = ?", query.UserID)
	}

	dbQuery = dbQuery.Order(orderClause(query.SortBy, query.SortOrder, "date_time_created"))

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch videos: %w", err)
	}

	domainList := make([]*videos.Video, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormVideoRepository) GetByID(ctx context.Context, videoID string) (*videos.Video, error) {
	var model models.VideoModel
	if err := r.db.WithContext(ctx).Where("id = ?", videoID).First(&model).Error; err != nil {
		return nil, translateError(err, "fetch", "video", videoID)
	}
	return model.ToDomain(), nil
}

func (r *gormVideoRepository) UpdateByID(ctx context.Context, video *videos.Video) error {
	if err := video.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.VideoModel{}
	model.FromDomain(video)

	// Views are only changed through IncrementViews
	result := r.db.WithContext(ctx).Model(&models.VideoModel{}).Where("id = ?", video.ID).Updates(map[string]interface{}{
		"title":             model.Title,
		"description":       model.Description,
		"url":               model.URL,
		"thumbnail_url":     model.ThumbnailURL,
		"category_id":       model.CategoryID,
		"date_time_updated": model.DateTimeUpdated,
		"file_name":         model.FileName,
		"file_size":         model.FileSize,
		"content_type":      model.ContentType,
		"storage_key":       model.StorageKey,
	})
	if result.Error != nil {
		return translateError(result.Error, "update", "video", video.ID)
	}
	if result.RowsAffected == 0 {
		return notFound("video", video.ID)
	}

	r.logger.Info("Updated video with id ", video.ID)
	return nil
}

func (r *gormVideoRepository) IncrementViews(ctx context.Context, videoID string) error {
	result := r.db.WithContext(ctx).Model(&models.VideoModel{}).Where("id = ?", videoID).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	if result.Error != nil {
		return fmt.Errorf("failed to increment views: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound("video", videoID)
	}
	return nil
}

func (r *gormVideoRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.VideoModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count videos: %w", err)
	}
	return count, nil
}

func (r *gormVideoRepository) DeleteByID(ctx context.Context, videoID string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.VideoModel{}).Where("id = ?", videoID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to fetch video: %w", err)
		}
		if count == 0 {
			return notFound("video", videoID)
		}
		return deleteVideos(tx, []string{videoID})
	})
	if err != nil {
		return err
	}

	r.logger.Info("Deleted video with id ", videoID)
	return nil
}

// deleteVideos removes videos with their comments, likes and playlist entries
func deleteVideos(tx *gorm.DB, videoIDs []string) error {
	if len(videoIDs) == 0 {
		return nil
	}
	for _, model := range []interface{}{&models.CommentModel{}, &models.LikeModel{}, &models.PlaylistVideoModel{}} {
		if err := tx.Where("video_id IN ?", videoIDs).Delete(model).Error; err != nil {
			return fmt.Errorf("failed to delete records of videos: %w", err)
		}
	}
	if err := tx.Where("id IN ?", videoIDs).Delete(&models.VideoModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete videos: %w", err)
	}
	return nil
}
