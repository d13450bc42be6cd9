package app

import (
	"context"
	"fmt"
	"time"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/likes"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/videos"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/logger"

	"github.com/google/uuid"
)

// likesService implements the LikesService interface
type likesService struct {
	likeRepo  likes.LikeRepository
	videoRepo videos.VideoRepository
	logger    logger.Logger
}

// NewLikesService creates a new instance of LikesService
func NewLikesService(likeRepo likes.LikeRepository, videoRepo videos.VideoRepository, logger logger.Logger) (likes.LikesService, error) {
	return &likesService{
		likeRepo:  likeRepo,
		videoRepo: videoRepo,
		logger:    logger,
	}, nil
}

func (s *likesService) Like(ctx context.Context, userID, videoID string) (*likes.Summary, error) {
	if _, err := s.videoRepo.GetByID(ctx, videoID); err != nil {
		return nil, err
	}

	like := &likes.Like{
		ID:              uuid.NewString(),
		VideoID:         videoID,
		UserID:          userID,
		DateTimeCreated: time.Now().UTC(),
	}
	if _, err := s.likeRepo.Create(ctx, like); err != nil {
		return nil, err
	}
	return s.summary(ctx, videoID, userID)
}

func (s *likesService) Unlike(ctx context.Context, userID, videoID string) (*likes.Summary, error) {
	if _, err := s.videoRepo.GetByID(ctx, videoID); err != nil {
		return nil, err
	}
	if err := s.likeRepo.Delete(ctx, videoID, userID); err != nil {
		return nil, err
	}
	return s.summary(ctx, videoID, userID)
}

func (s *likesService) Summary(ctx context.Context, videoID, userID string) (*likes.Summary, error) {
	if _, err := s.videoRepo.GetByID(ctx, videoID); err != nil {
		return nil, err
	}
	return s.summary(ctx, videoID, userID)
}

func (s *likesService) ListLikedVideoIDs(ctx context.Context, userID string, limit, offset int) ([]string, error) {
	if limit < 0 || offset < 0 {
		return nil, fmt.Errorf("limit and offset must not be negative: %w", domain.ErrInvalidInput)
	}
	return s.likeRepo.ListVideoIDsByUser(ctx, userID, limit, offset)
}

func (s *likesService) summary(ctx context.Context, videoID, userID string) (*likes.Summary, error) {
	count, err := s.likeRepo.CountByVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}

	summary := &likes.Summary{VideoID: videoID, Count: count}
	if userID != "" {
		summary.LikedByMe, err = s.likeRepo.Exists(ctx, videoID, userID)
		if err != nil {
			return nil, err
		}
	}
	return summary, nil
}
