package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/comments"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/users"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/videos"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/logger"

	"github.com/google/uuid"
)

// commentsService implements the CommentsService interface
type commentsService struct {
	commentRepo comments.CommentRepository
	videoRepo   videos.VideoRepository
	logger      logger.Logger
}

// NewCommentsService creates a new instance of CommentsService
func NewCommentsService(commentRepo comments.CommentRepository, videoRepo videos.VideoRepository, logger logger.Logger) (comments.CommentsService, error) {
	return &commentsService{
		commentRepo: commentRepo,
		videoRepo:   videoRepo,
		logger:      logger,
	}, nil
}

func (s *commentsService) Create(ctx context.Context, userID, videoID string, input *comments.CommentInput) (*comments.Comment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.videoRepo.GetByID(ctx, videoID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	comment := &comments.Comment{
		ID:              uuid.NewString(),
		VideoID:         videoID,
		UserID:          userID,
		Content:         strings.TrimSpace(input.Content),
		DateTimeCreated: now,
		DateTimeUpdated: now,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentsService) ListByVideo(ctx context.Context, videoID string, limit, offset int) ([]*comments.Comment, error) {
	if limit < 0 || offset < 0 {
		return nil, fmt.Errorf("limit and offset must not be negative: %w", domain.ErrInvalidInput)
	}
	if _, err := s.videoRepo.GetByID(ctx, videoID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByVideo(ctx, videoID, limit, offset)
}

func (s *commentsService) GetByID(ctx context.Context, commentID string) (*comments.Comment, error) {
	return s.commentRepo.GetByID(ctx, commentID)
}

// Update is reserved to the author, administrators included
func (s *commentsService) Update(ctx context.Context, principal *users.Principal, commentID string, input *comments.CommentInput) (*comments.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if principal == nil || principal.UserID != comment.UserID {
		return nil, fmt.Errorf("only the author can edit comment %s: %w", commentID, domain.ErrForbidden)
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	comment.Content = strings.TrimSpace(input.Content)
	comment.DateTimeUpdated = time.Now().UTC()
	if err := s.commentRepo.UpdateByID(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteByID allows the author, the owner of the video and administrators
func (s *commentsService) DeleteByID(ctx context.Context, principal *users.Principal, commentID string) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	if !principal.CanModify(comment.UserID) {
		video, err := s.videoRepo.GetByID(ctx, comment.VideoID)
		if err != nil {
			return err
		}
		if !principal.CanModify(video.UserID) {
			return fmt.Errorf("comment %s belongs to another user: %w", commentID, domain.ErrForbidden)
		}
	}

	return s.commentRepo.DeleteByID(ctx, commentID)
}
