package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
	"time"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/categories"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/users"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/videos"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/logger"

	"github.com/google/uuid"
)

const defaultContentType = "application/octet-stream"

// videosService implements the VideosService interface
type videosService struct {
	videoRepo     videos.VideoRepository
	categoryRepo  categories.CategoryRepository
	storage       videos.VideoStorage
	maxUploadSize int64
	logger        logger.Logger
}

// NewVideosService creates a new instance of VideosService. A maxUploadSize of zero disables the size limit.
func NewVideosService(
	videoRepo videos.VideoRepository,
	categoryRepo categories.CategoryRepository,
	storage videos.VideoStorage,
	maxUploadSize int64,
	logger logger.Logger,
) (videos.VideosService, error) {
	if maxUploadSize < 0 {
		return nil, fmt.Errorf("max upload size must not be negative")
	}

	return &videosService{
		videoRepo:     videoRepo,
		categoryRepo:  categoryRepo,
		storage:       storage,
		maxUploadSize: maxUploadSize,
		logger:        logger,
	}, nil
}

func (s *videosService) Create(ctx context.Context, userID string, input *videos.VideoInput) (*videos.Video, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.ensureCategory(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	video := &videos.Video{
		ID:              uuid.NewString(),
		Title:           strings.TrimSpace(input.Title),
		Description:     input.Description,
		URL:             input.URL,
		ThumbnailURL:    input.ThumbnailURL,
		CategoryID:      input.CategoryID,
		UserID:          userID,
		DateTimeCreated: now,
		DateTimeUpdated: now,
	}
	if err := s.videoRepo.Create(ctx, video); err != nil {
		return nil, err
	}
	return video, nil
}

func (s *videosService) List(ctx context.Context, query *videos.VideoQuery) ([]*videos.Video, error) {
	if query == nil {
		query = videos.NewVideoQuery()
	}
	return s.videoRepo.List(ctx, query)
}

func (s *videosService) GetByID(ctx context.Context, videoID string) (*videos.Video, error) {
	return s.videoRepo.GetByID(ctx, videoID)
}

func (s *videosService) RecordView(ctx context.Context, videoID string) (*videos.Video, error) {
	if err := s.videoRepo.IncrementViews(ctx, videoID); err != nil {
		return nil, err
	}
	return s.videoRepo.GetByID(ctx, videoID)
}

func (s *videosService) Update(ctx context.Context, principal *users.Principal, videoID string, input *videos.VideoInput) (*videos.Video, error) {
	video, err := s.modifiable(ctx, principal, videoID)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.CategoryID != video.CategoryID {
		if err := s.ensureCategory(ctx, input.CategoryID); err != nil {
			return nil, err
		}
	}

	video.Title = strings.TrimSpace(input.Title)
	video.Description = input.Description
	video.URL = input.URL
	video.ThumbnailURL = input.ThumbnailURL
	video.CategoryID = input.CategoryID
	video.DateTimeUpdated = time.Now().UTC()

	if err := s.videoRepo.UpdateByID(ctx, video); err != nil {
		return nil, err
	}
	return video, nil
}

// DeleteByID removes the video, its dependent records and its stored file
func (s *videosService) DeleteByID(ctx context.Context, principal *users.Principal, videoID string) error {
	video, err := s.modifiable(ctx, principal, videoID)
	if err != nil {
		return err
	}

	if err := s.videoRepo.DeleteByID(ctx, videoID); err != nil {
		return err
	}

	if video.HasFile() {
		if err := s.storage.Delete(ctx, *video.StorageKey); err != nil {
			s.logger.Warn("Failed to delete file of video ", videoID, ": ", err)
		}
	}
	return nil
}

// UploadFile stores the file and replaces a previously uploaded one
func (s *videosService) UploadFile(ctx context.Context, principal *users.Principal, videoID string, file *multipart.FileHeader) (*videos.Video, error) {
	video, err := s.modifiable(ctx, principal, videoID)
	if err != nil {
		return nil, err
	}
	if file == nil || file.Filename == "" {
		return nil, fmt.Errorf("no file provided: %w", domain.ErrInvalidInput)
	}
	if s.maxUploadSize > 0 && file.Size > s.maxUploadSize {
		return nil, fmt.Errorf("file exceeds %d bytes: %w", s.maxUploadSize, domain.ErrInvalidInput)
	}

	data, err := readFile(file)
	if err != nil {
		return nil, err
	}

	key, err := s.storage.Upload(ctx, videoID, file.Filename, data)
	if err != nil {
		return nil, err
	}

	var previousKey string
	if video.HasFile() {
		previousKey = *video.StorageKey
	}

	fileName := file.Filename
	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = defaultContentType
	}
	video.FileName = &fileName
	video.FileSize = int64(len(data))
	video.ContentType = &contentType
	video.StorageKey = &key
	video.DateTimeUpdated = time.Now().UTC()

	if err := s.videoRepo.UpdateByID(ctx, video); err != nil {
		if deleteErr := s.storage.Delete(ctx, key); deleteErr != nil {
			s.logger.Warn("Failed to remove orphaned file ", key, ": ", deleteErr)
		}
		return nil, err
	}

	if previousKey != "" && previousKey != key {
		if err := s.storage.Delete(ctx, previousKey); err != nil {
			s.logger.Warn("Failed to delete replaced file ", previousKey, ": ", err)
		}
	}

	s.logger.Info("Uploaded file ", fileName, " for video ", videoID)
	return video, nil
}

func (s *videosService) DownloadFile(ctx context.Context, videoID string) (*videos.VideoFile, error) {
	video, err := s.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if !video.HasFile() {
		return nil, fmt.Errorf("video %s has no file: %w", videoID, domain.ErrNotFound)
	}

	data, err := s.storage.Download(ctx, *video.StorageKey)
	if err != nil {
		return nil, err
	}

	file := &videos.VideoFile{
		Name:        *video.StorageKey,
		ContentType: defaultContentType,
		Size:        int64(len(data)),
		Data:        data,
	}
	if video.FileName != nil {
		file.Name = *video.FileName
	}
	if video.ContentType != nil {
		file.ContentType = *video.ContentType
	}
	return file, nil
}

// modifiable loads the video and checks that principal owns it or is an administrator
func (s *videosService) modifiable(ctx context.Context, principal *users.Principal, videoID string) (*videos.Video, error) {
	video, err := s.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if !principal.CanModify(video.UserID) {
		return nil, fmt.Errorf("video %s belongs to another user: %w", videoID, domain.ErrForbidden)
	}
	return video, nil
}

func (s *videosService) ensureCategory(ctx context.Context, categoryID string) error {
	_, err := s.categoryRepo.GetByID(ctx, categoryID)
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("category %s does not exist: %w", categoryID, domain.ErrInvalidInput)
	}
	return err
}

func readFile(file *multipart.FileHeader) ([]byte, error) {
	f, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	return data, nil
}
