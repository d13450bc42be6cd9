package app

import (
	"context"
	"fmt"
	"time"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain/categories"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/seed"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/users"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/videos"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/config"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/logger"

	"github.com/google/uuid"
)

// sampleVideo is a seeded video referencing its category by name
type sampleVideo struct {
	category    string
	title       string
	description string
	url         string
}

var sampleVideos = []sampleVideo{
	{"Music", "Acoustic session in the studio", "An unplugged set recorded live.", "https://videos.example.com/acoustic-session"},
	{"Gaming", "Speedrun world record attempt", "Full run with commentary.", "https://videos.example.com/speedrun-attempt"},
	{"Education", "Introduction to databases", "Tables, keys and queries explained.", "https://videos.example.com/intro-databases"},
	{"Sports", "Season highlights", "The best moments of the season.", "https://videos.example.com/season-highlights"},
	{"News", "Weekly tech roundup", "What happened in tech this week.", "https://videos.example.com/tech-roundup"},
	{"Entertainment", "Stand-up special", "An evening of comedy.", "https://videos.example.com/stand-up-special"},
}

// dataSeedService implements the DataSeedService interface
type dataSeedService struct {
	categoryRepo categories.CategoryRepository
	videoRepo    videos.VideoRepository
	userRepo     users.UserRepository
	admin        config.AdminSettings
	recorder     SeedRecorder
	logger       logger.Logger
}

// NewDataSeedService creates a new instance of DataSeedService. recorder may be nil.
func NewDataSeedService(
	categoryRepo categories.CategoryRepository,
	videoRepo videos.VideoRepository,
	userRepo users.UserRepository,
	admin config.AdminSettings,
	recorder SeedRecorder,
	logger logger.Logger,
) (seed.DataSeedService, error) {
	return &dataSeedService{
		categoryRepo: categoryRepo,
		videoRepo:    videoRepo,
		userRepo:     userRepo,
		admin:        admin,
		recorder:     seedRecorderOrNoop(recorder),
		logger:       logger,
	}, nil
}

// SeedData ensures the default categories and, on an empty video table, adds sample videos owned by the administrator
func (s *dataSeedService) SeedData(ctx context.Context) (*seed.Result, error) {
	result := &seed.Result{}

	categoryIDs := make(map[string]string)
	for _, input := range categories.DefaultCategories() {
		existing, err := s.categoryRepo.GetByName(ctx, input.Name)
		exists, err := found(err)
		if err != nil {
			return nil, err
		}
		if exists {
			categoryIDs[input.Name] = existing.ID
			continue
		}

		category := &categories.Category{
			ID:          uuid.NewString(),
			Name:        input.Name,
			Description: input.Description,
		}
		if err := s.categoryRepo.Create(ctx, category); err != nil {
			return nil, fmt.Errorf("failed to seed category %s: %w", input.Name, err)
		}
		categoryIDs[input.Name] = category.ID
		result.Categories++
		s.recorder.SeedRecordCreated("category")
	}

	count, err := s.videoRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		s.logger.Info("Seeded ", result.Categories, " categories, videos already present")
		return result, nil
	}

	admin, err := s.userRepo.GetByUserName(ctx, s.admin.UserName)
	if err != nil {
		return nil, fmt.Errorf("default administrator is required to own sample videos: %w", err)
	}

	now := time.Now().UTC()
	for i, sample := range sampleVideos {
		created := now.Add(time.Duration(i) * time.Second)
		video := &videos.Video{
			ID:              uuid.NewString(),
			Title:           sample.title,
			Description:     sample.description,
			URL:             sample.url,
			CategoryID:      categoryIDs[sample.category],
			UserID:          admin.ID,
			DateTimeCreated: created,
			DateTimeUpdated: created,
		}
		if err := s.videoRepo.Create(ctx, video); err != nil {
			return nil, fmt.Errorf("failed to seed video %s: %w", sample.title, err)
		}
		result.Videos++
		s.recorder.SeedRecordCreated("video")
	}

	s.logger.Info("Seeded ", result.Categories, " categories and ", result.Videos, " videos")
	return result, nil
}
