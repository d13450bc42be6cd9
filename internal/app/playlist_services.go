package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/playlists"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/users"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/videos"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/logger"

	"github.com/google/uuid"
)

// playlistService implements the PlaylistService interface
type playlistService struct {
	playlistRepo playlists.PlaylistRepository
	videoRepo    videos.VideoRepository
	logger       logger.Logger
}

// NewPlaylistService creates a new instance of PlaylistService
func NewPlaylistService(playlistRepo playlists.PlaylistRepository, videoRepo videos.VideoRepository, logger logger.Logger) (playlists.PlaylistService, error) {
	return &playlistService{
		playlistRepo: playlistRepo,
		videoRepo:    videoRepo,
		logger:       logger,
	}, nil
}

func (s *playlistService) Create(ctx context.Context, userID string, input *playlists.PlaylistInput) (*playlists.Playlist, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	playlist := &playlists.Playlist{
		ID:              uuid.NewString(),
		Name:            strings.TrimSpace(input.Name),
		Description:     input.Description,
		UserID:          userID,
		DateTimeCreated: time.Now().UTC(),
		VideoIDs:        []string{},
	}
	if err := s.playlistRepo.Create(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

func (s *playlistService) List(ctx context.Context, query *playlists.PlaylistQuery) ([]*playlists.Playlist, error) {
	if query == nil {
		query = &playlists.PlaylistQuery{}
	}
	return s.playlistRepo.List(ctx, query)
}

func (s *playlistService) GetByID(ctx context.Context, playlistID string) (*playlists.Playlist, error) {
	return s.playlistRepo.GetByID(ctx, playlistID)
}

func (s *playlistService) Update(ctx context.Context, principal *users.Principal, playlistID string, input *playlists.PlaylistInput) (*playlists.Playlist, error) {
	playlist, err := s.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if !principal.CanModify(playlist.UserID) {
		return nil, fmt.Errorf("playlist %s belongs to another user: %w", playlistID, domain.ErrForbidden)
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	playlist.Name = strings.TrimSpace(input.Name)
	playlist.Description = input.Description
	if err := s.playlistRepo.UpdateByID(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

func (s *playlistService) DeleteByID(ctx context.Context, principal *users.Principal, playlistID string) error {
	playlist, err := s.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return err
	}
	if !principal.CanModify(playlist.UserID) {
		return fmt.Errorf("playlist %s belongs to another user: %w", playlistID, domain.ErrForbidden)
	}
	return s.playlistRepo.DeleteByID(ctx, playlistID)
}

// AddVideo appends the video at the end of the playlist
func (s *playlistService) AddVideo(ctx context.Context, principal *users.Principal, playlistID, videoID string) (*playlists.Playlist, error) {
	playlist, err := s.owned(ctx, principal, playlistID)
	if err != nil {
		return nil, err
	}
	if _, err := s.videoRepo.GetByID(ctx, videoID); err != nil {
		return nil, err
	}
	if playlist.Contains(videoID) {
		return nil, fmt.Errorf("video %s is already in playlist %s: %w", videoID, playlistID, domain.ErrConflict)
	}

	if err := s.playlistRepo.AddVideo(ctx, playlistID, videoID); err != nil {
		return nil, err
	}
	return s.playlistRepo.GetByID(ctx, playlistID)
}

func (s *playlistService) RemoveVideo(ctx context.Context, principal *users.Principal, playlistID, videoID string) (*playlists.Playlist, error) {
	playlist, err := s.owned(ctx, principal, playlistID)
	if err != nil {
		return nil, err
	}
	if !playlist.Contains(videoID) {
		return nil, fmt.Errorf("video %s is not in playlist %s: %w", videoID, playlistID, domain.ErrNotFound)
	}

	if err := s.playlistRepo.RemoveVideo(ctx, playlistID, videoID); err != nil {
		return nil, err
	}
	return s.playlistRepo.GetByID(ctx, playlistID)
}

// owned loads the playlist and checks that principal owns it
func (s *playlistService) owned(ctx context.Context, principal *users.Principal, playlistID string) (*playlists.Playlist, error) {
	playlist, err := s.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if principal == nil || principal.UserID != playlist.UserID {
		return nil, fmt.Errorf("only the owner can change the entries of playlist %s: %w", playlistID, domain.ErrForbidden)
	}
	return playlist, nil
}
