package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain/playlists"
	"github.com/Justyn-98/Video-upload-web-service/internal/infrastructure/persistence/models"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormPlaylistRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormPlaylistRepository creates a new GORM-based PlaylistRepository implementation
func NewGormPlaylistRepository(db *gorm.DB, logger logger.Logger) (playlists.PlaylistRepository, error) {
	return &gormPlaylistRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormPlaylistRepository) Create(ctx context.Context, playlist *playlists.Playlist) error {
	if err := playlist.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.PlaylistModel{}
	model.FromDomain(playlist)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			return translateError(err, "create", "playlist", playlist.ID)
		}
		for i, videoID := range playlist.VideoIDs {
			entry := &models.PlaylistVideoModel{
				PlaylistID:    playlist.ID,
				VideoID:       videoID,
				Position:      i,
				DateTimeAdded: playlist.DateTimeCreated,
			}
			if err := tx.Create(entry).Error; err != nil {
				return translateError(err, "add", "playlist entry", videoID)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Created playlist with id ", playlist.ID)
	return nil
}

func (r *gormPlaylistRepository) List(ctx context.Context, query *playlists.PlaylistQuery) ([]*playlists.Playlist, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	db := r.db.WithContext(ctx)
	var modelList []*models.PlaylistModel
	dbQuery := db.Model(&models.PlaylistModel{})

	if query.UserID != "" {
		dbQuery = dbQuery.Where("user_id = ?", query.UserID)
	}
	if query.Name != "" {
		dbQuery = dbQuery.Where(likeEscaped("LOWER(name)", "LOWER(?)"), containsPattern(query.Name))
	}

	dbQuery = dbQuery.Order("date_time_created desc")
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch playlists: %w", err)
	}

	ids := make([]string, len(modelList))
	for i, model := range modelList {
		ids[i] = model.ID
	}
	entries, err := loadEntries(db, ids)
	if err != nil {
		return nil, err
	}

	domainList := make([]*playlists.Playlist, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain(entries[model.ID])
	}
	return domainList, nil
}

func (r *gormPlaylistRepository) GetByID(ctx context.Context, playlistID string) (*playlists.Playlist, error) {
	db := r.db.WithContext(ctx)

	var model models.PlaylistModel
	if err := db.Where("id = ?", playlistID).First(&model).Error; err != nil {
		return nil, translateError(err, "fetch", "playlist", playlistID)
	}

	entries, err := loadEntries(db, []string{model.ID})
	if err != nil {
		return nil, err
	}
	return model.ToDomain(entries[model.ID]), nil
}

func (r *gormPlaylistRepository) UpdateByID(ctx context.Context, playlist *playlists.Playlist) error {
	if err := playlist.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.PlaylistModel{}).Where("id = ?", playlist.ID).Updates(map[string]interface{}{
		"name":        playlist.Name,
		"description": playlist.Description,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update playlist: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound("playlist", playlist.ID)
	}

	r.logger.Info("Updated playlist with id ", playlist.ID)
	return nil
}

func (r *gormPlaylistRepository) DeleteByID(ctx context.Context, playlistID string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.PlaylistModel{}).Where("id = ?", playlistID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to fetch playlist: %w", err)
		}
		if count == 0 {
			return notFound("playlist", playlistID)
		}
		return deletePlaylists(tx, []string{playlistID})
	})
	if err != nil {
		return err
	}

	r.logger.Info("Deleted playlist with id ", playlistID)
	return nil
}

// AddVideo appends the video after the current last entry
func (r *gormPlaylistRepository) AddVideo(ctx context.Context, playlistID, videoID string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockPlaylist(tx, playlistID); err != nil {
			return err
		}

		var next int
		if err := tx.Model(&models.PlaylistVideoModel{}).
			Where("playlist_id = ?", playlistID).
			Select("COALESCE(MAX(position) + 1, 0)").
			Scan(&next).Error; err != nil {
			return fmt.Errorf("failed to fetch playlist positions: %w", err)
		}

		entry := &models.PlaylistVideoModel{
			PlaylistID:    playlistID,
			VideoID:       videoID,
			Position:      next,
			DateTimeAdded: time.Now().UTC(),
		}
		if err := tx.Create(entry).Error; err != nil {
			return translateError(err, "add", "playlist entry", videoID)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Added video ", videoID, " to playlist ", playlistID)
	return nil
}

// RemoveVideo deletes the entry and shifts the following entries up by one
func (r *gormPlaylistRepository) RemoveVideo(ctx context.Context, playlistID, videoID string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockPlaylist(tx, playlistID); err != nil {
			return err
		}

		var entry models.PlaylistVideoModel
		if err := tx.Where("playlist_id = ? AND video_id = ?", playlistID, videoID).First(&entry).Error; err != nil {
			return translateError(err, "fetch", "playlist entry", videoID)
		}
		if err := tx.Where("playlist_id = ? AND video_id = ?", playlistID, videoID).Delete(&models.PlaylistVideoModel{}).Error; err != nil {
			return fmt.Errorf("failed to remove playlist entry: %w", err)
		}
		if err := tx.Model(&models.PlaylistVideoModel{}).
			Where("playlist_id = ? AND position > ?", playlistID, entry.Position).
			UpdateColumn("position", gorm.Expr("position - ?", 1)).Error; err != nil {
			return fmt.Errorf("failed to reorder playlist: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Removed video ", videoID, " from playlist ", playlistID)
	return nil
}

// lockPlaylist holds the playlist row until the transaction ends so entry
// positions are computed by one writer at a time. SQLite has no row locks and
// serializes writers on its own.
func lockPlaylist(tx *gorm.DB, playlistID string) error {
	var playlist models.PlaylistModel
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where("id = ?", playlistID).
		Take(&playlist).Error
	if err != nil {
		return translateError(err, "lock", "playlist", playlistID)
	}
	return nil
}

// deletePlaylists removes playlists with their entries
func deletePlaylists(tx *gorm.DB, playlistIDs []string) error {
	if len(playlistIDs) == 0 {
		return nil
	}
	if err := tx.Where("playlist_id IN ?", playlistIDs).Delete(&models.PlaylistVideoModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete playlist entries: %w", err)
	}
	if err := tx.Where("id IN ?", playlistIDs).Delete(&models.PlaylistModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete playlists: %w", err)
	}
	return nil
}

// loadEntries returns video IDs per playlist ID, ordered by position
func loadEntries(db *gorm.DB, playlistIDs []string) (map[string][]string, error) {
	result := make(map[string][]string, len(playlistIDs))
	if len(playlistIDs) == 0 {
		return result, nil
	}

	var entries []*models.PlaylistVideoModel
	if err := db.Where("playlist_id IN ?", playlistIDs).Order("position").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch playlist entries: %w", err)
	}
	for _, entry := range entries {
		result[entry.PlaylistID] = append(result[entry.PlaylistID], entry.VideoID)
	}
	return result, nil
}
