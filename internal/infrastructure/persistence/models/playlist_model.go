package models

import (
	"time"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain/playlists"
)

// PlaylistModel is the GORM database model for playlists
type PlaylistModel struct {
	ID              string    `gorm:"primaryKey;type:varchar(36)"`
	Name            string    `gorm:"not null;type:varchar(100)"`
	Description     string    `gorm:"type:varchar(1000)"`
	UserID          string    `gorm:"not null;index;type:varchar(36)"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (PlaylistModel) TableName() string {
	return "playlists"
}

// ToDomain converts GORM model to domain entity with the ordered video IDs
func (m *PlaylistModel) ToDomain(videoIDs []string) *playlists.Playlist {
	if videoIDs == nil {
		videoIDs = []string{}
	}
	return &playlists.Playlist{
		ID:              m.ID,
		Name:            m.Name,
		Description:     m.Description,
		UserID:          m.UserID,
		DateTimeCreated: m.DateTimeCreated,
		VideoIDs:        videoIDs,
	}
}

// FromDomain converts domain entity to GORM model. Entries are persisted separately.
func (m *PlaylistModel) FromDomain(p *playlists.Playlist) {
	m.ID = p.ID
	m.Name = p.Name
	m.Description = p.Description
	m.UserID = p.UserID
	m.DateTimeCreated = p.DateTimeCreated
}

// PlaylistVideoModel is an entry of a playlist
type PlaylistVideoModel struct {
	PlaylistID    string    `gorm:"primaryKey;type:varchar(36)"`
	VideoID       string    `gorm:"primaryKey;type:varchar(36);index"`
	Position      int       `gorm:"not null"`
	DateTimeAdded time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (PlaylistVideoModel) TableName() string {
	return "playlist_videos"
}
