package models

import (
	"time"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain/videos"
)

// VideoModel is the GORM database model for videos
type VideoModel struct {
	ID              string    `gorm:"primaryKey;type:varchar(36)"`
	Title           string    `gorm:"not null;type:varchar(200)"`
	Description     string    `gorm:"type:text"`
	URL             string    `gorm:"type:varchar(2048)"`
	ThumbnailURL    string    `gorm:"type:varchar(2048)"`
	CategoryID      string    `gorm:"not null;index;type:varchar(36)"`
	UserID          string    `gorm:"not null;index;type:varchar(36)"`
	Views           int64     `gorm:"not null;default:0"`
	DateTimeCreated time.Time `gorm:"not null;index"`
	DateTimeUpdated time.Time `gorm:"not null"`
	FileName        *string   `gorm:"type:varchar(255)"`
	FileSize        int64     `gorm:"not null;default:0"`
	ContentType     *string   `gorm:"type:varchar(100)"`
	StorageKey      *string   `gorm:"type:varchar(512)"`
}

// TableName specifies the table name for GORM
func (VideoModel) TableName() string {
	return "videos"
}

// ToDomain converts GORM model to domain entity
func (m *VideoModel) ToDomain() *videos.Video {
	return &videos.Video{
		ID:              m.ID,
		Title:           m.Title,
		Description:     m.Description,
		URL:             m.URL,
		ThumbnailURL:    m.ThumbnailURL,
		CategoryID:      m.CategoryID,
		UserID:          m.UserID,
		Views:           m.Views,
		DateTimeCreated: m.DateTimeCreated,
		DateTimeUpdated: m.DateTimeUpdated,
		FileName:        m.FileName,
		FileSize:        m.FileSize,
		ContentType:     m.ContentType,
		StorageKey:      m.StorageKey,
	}
}

// FromDomain converts domain entity to GORM model
func (m *VideoModel) FromDomain(v *videos.Video) {
	m.ID = v.ID
	m.Title = v.Title
	m.Description = v.Description
	m.URL = v.URL
	m.ThumbnailURL = v.ThumbnailURL
	m.CategoryID = v.CategoryID
	m.UserID = v.UserID
	m.Views = v.Views
	m.DateTimeCreated = v.DateTimeCreated
	m.DateTimeUpdated = v.DateTimeUpdated
	m.FileName = v.FileName
	m.FileSize = v.FileSize
	m.ContentType = v.ContentType
	m.StorageKey = v.StorageKey
}
