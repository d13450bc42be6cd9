package models

import (
	"time"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain/likes"
)

// LikeModel is the GORM database model for likes; (video_id, user_id) is unique
type LikeModel struct {
	ID              string    `gorm:"primaryKey;type:varchar(36)"`
	VideoID         string    `gorm:"not null;uniqueIndex:idx_likes_video_user;type:varchar(36)"`
	UserID          string    `gorm:"not null;uniqueIndex:idx_likes_video_user;index;type:varchar(36)"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (LikeModel) TableName() string {
	return "likes"
}

// ToDomain converts GORM model to domain entity
func (m *LikeModel) ToDomain() *likes.Like {
	return &likes.Like{
		ID:              m.ID,
		VideoID:         m.VideoID,
		UserID:          m.UserID,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *LikeModel) FromDomain(l *likes.Like) {
	m.ID = l.ID
	m.VideoID = l.VideoID
	m.UserID = l.UserID
	m.DateTimeCreated = l.DateTimeCreated
}
