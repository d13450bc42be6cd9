package models

import (
	"time"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain/comments"
)

// CommentModel is the GORM database model for comments
type CommentModel struct {
	ID              string    `gorm:"primaryKey;type:varchar(36)"`
	VideoID         string    `gorm:"not null;index;type:varchar(36)"`
	UserID          string    `gorm:"not null;index;type:varchar(36)"`
	Content         string    `gorm:"not null;type:text"`
	DateTimeCreated time.Time `gorm:"not null"`
	DateTimeUpdated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (CommentModel) TableName() string {
	return "comments"
}

// ToDomain converts GORM model to domain entity
func (m *CommentModel) ToDomain() *comments.Comment {
	return &comments.Comment{
		ID:              m.ID,
		VideoID:         m.VideoID,
		UserID:          m.UserID,
		Content:         m.Content,
		DateTimeCreated: m.DateTimeCreated,
		DateTimeUpdated: m.DateTimeUpdated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *CommentModel) FromDomain(c *comments.Comment) {
	m.ID = c.ID
	m.VideoID = c.VideoID
	m.UserID = c.UserID
	m.Content = c.Content
	m.DateTimeCreated = c.DateTimeCreated
	m.DateTimeUpdated = c.DateTimeUpdated
}
