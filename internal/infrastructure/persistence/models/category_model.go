package models

import (
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/categories"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/users"
)

// CategoryModel is the GORM database model for video categories
type CategoryModel struct {
	ID             string `gorm:"primaryKey;type:varchar(36)"`
	Name           string `gorm:"not null;type:varchar(100)"`
	NormalizedName string `gorm:"not null;uniqueIndex;type:varchar(100)"`
	Description    string `gorm:"type:varchar(500)"`
}

// TableName specifies the table name for GORM
func (CategoryModel) TableName() string {
	return "categories"
}

// ToDomain converts GORM model to domain entity
func (m *CategoryModel) ToDomain() *categories.Category {
	return &categories.Category{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
	}
}

// FromDomain converts domain entity to GORM model
func (m *CategoryModel) FromDomain(c *categories.Category) {
	m.ID = c.ID
	m.Name = c.Name
	m.NormalizedName = users.NormalizeName(c.Name)
	m.Description = c.Description
}
