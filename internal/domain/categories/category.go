package categories

import (
	"github.com/Justyn-98/Video-upload-web-service/internal/domain"
)

// Category entity groups videos by topic
type Category struct {
	ID          string `validate:"required,uuid4"`
	Name        string `validate:"required,min=1,max=100,notblank"`
	Description string `validate:"max=500"`
}

// Validate for validating Category struct
func (c *Category) Validate() error {
	return domain.ValidateStruct(c)
}

// CategoryInput carries the writable fields of a category
type CategoryInput struct {
	Name        string `validate:"required,min=1,max=100,notblank"`
	Description string `validate:"max=500"`
}

// Validate for validating CategoryInput struct
func (in *CategoryInput) Validate() error {
	return domain.ValidateStruct(in)
}

// DefaultCategories are created by data seeding
func DefaultCategories() []CategoryInput {
	return []CategoryInput{
		{Name: "Music", Description: "Music videos and live performances"},
		{Name: "Gaming", Description: "Let's plays, walkthroughs and esports"},
		{Name: "Education", Description: "Lectures, tutorials and how-tos"},
		{Name: "Sports", Description: "Highlights and analysis"},
		{Name: "News", Description: "News and current events"},
		{Name: "Entertainment", Description: "Comedy, shows and vlogs"},
	}
}
