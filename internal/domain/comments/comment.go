package comments

import (
	"time"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain"
)

// Comment entity
type Comment struct {
	ID              string    `validate:"required,uuid4"`
	VideoID         string    `validate:"required,uuid4"`
	UserID          string    `validate:"required,uuid4"`
	Content         string    `validate:"required,min=1,max=2000,notblank"`
	DateTimeCreated time.Time `validate:"required"`
	DateTimeUpdated time.Time `validate:"required"`
}

// Validate for validating Comment struct
func (c *Comment) Validate() error {
	return domain.ValidateStruct(c)
}

// CommentInput carries the writable fields of a comment
type CommentInput struct {
	Content string `validate:"required,min=1,max=2000,notblank"`
}

// Validate for validating CommentInput struct
func (in *CommentInput) Validate() error {
	return domain.ValidateStruct(in)
}
