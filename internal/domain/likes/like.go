package likes

import (
	"time"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain"
)

// Like entity. A user likes a video at most once.
type Like struct {
	ID              string    `validate:"required,uuid4"`
	VideoID         string    `validate:"required,uuid4"`
	UserID          string    `validate:"required,uuid4"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating Like struct
func (l *Like) Validate() error {
	return domain.ValidateStruct(l)
}

// Summary aggregates the likes of a video
type Summary struct {
	VideoID   string
	Count     int64
	LikedByMe bool
}
