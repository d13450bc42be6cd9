package videos

import (
	"fmt"
	"time"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain"
)

// Video entity
type Video struct {
	ID              string    `validate:"required,uuid4"`
	Title           string    `validate:"required,min=1,max=200,notblank"`
	Description     string    `validate:"max=5000"`
	URL             string    `validate:"omitempty,url,max=2048"`
	ThumbnailURL    string    `validate:"omitempty,url,max=2048"`
	CategoryID      string    `validate:"required,uuid4"`
	UserID          string    `validate:"required,uuid4"`
	Views           int64     `validate:"gte=0"`
	DateTimeCreated time.Time `validate:"required"`
	DateTimeUpdated time.Time `validate:"required"`

	// Set once a file has been uploaded
	FileName    *string `validate:"omitempty,min=1,max=255"`
	FileSize    int64   `validate:"gte=0"`
	ContentType *string `validate:"omitempty,max=100"`
	StorageKey  *string `validate:"omitempty,max=512"`
}

// Validate for validating Video struct
func (v *Video) Validate() error {
	return domain.ValidateStruct(v)
}

// HasFile reports whether a file was uploaded for the video
func (v *Video) HasFile() bool {
	return v.StorageKey != nil && *v.StorageKey != ""
}

// VideoInput carries the writable fields of a video
type VideoInput struct {
	Title        string `validate:"required,min=1,max=200,notblank"`
	Description  string `validate:"max=5000"`
	URL          string `validate:"omitempty,url,max=2048"`
	ThumbnailURL string `validate:"omitempty,url,max=2048"`
	CategoryID   string `validate:"required,uuid4"`
}

// Validate for validating VideoInput struct
func (in *VideoInput) Validate() error {
	return domain.ValidateStruct(in)
}

// VideoFile is a stored video file with its metadata
type VideoFile struct {
	Name        string
	ContentType string
	Size        int64
	Data        []byte
}

// VideoQuery filters, sorts and pages the video list
type VideoQuery struct {
	Title      string
	CategoryID string `validate:"omitempty,uuid4"`
	UserID     string `validate:"omitempty,uuid4"`
	Limit      int    `validate:"gte=0,lte=500"`
	Offset     int    `validate:"gte=0"`
	SortBy     string `validate:"omitempty,oneof=date_time_created title views"`
	SortOrder  string `validate:"omitempty,oneof=asc desc"`
}

// NewVideoQuery creates a VideoQuery with default values
func NewVideoQuery() *VideoQuery {
	return &VideoQuery{}
}

// Validate for validating VideoQuery struct
func (q *VideoQuery) Validate() error {
	if err := domain.ValidateStruct(q); err != nil {
		return fmt.Errorf("invalid video query: %w", err)
	}
	return nil
}
