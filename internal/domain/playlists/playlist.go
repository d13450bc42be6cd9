package playlists

import (
	"fmt"
	"time"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain"
)

// Playlist entity. VideoIDs are ordered by position.
type Playlist struct {
	ID              string    `validate:"required,uuid4"`
	Name            string    `validate:"required,min=1,max=100,notblank"`
	Description     string    `validate:"max=1000"`
	UserID          string    `validate:"required,uuid4"`
	DateTimeCreated time.Time `validate:"required"`
	VideoIDs        []string
}

// Validate for validating Playlist struct
func (p *Playlist) Validate() error {
	return domain.ValidateStruct(p)
}

// Contains reports whether the playlist holds videoID
func (p *Playlist) Contains(videoID string) bool {
	for _, id := range p.VideoIDs {
		if id == videoID {
			return true
		}
	}
	return false
}

// PlaylistInput carries the writable fields of a playlist
type PlaylistInput struct {
	Name        string `validate:"required,min=1,max=100,notblank"`
	Description string `validate:"max=1000"`
}

// Validate for validating PlaylistInput struct
func (in *PlaylistInput) Validate() error {
	return domain.ValidateStruct(in)
}

// PlaylistQuery filters and pages the playlist list
type PlaylistQuery struct {
	UserID string `validate:"omitempty,uuid4"`
	Name   string
	Limit  int `validate:"gte=0,lte=500"`
	Offset int `validate:"gte=0"`
}

// Validate for validating PlaylistQuery struct
func (q *PlaylistQuery) Validate() error {
	if err := domain.ValidateStruct(q); err != nil {
		return fmt.Errorf("invalid playlist query: %w", err)
	}
	return nil
}
