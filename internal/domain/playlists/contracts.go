package playlists

import (
	"context"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain/users"
)

// PlaylistService manages user playlists.
type PlaylistService interface {
	Create(ctx context.Context, userID string, input *PlaylistInput) (*Playlist, error)
	List(ctx context.Context, query *PlaylistQuery) ([]*Playlist, error)
	GetByID(ctx context.Context, playlistID string) (*Playlist, error)

	// Update and DeleteByID require the owner or an administrator.
	Update(ctx context.Context, principal *users.Principal, playlistID string, input *PlaylistInput) (*Playlist, error)
	DeleteByID(ctx context.Context, principal *users.Principal, playlistID string) error

	// AddVideo appends a video; adding a video twice fails with domain.ErrConflict. Owner only.
	AddVideo(ctx context.Context, principal *users.Principal, playlistID, videoID string) (*Playlist, error)

	// RemoveVideo removes a video and closes the gap in positions. Owner only.
	RemoveVideo(ctx context.Context, principal *users.Principal, playlistID, videoID string) (*Playlist, error)
}

// PlaylistRepository defines the interface for Playlist-related operations
type PlaylistRepository interface {
	Create(ctx context.Context, playlist *Playlist) error
	List(ctx context.Context, query *PlaylistQuery) ([]*Playlist, error)
	GetByID(ctx context.Context, playlistID string) (*Playlist, error)
	UpdateByID(ctx context.Context, playlist *Playlist) error
	DeleteByID(ctx context.Context, playlistID string) error
	AddVideo(ctx context.Context, playlistID, videoID string) error
	RemoveVideo(ctx context.Context, playlistID, videoID string) error
}
