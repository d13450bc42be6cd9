package likes

import "context"

// LikesService manages likes. Like and Unlike are idempotent.
type LikesService interface {
	Like(ctx context.Context, userID, videoID string) (*Summary, error)
	Unlike(ctx context.Context, userID, videoID string) (*Summary, error)

	// Summary counts the likes of a video; LikedByMe is only computed when userID is set.
	Summary(ctx context.Context, videoID, userID string) (*Summary, error)

	// ListLikedVideoIDs returns the videos a user liked, most recent first.
	ListLikedVideoIDs(ctx context.Context, userID string, limit, offset int) ([]string, error)
}

// LikeRepository defines the interface for Like-related operations
type LikeRepository interface {
	// Create inserts the like unless the (video, user) pair exists, and reports whether it inserted.
	Create(ctx context.Context, like *Like) (bool, error)
	Delete(ctx context.Context, videoID, userID string) error
	Exists(ctx context.Context, videoID, userID string) (bool, error)
	CountByVideo(ctx context.Context, videoID string) (int64, error)
	ListVideoIDsByUser(ctx context.Context, userID string, limit, offset int) ([]string, error)
}
