package comments

import (
	"context"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain/users"
)

// CommentsService manages comments on videos.
type CommentsService interface {
	Create(ctx context.Context, userID, videoID string, input *CommentInput) (*Comment, error)

	// ListByVideo returns the comments of a video, newest first.
	ListByVideo(ctx context.Context, videoID string, limit, offset int) ([]*Comment, error)
	GetByID(ctx context.Context, commentID string) (*Comment, error)

	// Update is reserved to the author.
	Update(ctx context.Context, principal *users.Principal, commentID string, input *CommentInput) (*Comment, error)

	// DeleteByID is allowed to the author, the owner of the video and administrators.
	DeleteByID(ctx context.Context, principal *users.Principal, commentID string) error
}

// CommentRepository defines the interface for Comment-related operations
type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	ListByVideo(ctx context.Context, videoID string, limit, offset int) ([]*Comment, error)
	GetByID(ctx context.Context, commentID string) (*Comment, error)
	UpdateByID(ctx context.Context, comment *Comment) error
	DeleteByID(ctx context.Context, commentID string) error
}
