package videos

import (
	"context"
	"mime/multipart"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain/users"
)

// VideosService manages videos and their files.
type VideosService interface {
	Create(ctx context.Context, userID string, input *VideoInput) (*Video, error)
	List(ctx context.Context, query *VideoQuery) ([]*Video, error)
	GetByID(ctx context.Context, videoID string) (*Video, error)

	// RecordView increments the view counter and returns the updated video.
	RecordView(ctx context.Context, videoID string) (*Video, error)

	// Update and DeleteByID require the owner or an administrator.
	Update(ctx context.Context, principal *users.Principal, videoID string, input *VideoInput) (*Video, error)
	DeleteByID(ctx context.Context, principal *users.Principal, videoID string) error

	// UploadFile stores the file, replacing a previous one, and records its metadata.
	UploadFile(ctx context.Context, principal *users.Principal, videoID string, file *multipart.FileHeader) (*Video, error)
	DownloadFile(ctx context.Context, videoID string) (*VideoFile, error)
}

// VideoRepository defines the interface for Video-related operations
type VideoRepository interface {
	Create(ctx context.Context, video *Video) error
	List(ctx context.Context, query *VideoQuery) ([]*Video, error)
	GetByID(ctx context.Context, videoID string) (*Video, error)
	UpdateByID(ctx context.Context, video *Video) error
	IncrementViews(ctx context.Context, videoID string) error
	Count(ctx context.Context) (int64, error)

	// DeleteByID removes the video with its comments, likes and playlist entries.
	DeleteByID(ctx context.Context, videoID string) error
}

// VideoStorage is an interface for storing uploaded video files.
// Implementations exist for the local filesystem and Azure Blob Storage.
type VideoStorage interface {
	// Upload stores data under a key derived from videoID and fileName and returns the key.
	Upload(ctx context.Context, videoID, fileName string, data []byte) (string, error)

	// Download returns the content stored under key.
	Download(ctx context.Context, key string) ([]byte, error)

	// Delete removes the content stored under key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
