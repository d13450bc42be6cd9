package v1

import (
	"time"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/categories"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/comments"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/likes"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/playlists"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/users"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/videos"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse carries a human readable confirmation
type InfoResponse struct {
	Message string `json:"message"`
}

// RegisterRequest represents a self-registration
type RegisterRequest struct {
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest identifies a user by user name or email
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// UpdateProfileRequest changes the fields that are present
type UpdateProfileRequest struct {
	Email       *string `json:"email,omitempty"`
	DisplayName *string `json:"displayName,omitempty"`
	Bio         *string `json:"bio,omitempty"`
}

// ChangePasswordRequest replaces the password of the caller
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// SetRolesRequest replaces the roles of a user
type SetRolesRequest struct {
	Roles []string `json:"roles" validate:"required,min=1,dive,required,max=64"`
}

// Validate for validating SetRolesRequest struct
func (r *SetRolesRequest) Validate() error {
	return domain.ValidateStruct(r)
}

// UserResponse represents a user account
type UserResponse struct {
	ID              string    `json:"id"`
	UserName        string    `json:"userName"`
	Email           string    `json:"email"`
	DisplayName     string    `json:"displayName"`
	Bio             string    `json:"bio"`
	Roles           []string  `json:"roles"`
	DateTimeCreated time.Time `json:"dateTimeCreated"`
}

// TokenResponse is returned after a successful login
type TokenResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"tokenType"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// CategoryRequest represents the writable fields of a category
type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CategoryResponse represents a video category
type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// VideoRequest represents the writable fields of a video
type VideoRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
	CategoryID   string `json:"categoryId"`
}

// VideoResponse represents a video with its file metadata
type VideoResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	URL             string    `json:"url"`
	ThumbnailURL    string    `json:"thumbnailUrl"`
	CategoryID      string    `json:"categoryId"`
	UserID          string    `json:"userId"`
	Views           int64     `json:"views"`
	HasFile         bool      `json:"hasFile"`
	FileName        *string   `json:"fileName,omitempty"`
	FileSize        int64     `json:"fileSize"`
	ContentType     *string   `json:"contentType,omitempty"`
	DateTimeCreated time.Time `json:"dateTimeCreated"`
	DateTimeUpdated time.Time `json:"dateTimeUpdated"`
}

// CommentRequest carries the content of a comment
type CommentRequest struct {
	Content string `json:"content"`
}

// CommentResponse represents a comment on a video
type CommentResponse struct {
	ID              string    `json:"id"`
	VideoID         string    `json:"videoId"`
	UserID          string    `json:"userId"`
	Content         string    `json:"content"`
	DateTimeCreated time.Time `json:"dateTimeCreated"`
	DateTimeUpdated time.Time `json:"dateTimeUpdated"`
}

// LikeSummaryResponse reports the like count of a video
type LikeSummaryResponse struct {
	VideoID   string `json:"videoId"`
	Count     int64  `json:"count"`
	LikedByMe bool   `json:"likedByMe"`
}

// LikedVideosResponse lists the videos liked by the caller, most recent first
type LikedVideosResponse struct {
	VideoIDs []string `json:"videoIds"`
}

// PlaylistRequest represents the writable fields of a playlist
type PlaylistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// PlaylistVideoRequest adds a video to a playlist
type PlaylistVideoRequest struct {
	VideoID string `json:"videoId" validate:"required,uuid4"`
}

// Validate for validating PlaylistVideoRequest struct
func (r *PlaylistVideoRequest) Validate() error {
	return domain.ValidateStruct(r)
}

// PlaylistResponse represents a playlist with its ordered videos
type PlaylistResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	UserID          string    `json:"userId"`
	VideoIDs        []string  `json:"videoIds"`
	DateTimeCreated time.Time `json:"dateTimeCreated"`
}

func newUserResponse(user *users.User) UserResponse {
	roles := user.Roles
	if roles == nil {
		roles = []string{}
	}
	return UserResponse{
		ID:              user.ID,
		UserName:        user.UserName,
		Email:           user.Email,
		DisplayName:     user.DisplayName,
		Bio:             user.Bio,
		Roles:           roles,
		DateTimeCreated: user.DateTimeCreated,
	}
}

func newCategoryResponse(category *categories.Category) CategoryResponse {
	return CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
	}
}

func newVideoResponse(video *videos.Video) VideoResponse {
	return VideoResponse{
		ID:              video.ID,
		Title:           video.Title,
		Description:     video.Description,
		URL:             video.URL,
		ThumbnailURL:    video.ThumbnailURL,
		CategoryID:      video.CategoryID,
		UserID:          video.UserID,
		Views:           video.Views,
		HasFile:         video.HasFile(),
		FileName:        video.FileName,
		FileSize:        video.FileSize,
		ContentType:     video.ContentType,
		DateTimeCreated: video.DateTimeCreated,
		DateTimeUpdated: video.DateTimeUpdated,
	}
}

func newCommentResponse(comment *comments.Comment) CommentResponse {
	return CommentResponse{
		ID:              comment.ID,
		VideoID:         comment.VideoID,
		UserID:          comment.UserID,
		Content:         comment.Content,
		DateTimeCreated: comment.DateTimeCreated,
		DateTimeUpdated: comment.DateTimeUpdated,
	}
}

func newLikeSummaryResponse(summary *likes.Summary) LikeSummaryResponse {
	return LikeSummaryResponse{
		VideoID:   summary.VideoID,
		Count:     summary.Count,
		LikedByMe: summary.LikedByMe,
	}
}

func newPlaylistResponse(playlist *playlists.Playlist) PlaylistResponse {
	videoIDs := playlist.VideoIDs
	if videoIDs == nil {
		videoIDs = []string{}
	}
	return PlaylistResponse{
		ID:              playlist.ID,
		Name:            playlist.Name,
		Description:     playlist.Description,
		UserID:          playlist.UserID,
		VideoIDs:        videoIDs,
		DateTimeCreated: playlist.DateTimeCreated,
	}
}
