//go:build unit
// +build unit

package v1

import (
	"context"
	"mime/multipart"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain/categories"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/comments"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/likes"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/playlists"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/users"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/videos"

	"github.com/stretchr/testify/mock"
)

// MockAccountService is a mock implementation of AccountService
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) Register(ctx context.Context, request *users.RegisterRequest) (*users.User, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockAccountService) Login(ctx context.Context, request *users.LoginRequest) (*users.SignInResult, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.SignInResult), args.Error(1)
}

func (m *MockAccountService) Logout(ctx context.Context, principal *users.Principal) error {
	args := m.Called(ctx, principal)
	return args.Error(0)
}

// MockAccountDetailsService is a mock implementation of AccountDetailsService
type MockAccountDetailsService struct {
	mock.Mock
}

func (m *MockAccountDetailsService) GetByID(ctx context.Context, userID string) (*users.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockAccountDetailsService) CreateUser(ctx context.Context, request *users.RegisterRequest, roles []string) (*users.User, error) {
	args := m.Called(ctx, request, roles)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockAccountDetailsService) List(ctx context.Context, query *users.UserQuery) ([]*users.User, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*users.User), args.Error(1)
}

func (m *MockAccountDetailsService) UpdateProfile(ctx context.Context, userID string, request *users.UpdateProfileRequest) (*users.User, error) {
	args := m.Called(ctx, userID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockAccountDetailsService) ChangePassword(ctx context.Context, userID string, request *users.ChangePasswordRequest) error {
	args := m.Called(ctx, userID, request)
	return args.Error(0)
}

func (m *MockAccountDetailsService) DeleteByID(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockAccountDetailsService) SetRoles(ctx context.Context, userID string, roles []string) (*users.User, error) {
	args := m.Called(ctx, userID, roles)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

// MockVideoCategoryService is a mock implementation of VideoCategoryService
type MockVideoCategoryService struct {
	mock.Mock
}

func (m *MockVideoCategoryService) Create(ctx context.Context, input *categories.CategoryInput) (*categories.Category, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*categories.Category), args.Error(1)
}

func (m *MockVideoCategoryService) List(ctx context.Context) ([]*categories.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*categories.Category), args.Error(1)
}

func (m *MockVideoCategoryService) GetByID(ctx context.Context, categoryID string) (*categories.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*categories.Category), args.Error(1)
}

func (m *MockVideoCategoryService) Update(ctx context.Context, categoryID string, input *categories.CategoryInput) (*categories.Category, error) {
	args := m.Called(ctx, categoryID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*categories.Category), args.Error(1)
}

func (m *MockVideoCategoryService) DeleteByID(ctx context.Context, categoryID string) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

// MockVideosService is a mock implementation of VideosService
type MockVideosService struct {
	mock.Mock
}

func (m *MockVideosService) Create(ctx context.Context, userID string, input *videos.VideoInput) (*videos.Video, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*videos.Video), args.Error(1)
}

func (m *MockVideosService) List(ctx context.Context, query *videos.VideoQuery) ([]*videos.Video, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*videos.Video), args.Error(1)
}

func (m *MockVideosService) GetByID(ctx context.Context, videoID string) (*videos.Video, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*videos.Video), args.Error(1)
}

func (m *MockVideosService) RecordView(ctx context.Context, videoID string) (*videos.Video, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*videos.Video), args.Error(1)
}

func (m *MockVideosService) Update(ctx context.Context, principal *users.Principal, videoID string, input *videos.VideoInput) (*videos.Video, error) {
	args := m.Called(ctx, principal, videoID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*videos.Video), args.Error(1)
}

func (m *MockVideosService) DeleteByID(ctx context.Context, principal *users.Principal, videoID string) error {
	args := m.Called(ctx, principal, videoID)
	return args.Error(0)
}

func (m *MockVideosService) UploadFile(ctx context.Context, principal *users.Principal, videoID string, file *multipart.FileHeader) (*videos.Video, error) {
	args := m.Called(ctx, principal, videoID, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*videos.Video), args.Error(1)
}

func (m *MockVideosService) DownloadFile(ctx context.Context, videoID string) (*videos.VideoFile, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*videos.VideoFile), args.Error(1)
}

// MockCommentsService is a mock implementation of CommentsService
type MockCommentsService struct {
	mock.Mock
}

func (m *MockCommentsService) Create(ctx context.Context, userID, videoID string, input *comments.CommentInput) (*comments.Comment, error) {
	args := m.Called(ctx, userID, videoID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*comments.Comment), args.Error(1)
}

func (m *MockCommentsService) ListByVideo(ctx context.Context, videoID string, limit, offset int) ([]*comments.Comment, error) {
	args := m.Called(ctx, videoID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*comments.Comment), args.Error(1)
}

func (m *MockCommentsService) GetByID(ctx context.Context, commentID string) (*comments.Comment, error) {
	args := m.Called(ctx, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*comments.Comment), args.Error(1)
}

func (m *MockCommentsService) Update(ctx context.Context, principal *users.Principal, commentID string, input *comments.CommentInput) (*comments.Comment, error) {
	args := m.Called(ctx, principal, commentID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*comments.Comment), args.Error(1)
}

func (m *MockCommentsService) DeleteByID(ctx context.Context, principal *users.Principal, commentID string) error {
	args := m.Called(ctx, principal, commentID)
	return args.Error(0)
}

// MockLikesService is a mock implementation of LikesService
type MockLikesService struct {
	mock.Mock
}

func (m *MockLikesService) Like(ctx context.Context, userID, videoID string) (*likes.Summary, error) {
	args := m.Called(ctx, userID, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*likes.Summary), args.Error(1)
}

func (m *MockLikesService) Unlike(ctx context.Context, userID, videoID string) (*likes.Summary, error) {
	args := m.Called(ctx, userID, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*likes.Summary), args.Error(1)
}

func (m *MockLikesService) Summary(ctx context.Context, videoID, userID string) (*likes.Summary, error) {
	args := m.Called(ctx, videoID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*likes.Summary), args.Error(1)
}

func (m *MockLikesService) ListLikedVideoIDs(ctx context.Context, userID string, limit, offset int) ([]string, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockPlaylistService is a mock implementation of PlaylistService
type MockPlaylistService struct {
	mock.Mock
}

func (m *MockPlaylistService) Create(ctx context.Context, userID string, input *playlists.PlaylistInput) (*playlists.Playlist, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*playlists.Playlist), args.Error(1)
}

func (m *MockPlaylistService) List(ctx context.Context, query *playlists.PlaylistQuery) ([]*playlists.Playlist, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*playlists.Playlist), args.Error(1)
}

func (m *MockPlaylistService) GetByID(ctx context.Context, playlistID string) (*playlists.Playlist, error) {
	args := m.Called(ctx, playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*playlists.Playlist), args.Error(1)
}

func (m *MockPlaylistService) Update(ctx context.Context, principal *users.Principal, playlistID string, input *playlists.PlaylistInput) (*playlists.Playlist, error) {
	args := m.Called(ctx, principal, playlistID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*playlists.Playlist), args.Error(1)
}

func (m *MockPlaylistService) DeleteByID(ctx context.Context, principal *users.Principal, playlistID string) error {
	args := m.Called(ctx, principal, playlistID)
	return args.Error(0)
}

func (m *MockPlaylistService) AddVideo(ctx context.Context, principal *users.Principal, playlistID, videoID string) (*playlists.Playlist, error) {
	args := m.Called(ctx, principal, playlistID, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*playlists.Playlist), args.Error(1)
}

func (m *MockPlaylistService) RemoveVideo(ctx context.Context, principal *users.Principal, playlistID, videoID string) (*playlists.Playlist, error) {
	args := m.Called(ctx, principal, playlistID, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*playlists.Playlist), args.Error(1)
}

// newMockServices returns Services backed by fresh mocks
func newMockServices() (*Services, *mockSet) {
	set := &mockSet{
		accounts:       new(MockAccountService),
		accountDetails: new(MockAccountDetailsService),
		categories:     new(MockVideoCategoryService),
		videos:         new(MockVideosService),
		comments:       new(MockCommentsService),
		likes:          new(MockLikesService),
		playlists:      new(MockPlaylistService),
	}
	return &Services{
		Accounts:       set.accounts,
		AccountDetails: set.accountDetails,
		Categories:     set.categories,
		Videos:         set.videos,
		Comments:       set.comments,
		Likes:          set.likes,
		Playlists:      set.playlists,
	}, set
}

type mockSet struct {
	accounts       *MockAccountService
	accountDetails *MockAccountDetailsService
	categories     *MockVideoCategoryService
	videos         *MockVideosService
	comments       *MockCommentsService
	likes          *MockLikesService
	playlists      *MockPlaylistService
}
