//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/comments"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/likes"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/playlists"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/videos"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLike(videoID, userID string) *likes.Like {
	return &likes.Like{
		ID:              uuid.NewString(),
		VideoID:         videoID,
		UserID:          userID,
		DateTimeCreated: time.Now().UTC(),
	}
}

func newTestComment(videoID, userID, content string) *comments.Comment {
	now := time.Now().UTC()
	return &comments.Comment{
		ID:              uuid.NewString(),
		VideoID:         videoID,
		UserID:          userID,
		Content:         content,
		DateTimeCreated: now,
		DateTimeUpdated: now,
	}
}

func TestVideoSqliteRepository_List_WithFilters(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	CreateTestRoles(t, ctx)
	user := CreateTestUser(t, ctx, "alice")
	music := CreateTestCategory(t, ctx, "Music")
	gaming := CreateTestCategory(t, ctx, "Gaming")

	CreateTestVideo(t, ctx, user.ID, music.ID, "Live at the Arena")
	CreateTestVideo(t, ctx, user.ID, music.ID, "Studio session")
	CreateTestVideo(t, ctx, user.ID, gaming.ID, "Speedrun")

	query := videos.NewVideoQuery()
	query.CategoryID = music.ID
	list, err := ctx.VideoRepo.List(context.Background(), query)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	query = videos.NewVideoQuery()
	query.Title = "arena"
	list, err = ctx.VideoRepo.List(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Live at the Arena", list[0].Title)

	query = videos.NewVideoQuery()
	query.SortBy = "title"
	query.SortOrder = "desc"
	query.Limit = 2
	list, err = ctx.VideoRepo.List(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Studio session", list[0].Title)
	assert.Equal(t, "Speedrun", list[1].Title)
}

func TestVideoSqliteRepository_List_TitleWildcardsAreLiteral(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	CreateTestRoles(t, ctx)
	user := CreateTestUser(t, ctx, "alice")
	music := CreateTestCategory(t, ctx, "Music")

	CreateTestVideo(t, ctx, user.ID, music.ID, "50% off")
	CreateTestVideo(t, ctx, user.ID, music.ID, "500 subscribers")
	CreateTestVideo(t, ctx, user.ID, music.ID, "snake_case")
	CreateTestVideo(t, ctx, user.ID, music.ID, "snakeXcase")
	CreateTestVideo(t, ctx, user.ID, music.ID, `C:\videos`)

	for term, expected := range map[string]string{
		"50%":     "50% off",
		"_case":   "snake_case",
		`:\v`:     `C:\videos`,
		"KE_CASE": "snake_case",
		"% OFF":   "50% off",
	} {
		query := videos.NewVideoQuery()
		query.Title = term
		list, err := ctx.VideoRepo.List(context.Background(), query)
		require.NoError(t, err, term)
		require.Len(t, list, 1, term)
		assert.Equal(t, expected, list[0].Title, term)
	}

	query := videos.NewVideoQuery()
	query.Title = "%"
	list, err := ctx.VideoRepo.List(context.Background(), query)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestVideoSqliteRepository_IncrementViews(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	CreateTestRoles(t, ctx)
	user := CreateTestUser(t, ctx, "alice")
	category := CreateTestCategory(t, ctx, "Music")
	video := CreateTestVideo(t, ctx, user.ID, category.ID, "clip")

	require.NoError(t, ctx.VideoRepo.IncrementViews(context.Background(), video.ID))
	require.NoError(t, ctx.VideoRepo.IncrementViews(context.Background(), video.ID))

	fetched, err := ctx.VideoRepo.GetByID(context.Background(), video.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), fetched.Views)

	err = ctx.VideoRepo.IncrementViews(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVideoSqliteRepository_UpdateByID_KeepsViews(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	CreateTestRoles(t, ctx)
	user := CreateTestUser(t, ctx, "alice")
	category := CreateTestCategory(t, ctx, "Music")
	video := CreateTestVideo(t, ctx, user.ID, category.ID, "clip")
	require.NoError(t, ctx.VideoRepo.IncrementViews(context.Background(), video.ID))

	fileName := "clip.mp4"
	key := video.ID + "/clip.mp4"
	video.Title = "renamed"
	video.FileName = &fileName
	video.StorageKey = &key
	video.FileSize = 42
	require.NoError(t, ctx.VideoRepo.UpdateByID(context.Background(), video))

	fetched, err := ctx.VideoRepo.GetByID(context.Background(), video.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", fetched.Title)
	assert.Equal(t, int64(1), fetched.Views)
	assert.True(t, fetched.HasFile())
	assert.Equal(t, int64(42), fetched.FileSize)
}

func TestVideoSqliteRepository_DeleteByID_Cascades(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	CreateTestRoles(t, ctx)
	user := CreateTestUser(t, ctx, "alice")
	category := CreateTestCategory(t, ctx, "Music")
	video := CreateTestVideo(t, ctx, user.ID, category.ID, "clip")
	other := CreateTestVideo(t, ctx, user.ID, category.ID, "other")

	require.NoError(t, ctx.CommentRepo.Create(context.Background(), newTestComment(video.ID, user.ID, "first")))
	_, err := ctx.LikeRepo.Create(context.Background(), newTestLike(video.ID, user.ID))
	require.NoError(t, err)

	playlist := &playlists.Playlist{
		ID:              uuid.NewString(),
		Name:            "favourites",
		UserID:          user.ID,
		DateTimeCreated: time.Now().UTC(),
		VideoIDs:        []string{video.ID, other.ID},
	}
	require.NoError(t, ctx.PlaylistRepo.Create(context.Background(), playlist))

	require.NoError(t, ctx.VideoRepo.DeleteByID(context.Background(), video.ID))

	count, err := ctx.LikeRepo.CountByVideo(context.Background(), video.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	list, err := ctx.CommentRepo.ListByVideo(context.Background(), video.ID, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, list)

	fetched, err := ctx.PlaylistRepo.GetByID(context.Background(), playlist.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{other.ID}, fetched.VideoIDs)

	total, err := ctx.VideoRepo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	err = ctx.VideoRepo.DeleteByID(context.Background(), video.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategorySqliteRepository_CRUD(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	CreateTestRoles(t, ctx)
	user := CreateTestUser(t, ctx, "alice")
	category := CreateTestCategory(t, ctx, "Music")

	byName, err := ctx.CategoryRepo.GetByName(context.Background(), "music")
	require.NoError(t, err)
	assert.Equal(t, category.ID, byName.ID)

	duplicate := CreateTestCategory(t, ctx, "Gaming")
	duplicate.Name = "MUSIC"
	err = ctx.CategoryRepo.UpdateByID(context.Background(), duplicate)
	assert.ErrorIs(t, err, domain.ErrConflict)

	CreateTestVideo(t, ctx, user.ID, category.ID, "clip")
	count, err := ctx.CategoryRepo.CountVideos(context.Background(), category.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	list, err := ctx.CategoryRepo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Gaming", list[0].Name)

	require.NoError(t, ctx.CategoryRepo.DeleteByID(context.Background(), duplicate.ID))
	err = ctx.CategoryRepo.DeleteByID(context.Background(), duplicate.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
