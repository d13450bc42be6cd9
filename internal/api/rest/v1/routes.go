package v1

import (
	"github.com/Justyn-98/Video-upload-web-service/internal/api/rest/middleware"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/categories"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/comments"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/likes"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/playlists"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/users"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/videos"

	"github.com/gin-gonic/gin"
)

// Services groups the application services behind the version 1 routes
type Services struct {
	Accounts       users.AccountService
	AccountDetails users.AccountDetailsService
	Categories     categories.VideoCategoryService
	Videos         videos.VideosService
	Comments       comments.CommentsService
	Likes          likes.LikesService
	Playlists      playlists.PlaylistService

	// MaxUploadSize caps video upload bodies, zero for no limit
	MaxUploadSize int64
}

// SetupRoutes sets up all the API routes for version 1.
// authLimiter guards registration and login; nil disables it.
func SetupRoutes(r *gin.Engine, services *Services, authLimiter gin.HandlerFunc) {
	v1 := r.Group(BasePath)

	authenticated := middleware.RequireAuthenticated()
	admin := middleware.RequireRole(users.RoleAdmin)
	limited := func(handler gin.HandlerFunc) []gin.HandlerFunc {
		if authLimiter == nil {
			return []gin.HandlerFunc{handler}
		}
		return []gin.HandlerFunc{authLimiter, handler}
	}

	// Accounts Routes
	accountHandler := NewAccountHandler(services.Accounts, services.AccountDetails)
	likeHandler := NewLikeHandler(services.Likes)
	v1.POST("/accounts/register", limited(accountHandler.Register)...)
	v1.POST("/accounts/login", limited(accountHandler.Login)...)
	v1.POST("/accounts/logout", authenticated, accountHandler.Logout)
	v1.GET("/accounts/me", authenticated, accountHandler.GetMe)
	v1.PUT("/accounts/me", authenticated, accountHandler.UpdateMe)
	v1.PUT("/accounts/me/password", authenticated, accountHandler.ChangePassword)
	v1.GET("/accounts/me/likes", authenticated, likeHandler.ListMine)
	v1.GET("/accounts", admin, accountHandler.List)
	v1.GET("/accounts/:id", authenticated, accountHandler.GetByID)
	v1.DELETE("/accounts/:id", admin, accountHandler.DeleteByID)
	v1.PUT("/accounts/:id/roles", admin, accountHandler.SetRoles)

	// Categories Routes
	categoryHandler := NewCategoryHandler(services.Categories)
	v1.GET("/categories", categoryHandler.List)
	v1.GET("/categories/:id", categoryHandler.GetByID)
	v1.POST("/categories", admin, categoryHandler.Create)
	v1.PUT("/categories/:id", admin, categoryHandler.Update)
	v1.DELETE("/categories/:id", admin, categoryHandler.DeleteByID)

	// Videos Routes
	videoHandler := NewVideoHandler(services.Videos, services.MaxUploadSize)
	v1.GET("/videos", videoHandler.List)
	v1.GET("/videos/:id", videoHandler.GetByID)
	v1.POST("/videos/:id/views", videoHandler.RecordView)
	v1.POST("/videos", authenticated, videoHandler.Create)
	v1.PUT("/videos/:id", authenticated, videoHandler.Update)
	v1.DELETE("/videos/:id", authenticated, videoHandler.DeleteByID)
	v1.POST("/videos/:id/file", authenticated, videoHandler.UploadFile)
	v1.GET("/videos/:id/file", videoHandler.DownloadFile)

	// Comments Routes
	commentHandler := NewCommentHandler(services.Comments)
	v1.GET("/videos/:id/comments", commentHandler.ListByVideo)
	v1.POST("/videos/:id/comments", authenticated, commentHandler.Create)
	v1.PUT("/comments/:id", authenticated, commentHandler.Update)
	v1.DELETE("/comments/:id", authenticated, commentHandler.DeleteByID)

	// Likes Routes
	v1.GET("/videos/:id/likes", likeHandler.Summary)
	v1.POST("/videos/:id/likes", authenticated, likeHandler.Like)
	v1.DELETE("/videos/:id/likes", authenticated, likeHandler.Unlike)

	// Playlists Routes
	playlistHandler := NewPlaylistHandler(services.Playlists)
	v1.GET("/playlists", playlistHandler.List)
	v1.GET("/playlists/:id", playlistHandler.GetByID)
	v1.POST("/playlists", authenticated, playlistHandler.Create)
	v1.PUT("/playlists/:id", authenticated, playlistHandler.Update)
	v1.DELETE("/playlists/:id", authenticated, playlistHandler.DeleteByID)
	v1.POST("/playlists/:id/videos", authenticated, playlistHandler.AddVideo)
	v1.DELETE("/playlists/:id/videos/:videoId", authenticated, playlistHandler.RemoveVideo)
}
