package v1

import (
	"net/http"

	"github.com/Justyn-98/Video-upload-web-service/internal/api/rest/middleware"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/playlists"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// PlaylistHandler defines the interface for handling playlist-related operations
type PlaylistHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	AddVideo(ctx *gin.Context)
	RemoveVideo(ctx *gin.Context)
}

type playlistHandler struct {
	playlistService playlists.PlaylistService
}

// NewPlaylistHandler creates a new PlaylistHandler
func NewPlaylistHandler(playlistService playlists.PlaylistService) PlaylistHandler {
	return &playlistHandler{playlistService: playlistService}
}

func (handler *playlistHandler) Create(ctx *gin.Context) {
	var request PlaylistRequest
	if !bindJSON(ctx, &request) {
		return
	}

	playlist, err := handler.playlistService.Create(ctx, middleware.PrincipalFromContext(ctx).UserID, &playlists.PlaylistInput{
		Name:        request.Name,
		Description: request.Description,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newPlaylistResponse(playlist))
}

// List fetches playlists optionally filtered by owner and name
func (handler *playlistHandler) List(ctx *gin.Context) {
	query := &playlists.PlaylistQuery{
		UserID: ctx.Query("userId"),
		Name:   ctx.Query("name"),
		Limit:  strutil.ConvertToInt(ctx.Query("limit"), 0),
		Offset: strutil.ConvertToInt(ctx.Query("offset"), 0),
	}
	if err := query.Validate(); err != nil {
		writeError(ctx, err)
		return
	}

	list, err := handler.playlistService.List(ctx, query)
	if err != nil {
		writeError(ctx, err)
		return
	}

	listResponse := []PlaylistResponse{}
	for _, playlist := range list {
		listResponse = append(listResponse, newPlaylistResponse(playlist))
	}
	ctx.JSON(http.StatusOK, listResponse)
}

func (handler *playlistHandler) GetByID(ctx *gin.Context) {
	playlist, err := handler.playlistService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newPlaylistResponse(playlist))
}

func (handler *playlistHandler) Update(ctx *gin.Context) {
	var request PlaylistRequest
	if !bindJSON(ctx, &request) {
		return
	}

	playlist, err := handler.playlistService.Update(ctx, middleware.PrincipalFromContext(ctx), ctx.Param("id"), &playlists.PlaylistInput{
		Name:        request.Name,
		Description: request.Description,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newPlaylistResponse(playlist))
}

func (handler *playlistHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.playlistService.DeleteByID(ctx, middleware.PrincipalFromContext(ctx), ctx.Param("id")); err != nil {
		writeError(ctx, err)
		return
	}
	writeNoContent(ctx)
}

// AddVideo appends a video to a playlist of the caller
func (handler *playlistHandler) AddVideo(ctx *gin.Context) {
	var request PlaylistVideoRequest
	if !bindJSON(ctx, &request) {
		return
	}
	if err := request.Validate(); err != nil {
		writeError(ctx, err)
		return
	}

	playlist, err := handler.playlistService.AddVideo(ctx, middleware.PrincipalFromContext(ctx), ctx.Param("id"), request.VideoID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newPlaylistResponse(playlist))
}

// RemoveVideo removes a video from a playlist of the caller
func (handler *playlistHandler) RemoveVideo(ctx *gin.Context) {
	playlist, err := handler.playlistService.RemoveVideo(ctx, middleware.PrincipalFromContext(ctx), ctx.Param("id"), ctx.Param("videoId"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newPlaylistResponse(playlist))
}
