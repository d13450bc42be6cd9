package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Justyn-98/Video-upload-web-service/internal/api/rest/middleware"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/videos"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

const (
	// videoFileField is the multipart field carrying an uploaded video file
	videoFileField = "file"
	// multipartOverhead is the room left for boundaries and part headers on top of the file itself
	multipartOverhead = 1 << 20
)

// VideoHandler defines the interface for handling video-related operations
type VideoHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	RecordView(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	UploadFile(ctx *gin.Context)
	DownloadFile(ctx *gin.Context)
}

type videoHandler struct {
	videosService videos.VideosService
	maxUploadSize int64
}

// NewVideoHandler creates a new VideoHandler. Upload bodies are capped near
// maxUploadSize; zero leaves them unbounded.
func NewVideoHandler(videosService videos.VideosService, maxUploadSize int64) VideoHandler {
	return &videoHandler{videosService: videosService, maxUploadSize: maxUploadSize}
}

// Create adds a video owned by the caller
func (handler *videoHandler) Create(ctx *gin.Context) {
	var request VideoRequest
	if !bindJSON(ctx, &request) {
		return
	}

	video, err := handler.videosService.Create(ctx, middleware.PrincipalFromContext(ctx).UserID, request.toInput())
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newVideoResponse(video))
}

// List fetches videos optionally with query parameters
func (handler *videoHandler) List(ctx *gin.Context) {
	query := videos.NewVideoQuery()
	query.Title = ctx.Query("title")
	query.CategoryID = ctx.Query("categoryId")
	query.UserID = ctx.Query("userId")
	query.Limit = strutil.ConvertToInt(ctx.Query("limit"), 0)
	query.Offset = strutil.ConvertToInt(ctx.Query("offset"), 0)
	query.SortBy = ctx.Query("sortBy")
	query.SortOrder = ctx.Query("sortOrder")

	if err := query.Validate(); err != nil {
		writeError(ctx, err)
		return
	}

	list, err := handler.videosService.List(ctx, query)
	if err != nil {
		writeError(ctx, err)
		return
	}

	listResponse := []VideoResponse{}
	for _, video := range list {
		listResponse = append(listResponse, newVideoResponse(video))
	}
	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID fetches a video by ID
func (handler *videoHandler) GetByID(ctx *gin.Context) {
	video, err := handler.videosService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newVideoResponse(video))
}

// RecordView counts a view and returns the updated video
func (handler *videoHandler) RecordView(ctx *gin.Context) {
	video, err := handler.videosService.RecordView(ctx, ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newVideoResponse(video))
}

// Update changes a video of the caller, or any video for administrators
func (handler *videoHandler) Update(ctx *gin.Context) {
	var request VideoRequest
	if !bindJSON(ctx, &request) {
		return
	}

	video, err := handler.videosService.Update(ctx, middleware.PrincipalFromContext(ctx), ctx.Param("id"), request.toInput())
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newVideoResponse(video))
}

// DeleteByID deletes a video with its comments, likes, playlist entries and file
func (handler *videoHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.videosService.DeleteByID(ctx, middleware.PrincipalFromContext(ctx), ctx.Param("id")); err != nil {
		writeError(ctx, err)
		return
	}
	writeNoContent(ctx)
}

// UploadFile stores the multipart file of the request as the video file
func (handler *videoHandler) UploadFile(ctx *gin.Context) {
	if handler.maxUploadSize > 0 {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, handler.maxUploadSize+multipartOverhead)
	}

	fileHeader, err := ctx.FormFile(videoFileField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeMessage(ctx, http.StatusRequestEntityTooLarge, fmt.Sprintf("file exceeds %d bytes", handler.maxUploadSize))
			return
		}
		writeMessage(ctx, http.StatusBadRequest, "invalid form data")
		return
	}

	video, err := handler.videosService.UploadFile(ctx, middleware.PrincipalFromContext(ctx), ctx.Param("id"), fileHeader)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newVideoResponse(video))
}

// DownloadFile streams the stored file of a video
func (handler *videoHandler) DownloadFile(ctx *gin.Context) {
	file, err := handler.videosService.DownloadFile(ctx, ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", strconv.Quote(file.Name)))
	ctx.Data(http.StatusOK, file.ContentType, file.Data)
}

func (r *VideoRequest) toInput() *videos.VideoInput {
	return &videos.VideoInput{
		Title:        r.Title,
		Description:  r.Description,
		URL:          r.URL,
		ThumbnailURL: r.ThumbnailURL,
		CategoryID:   r.CategoryID,
	}
}
