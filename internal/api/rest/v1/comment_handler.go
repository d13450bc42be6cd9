package v1

import (
	"net/http"

	"github.com/Justyn-98/Video-upload-web-service/internal/api/rest/middleware"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/comments"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// CommentHandler defines the interface for handling comment-related operations
type CommentHandler interface {
	ListByVideo(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type commentHandler struct {
	commentsService comments.CommentsService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentsService comments.CommentsService) CommentHandler {
	return &commentHandler{commentsService: commentsService}
}

// ListByVideo fetches the comments of a video, newest first
func (handler *commentHandler) ListByVideo(ctx *gin.Context) {
	limit := strutil.ConvertToInt(ctx.Query("limit"), 0)
	offset := strutil.ConvertToInt(ctx.Query("offset"), 0)

	list, err := handler.commentsService.ListByVideo(ctx, ctx.Param("id"), limit, offset)
	if err != nil {
		writeError(ctx, err)
		return
	}

	listResponse := []CommentResponse{}
	for _, comment := range list {
		listResponse = append(listResponse, newCommentResponse(comment))
	}
	ctx.JSON(http.StatusOK, listResponse)
}

// Create comments on a video as the caller
func (handler *commentHandler) Create(ctx *gin.Context) {
	var request CommentRequest
	if !bindJSON(ctx, &request) {
		return
	}

	comment, err := handler.commentsService.Create(ctx, middleware.PrincipalFromContext(ctx).UserID, ctx.Param("id"), &comments.CommentInput{
		Content: request.Content,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newCommentResponse(comment))
}

// Update edits a comment of the caller
func (handler *commentHandler) Update(ctx *gin.Context) {
	var request CommentRequest
	if !bindJSON(ctx, &request) {
		return
	}

	comment, err := handler.commentsService.Update(ctx, middleware.PrincipalFromContext(ctx), ctx.Param("id"), &comments.CommentInput{
		Content: request.Content,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newCommentResponse(comment))
}

func (handler *commentHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.commentsService.DeleteByID(ctx, middleware.PrincipalFromContext(ctx), ctx.Param("id")); err != nil {
		writeError(ctx, err)
		return
	}
	writeNoContent(ctx)
}
