package v1

import (
	"net/http"

	"github.com/Justyn-98/Video-upload-web-service/internal/api/rest/middleware"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/likes"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// LikeHandler defines the interface for handling like-related operations
type LikeHandler interface {
	Summary(ctx *gin.Context)
	Like(ctx *gin.Context)
	Unlike(ctx *gin.Context)
	ListMine(ctx *gin.Context)
}

type likeHandler struct {
	likesService likes.LikesService
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likesService likes.LikesService) LikeHandler {
	return &likeHandler{likesService: likesService}
}

// Summary reports the like count of a video. LikedByMe is only set for authenticated callers.
func (handler *likeHandler) Summary(ctx *gin.Context) {
	var userID string
	if principal := middleware.PrincipalFromContext(ctx); principal != nil {
		userID = principal.UserID
	}

	summary, err := handler.likesService.Summary(ctx, ctx.Param("id"), userID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newLikeSummaryResponse(summary))
}

func (handler *likeHandler) Like(ctx *gin.Context) {
	summary, err := handler.likesService.Like(ctx, middleware.PrincipalFromContext(ctx).UserID, ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newLikeSummaryResponse(summary))
}

func (handler *likeHandler) Unlike(ctx *gin.Context) {
	summary, err := handler.likesService.Unlike(ctx, middleware.PrincipalFromContext(ctx).UserID, ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newLikeSummaryResponse(summary))
}

// ListMine lists the IDs of the videos the caller likes
func (handler *likeHandler) ListMine(ctx *gin.Context) {
	limit := strutil.ConvertToInt(ctx.Query("limit"), 0)
	offset := strutil.ConvertToInt(ctx.Query("offset"), 0)

	videoIDs, err := handler.likesService.ListLikedVideoIDs(ctx, middleware.PrincipalFromContext(ctx).UserID, limit, offset)
	if err != nil {
		writeError(ctx, err)
		return
	}
	if videoIDs == nil {
		videoIDs = []string{}
	}
	ctx.JSON(http.StatusOK, LikedVideosResponse{VideoIDs: videoIDs})
}
