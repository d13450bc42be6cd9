package v1

import (
	"errors"
	"net/http"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain"

	"github.com/gin-gonic/gin"
)

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ctx *gin.Context, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		_ = ctx.Error(err)
		message = "internal server error"
	}
	if status == http.StatusUnauthorized {
		ctx.Header("WWW-Authenticate", "Bearer")
	}
	ctx.JSON(status, ErrorResponse{Message: message})
}

func writeMessage(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, ErrorResponse{Message: message})
}

// bindJSON decodes the body into dst and answers 400 when it is malformed
func bindJSON(ctx *gin.Context, dst interface{}) bool {
	if err := ctx.ShouldBindJSON(dst); err != nil {
		writeMessage(ctx, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func writeNoContent(ctx *gin.Context) {
	ctx.Status(http.StatusNoContent)
	ctx.Writer.WriteHeaderNow()
}
