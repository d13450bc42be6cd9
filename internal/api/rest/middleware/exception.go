package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Exception recovers from panics in later handlers. In development the response is a
// plain-text page with the panic value and stack, otherwise a generic JSON 500.
func Exception(development bool, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}

			stack := debug.Stack()
			log.Error("Unhandled panic on ", c.Request.Method, " ", c.Request.URL.Path, ": ", recovered)

			if c.Writer.Written() {
				c.Abort()
				return
			}
			if development {
				page := fmt.Sprintf("An unhandled exception occurred while processing the request.\n\n%v\n\n%s", recovered, stack)
				c.Data(http.StatusInternalServerError, "text/plain; charset=utf-8", []byte(page))
				c.Abort()
				return
			}
			abortWithMessage(c, http.StatusInternalServerError, "internal server error")
		}()

		c.Next()
	}
}
