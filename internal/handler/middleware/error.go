package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"cleanspace/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error recorded on the context when nothing has been
// written yet. Errors without a prepared response are mapped by their kind.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		last := c.Errors.Last()
		if resp, ok := last.Meta.(httperr.Response); ok {
			c.JSON(resp.Status, resp)
			return
		}
		httperr.AbortWithUseCaseError(c, last.Err)
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				slog.ErrorContext(c.Request.Context(), "recovered from panic",
					"panic", r,
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"stack", string(debug.Stack()))

				httperr.AbortWithError(c, http.StatusInternalServerError, fmt.Errorf("panic: %v", r), "Internal server error", nil)
			}
		}()
		c.Next()
	}
}
