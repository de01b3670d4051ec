package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"quicknotes/utils"

	"github.com/gin-gonic/gin"
)

func EnhancedRecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.ErrorContext(c.Request.Context(), "panic recovered",
					"request_id", c.GetString(requestIDKey),
					"path", c.Request.URL.Path,
					"panic", err,
					"stack", string(debug.Stack()),
				)
				utils.TrackError("panic", "handler")
				utils.AbortWith(c, http.StatusInternalServerError, utils.InternalErrorMessage)
			}
		}()
		c.Next()
	}
}
