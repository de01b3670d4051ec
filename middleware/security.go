package middleware

import (
	"net/http"

	"quicknotes/utils"

	"github.com/gin-gonic/gin"
)

// RequestSizeLimiter rejects declared oversize bodies up front and caps the
// rest while they are read.
func RequestSizeLimiter(maxSize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxSize <= 0 {
			c.Next()
			return
		}

		if c.Request.ContentLength > maxSize {
			utils.AbortWith(c, http.StatusRequestEntityTooLarge, "Request body too large")
			return
		}

		var w http.ResponseWriter = c.Writer
		c.Request.Body = http.MaxBytesReader(w, c.Request.Body, maxSize)
		c.Next()
	}
}
