package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every endpoint answers with. Endpoint payloads
// (user, note, notes, accessToken, ...) sit next to error and message.
type Response struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

const InternalErrorMessage = "Internal Server Error"

// envelope merges the flags with payload; payload keys cannot override them.
func envelope(failed bool, message string, payload gin.H) gin.H {
	body := gin.H{}
	for k, v := range payload {
		body[k] = v
	}
	body["error"] = failed
	body["message"] = message
	return body
}

// Success responses
func Success(c *gin.Context, message string, payload gin.H) {
	c.JSON(http.StatusOK, envelope(false, message, payload))
}

// Error responses
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, envelope(true, message, nil))
}

func Unauthorized(c *gin.Context, message string) {
	Fail(c, http.StatusUnauthorized, message)
}

func BadRequest(c *gin.Context, message string) {
	Fail(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Fail(c, http.StatusNotFound, message)
}

// InternalError never carries detail; callers log the cause.
func InternalError(c *gin.Context) {
	Fail(c, http.StatusInternalServerError, InternalErrorMessage)
}

func Forbidden(c *gin.Context, message string) {
	Fail(c, http.StatusForbidden, message)
}

func ServiceUnavailable(c *gin.Context, message string, payload gin.H) {
	c.JSON(http.StatusServiceUnavailable, envelope(true, message, payload))
}

// AbortWith writes the error envelope and stops the handler chain.
func AbortWith(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, envelope(true, message, nil))
}
