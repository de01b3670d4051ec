package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"quicknotes/middleware"
	"quicknotes/usecase"
	"quicknotes/utils"

	"github.com/gin-gonic/gin"
)

const (
	msgMissingFields = "All fields are required"
	msgInvalidBody   = "Invalid request body"
	msgBodyTooLarge  = "Request body too large"
)

type httpError struct {
	status  int
	message string
}

var domainErrors = []struct {
	err error
	httpError
}{
	{usecase.ErrMissingFields, httpError{http.StatusBadRequest, msgMissingFields}},
	{utils.ErrValidation, httpError{http.StatusBadRequest, msgMissingFields}},
	{usecase.ErrUserExists, httpError{http.StatusBadRequest, "User already exists"}},
	{usecase.ErrUserNotFound, httpError{http.StatusBadRequest, "User does not exist"}},
	{usecase.ErrInvalidCredentials, httpError{http.StatusBadRequest, "Invalid credentials"}},
	{usecase.ErrNoChanges, httpError{http.StatusBadRequest, "No changes provided"}},
	{usecase.ErrNoteNotFound, httpError{http.StatusNotFound, "Note not found"}},
	{usecase.ErrMissingQuery, httpError{http.StatusBadRequest, "Search query is required"}},
}

// mapError translates usecase errors into a status and message. Anything it
// does not know is a 500.
func mapError(err error) httpError {
	for _, d := range domainErrors {
		if errors.Is(err, d.err) {
			return d.httpError
		}
	}
	return httpError{http.StatusInternalServerError, utils.InternalErrorMessage}
}

// respondError writes the envelope for err. Internal errors are logged and
// their detail is not sent.
func respondError(c *gin.Context, err error) {
	mapped := mapError(err)
	if mapped.status == http.StatusInternalServerError {
		_ = c.Error(err)
		utils.TrackError("internal", c.FullPath())
		slog.ErrorContext(c.Request.Context(), "request failed",
			"request_id", middleware.RequestID(c),
			"route", c.FullPath(),
			"error", err,
		)
		utils.InternalError(c)
		return
	}
	utils.Fail(c, mapped.status, mapped.message)
}

// bindBody decodes the JSON body into req. An empty body leaves req at its
// zero value for the usecase to reject. It writes the response and returns
// false when the body is too large or does not decode, using invalidMsg for
// the latter.
func bindBody(c *gin.Context, req any, invalidMsg string) bool {
	err := c.ShouldBindJSON(req)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		utils.Fail(c, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
		return false
	}

	utils.BadRequest(c, invalidMsg)
	return false
}
