package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"quicknotes/model"
	"quicknotes/services"
	"quicknotes/utils"

	"github.com/gin-gonic/gin"
)

const (
	userContextKey = "user"

	msgAuthRequired = "Authentication required"
	msgInvalidToken = "Invalid or expired token"
)

// AuthMiddleware admits requests carrying a valid "Bearer <token>" header and
// stores the identity embedded in the token under the "user" context key.
func AuthMiddleware(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		scheme, token := splitAuthorization(c.GetHeader("Authorization"))
		if token == "" {
			utils.TrackAuthAttempt("failure", "access")
			utils.AbortWith(c, http.StatusUnauthorized, msgAuthRequired)
			return
		}

		if !strings.EqualFold(scheme, "Bearer") {
			rejectToken(c, errors.New("unsupported authorization scheme"))
			return
		}

		user, err := tokens.Verify(token)
		if err != nil {
			rejectToken(c, err)
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

func rejectToken(c *gin.Context, cause error) {
	utils.TrackAuthAttempt("failure", "access")
	slog.WarnContext(c.Request.Context(), "access token rejected",
		"request_id", c.GetString(requestIDKey),
		"path", c.Request.URL.Path,
		"error", cause,
	)
	utils.AbortWith(c, http.StatusForbidden, msgInvalidToken)
}

// splitAuthorization returns the scheme and the credential that follows it.
// A header with a single word has no credential.
func splitAuthorization(header string) (string, string) {
	fields := strings.Fields(header)
	switch len(fields) {
	case 0, 1:
		return "", ""
	default:
		return fields[0], fields[1]
	}
}

// CurrentUser returns the identity set by AuthMiddleware.
func CurrentUser(c *gin.Context) (*model.TokenUser, bool) {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*model.TokenUser)
	return user, ok && user != nil
}
