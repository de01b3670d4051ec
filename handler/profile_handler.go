package handler

import (
	"errors"

	"quicknotes/middleware"
	"quicknotes/usecase"
	"quicknotes/utils"

	"github.com/gin-gonic/gin"
)

const msgUserNotFound = "User not found"

// GetUserHandler reloads the caller from the store. A valid token whose user
// no longer exists is a 401.
func GetUserHandler(c *gin.Context, userService *usecase.UserService) {
	identity, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Unauthorized(c, msgUserNotFound)
		return
	}

	user, err := userService.GetUser(c.Request.Context(), identity.ID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			utils.Unauthorized(c, msgUserNotFound)
			return
		}
		respondError(c, err)
		return
	}

	utils.Success(c, "", gin.H{"user": user})
}
