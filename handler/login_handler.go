package handler

import (
	"log/slog"

	"quicknotes/dto"
	"quicknotes/middleware"
	"quicknotes/usecase"
	"quicknotes/utils"

	"github.com/gin-gonic/gin"
)

func LoginHandler(c *gin.Context, userService *usecase.UserService) {
	var req dto.LoginRequest
	if !bindBody(c, &req, msgMissingFields) {
		return
	}

	user, token, err := userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.TrackAuthAttempt("failure", "login")
		respondError(c, err)
		return
	}

	utils.TrackAuthAttempt("success", "login")
	slog.InfoContext(c.Request.Context(), "user logged in",
		"request_id", middleware.RequestID(c),
		"user_id", user.ID,
		"client", utils.DescribeClient(c.Request.UserAgent()),
	)
	utils.Success(c, "Login Successful", gin.H{
		"email":       user.Email,
		"accessToken": token,
	})
}
