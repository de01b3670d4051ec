package handler

import (
	"quicknotes/dto"
	"quicknotes/usecase"
	"quicknotes/utils"

	"github.com/gin-gonic/gin"
)

func RegistrationHandler(c *gin.Context, userService *usecase.UserService) {
	var req dto.RegisterRequest
	if !bindBody(c, &req, msgMissingFields) {
		return
	}

	user, token, err := userService.Register(c.Request.Context(), usecase.RegisterInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.TrackAuthAttempt("failure", "register")
		respondError(c, err)
		return
	}

	utils.TrackAuthAttempt("success", "register")
	utils.Success(c, "Registration Successful", gin.H{
		"user":        user,
		"accessToken": token,
	})
}
