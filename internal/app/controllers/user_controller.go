package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/deniz/campuscare/internal/app/models/dto"
	"github.com/deniz/campuscare/internal/app/services"
	"github.com/deniz/campuscare/internal/middleware"
	"github.com/deniz/campuscare/internal/pkg/apperrors"
)

// UserController handles account operations
type UserController struct {
	userService services.UserService
	logger      zerolog.Logger
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService, logger zerolog.Logger) *UserController {
	return &UserController{
		userService: userService,
		logger:      logger,
	}
}

// GetProfile returns the caller's account with its role detail
func (c *UserController) GetProfile(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)

	profile, err := c.userService.GetProfile(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: profile})
}

// ChangeEmail updates the caller's email address
func (c *UserController) ChangeEmail(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)

	var req dto.ChangeEmailRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if err := c.userService.ChangeEmail(ctx.Request.Context(), userID, req.NewEmail); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: gin.H{"message": "Email updated"}})
}

// ResetPassword replaces the caller's password and ends their sessions
func (c *UserController) ResetPassword(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)

	var req dto.ResetPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if err := c.userService.ResetPassword(ctx.Request.Context(), userID, req.NewPassword); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: gin.H{"message": "Password changed. Please log in again."}})
}

// DeleteHistory removes every conversation the caller owns
func (c *UserController) DeleteHistory(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)

	if err := c.userService.DeleteChatHistory(ctx.Request.Context(), userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: gin.H{"message": "Chat history deleted"}})
}

// DeleteUser removes an account, admin surface
func (c *UserController) DeleteUser(ctx *gin.Context) {
	targetID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("invalid user id"))
		return
	}

	if err := c.userService.DeleteUser(ctx.Request.Context(), targetID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: gin.H{"message": "Account deleted"}})
}
