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

// SessionController handles counselling session scheduling
type SessionController struct {
	sessionService *services.SessionService
	logger         zerolog.Logger
}

// NewSessionController creates a new SessionController
func NewSessionController(sessionService *services.SessionService, logger zerolog.Logger) *SessionController {
	return &SessionController{
		sessionService: sessionService,
		logger:         logger,
	}
}

// Schedule books a session for the calling student
func (c *SessionController) Schedule(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)

	var req dto.ScheduleSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	session, err := c.sessionService.Schedule(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: session})
}

// ToggleStatus flips a session between scheduled and completed
func (c *SessionController) ToggleStatus(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)

	sessionID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("invalid session id"))
		return
	}

	session, err := c.sessionService.ToggleStatus(ctx.Request.Context(), sessionID, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: session})
}

// ListMine returns the calling student's sessions
func (c *SessionController) ListMine(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)

	sessions, err := c.sessionService.ListForStudent(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: sessions})
}

// ListAssigned returns the calling counsellor's sessions
func (c *SessionController) ListAssigned(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)

	sessions, err := c.sessionService.ListForCounsellor(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: sessions})
}
