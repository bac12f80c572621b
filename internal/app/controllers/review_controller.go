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

// ReviewController handles review submission and moderation
type ReviewController struct {
	reviewService *services.ReviewService
	logger        zerolog.Logger
}

// NewReviewController creates a new ReviewController
func NewReviewController(reviewService *services.ReviewService, logger zerolog.Logger) *ReviewController {
	return &ReviewController{
		reviewService: reviewService,
		logger:        logger,
	}
}

// Create stores a review for the caller
func (c *ReviewController) Create(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)

	var req dto.CreateReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	review, err := c.reviewService.Create(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: review})
}

// List returns every review
func (c *ReviewController) List(ctx *gin.Context) {
	reviews, err := c.reviewService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: reviews})
}

// Delete removes a review, admin moderation surface
func (c *ReviewController) Delete(ctx *gin.Context) {
	reviewID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("invalid review id"))
		return
	}

	if err := c.reviewService.Delete(ctx.Request.Context(), reviewID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: gin.H{"message": "Review deleted"}})
}
