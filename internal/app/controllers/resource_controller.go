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

// ResourceController serves the self-help resource catalogue
type ResourceController struct {
	resourceService *services.ResourceService
	logger          zerolog.Logger
}

// NewResourceController creates a new ResourceController
func NewResourceController(resourceService *services.ResourceService, logger zerolog.Logger) *ResourceController {
	return &ResourceController{
		resourceService: resourceService,
		logger:          logger,
	}
}

// List returns the catalogue
func (c *ResourceController) List(ctx *gin.Context) {
	resources, err := c.resourceService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resources})
}

// Get returns one resource
func (c *ResourceController) Get(ctx *gin.Context) {
	resourceID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("invalid resource id"))
		return
	}

	resource, err := c.resourceService.Get(ctx.Request.Context(), resourceID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resource})
}

// Update replaces a resource's content, admin surface
func (c *ResourceController) Update(ctx *gin.Context) {
	resourceID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("invalid resource id"))
		return
	}

	var req dto.UpdateResourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resource, err := c.resourceService.Update(ctx.Request.Context(), resourceID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resource})
}
