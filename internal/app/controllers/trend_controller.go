package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/deniz/campuscare/internal/app/services"
	"github.com/deniz/campuscare/internal/middleware"
)

// TrendController serves the trend report dashboard data
type TrendController struct {
	trendService *services.TrendService
	logger       zerolog.Logger
}

// NewTrendController creates a new TrendController
func NewTrendController(trendService *services.TrendService, logger zerolog.Logger) *TrendController {
	return &TrendController{
		trendService: trendService,
		logger:       logger,
	}
}

// GetReport returns the derived statistics. The payload is consumed by the
// dashboard as-is, so it is served unwrapped.
func (c *TrendController) GetReport(ctx *gin.Context) {
	report, err := c.trendService.BuildReport(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to build trend report")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, report)
}
