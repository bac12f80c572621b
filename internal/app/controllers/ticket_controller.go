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

// TicketController handles the support ticket surface
type TicketController struct {
	ticketService *services.TicketService
	logger        zerolog.Logger
}

// NewTicketController creates a new TicketController
func NewTicketController(ticketService *services.TicketService, logger zerolog.Logger) *TicketController {
	return &TicketController{
		ticketService: ticketService,
		logger:        logger,
	}
}

func ticketIDParam(ctx *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewValidationError("invalid ticket id")
	}
	return id, nil
}

// Open creates a ticket for the calling student
func (c *TicketController) Open(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)

	var req dto.CreateTicketRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	ticket, err := c.ticketService.Open(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: ticket})
}

// Get returns one ticket with its message thread
func (c *TicketController) Get(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)
	role, _ := middleware.CurrentRole(ctx)

	ticketID, err := ticketIDParam(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ticket, err := c.ticketService.Get(ctx.Request.Context(), ticketID, userID, role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: ticket})
}

// AddMessage appends a message to the ticket thread
func (c *TicketController) AddMessage(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)
	role, _ := middleware.CurrentRole(ctx)

	ticketID, err := ticketIDParam(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.AddTicketMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	msg, err := c.ticketService.AddMessage(ctx.Request.Context(), ticketID, userID, role, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: msg})
}

// Close transitions a ticket to closed, counsellor surface
func (c *TicketController) Close(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)

	ticketID, err := ticketIDParam(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.ticketService.Close(ctx.Request.Context(), ticketID, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: gin.H{"message": "Ticket closed"}})
}

// Assign claims a ticket for the calling counsellor
func (c *TicketController) Assign(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)

	ticketID, err := ticketIDParam(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.ticketService.Assign(ctx.Request.Context(), ticketID, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: gin.H{"message": "Ticket assigned"}})
}

// ListMine returns the calling student's tickets
func (c *TicketController) ListMine(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)

	tickets, err := c.ticketService.ListForStudent(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: tickets})
}

// ListAssigned returns tickets assigned to the calling counsellor
func (c *TicketController) ListAssigned(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)

	tickets, err := c.ticketService.ListForCounsellor(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: tickets})
}
