package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appAuth "github.com/deniz/campuscare/internal/app/auth"
	"github.com/deniz/campuscare/internal/app/models/dto"
	"github.com/deniz/campuscare/internal/app/services"
	"github.com/deniz/campuscare/internal/middleware"
	"github.com/deniz/campuscare/internal/pkg/apperrors"
)

// ChatbotController handles conversations and chat turns
type ChatbotController struct {
	chatbotService *services.ChatbotService
	authz          *appAuth.AuthorizationService
	logger         zerolog.Logger
}

// NewChatbotController creates a new ChatbotController
func NewChatbotController(chatbotService *services.ChatbotService, authz *appAuth.AuthorizationService, logger zerolog.Logger) *ChatbotController {
	return &ChatbotController{
		chatbotService: chatbotService,
		authz:          authz,
		logger:         logger,
	}
}

// StartConversation opens a fresh conversation for the caller
func (c *ChatbotController) StartConversation(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)

	conversation, err := c.chatbotService.StartConversation(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: conversation})
}

// SendMessage runs one chat turn and returns the bot reply. Accepts both
// JSON and the chat widget's form encoding.
func (c *ChatbotController) SendMessage(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)

	var req dto.ChatMessageRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if err := c.authz.ValidateConversationOwnership(ctx.Request.Context(), req.ConversationID, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	reply, err := c.chatbotService.HandleMessage(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	// The chat widget consumes {"reply": ...} directly, unwrapped
	ctx.JSON(http.StatusOK, reply)
}

// ListMessages returns a conversation's message log
func (c *ChatbotController) ListMessages(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)

	conversationID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("invalid conversation id"))
		return
	}

	var filter dto.ListMessagesRequest
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if err := c.authz.ValidateConversationOwnership(ctx.Request.Context(), conversationID, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	messages, err := c.chatbotService.ListMessages(ctx.Request.Context(), conversationID, &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: messages})
}
