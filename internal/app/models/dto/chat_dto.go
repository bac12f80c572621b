package dto

import (
	"time"

	"github.com/deniz/campuscare/internal/app/models"
)

// ChatMessageRequest is one chat turn. The field name matches the form
// field posted by the chat widget.
type ChatMessageRequest struct {
	ConversationID int64  `json:"conversationId" form:"conversation_id" binding:"required"`
	Msg            string `json:"msg" form:"msg" binding:"required"`
}

// ChatReplyResponse is the bot's answer to one turn
type ChatReplyResponse struct {
	Reply string `json:"reply"`
}

// ConversationResponse identifies a newly opened conversation
type ConversationResponse struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

// MessageResponse is one logged exchange entry
type MessageResponse struct {
	ID        int64              `json:"id"`
	Role      models.MessageRole `json:"role"`
	SenderID  *int64             `json:"senderId,omitempty"`
	Content   string             `json:"content"`
	CreatedAt time.Time          `json:"createdAt"`
}

// ListMessagesRequest filters a conversation's message log
type ListMessagesRequest struct {
	Before *time.Time `form:"before"`
	After  *time.Time `form:"after"`
	Role   string     `form:"role"`
	Limit  int        `form:"limit,default=50"`
}

// NewMessageResponse maps a message model to its view
func NewMessageResponse(m *models.Message) MessageResponse {
	return MessageResponse{
		ID:        m.ID,
		Role:      m.Role,
		SenderID:  m.SenderID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}
