package models

import "time"

// MessageRole identifies which side of a chatbot exchange produced a message
type MessageRole string

const (
	MessageRoleUser MessageRole = "user"
	MessageRoleBot  MessageRole = "bot"
)

// Conversation is an append-only chat history owned by a user.
// Deleting the owner cascades to the conversation, deleting the
// conversation cascades to its messages.
type Conversation struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Message is one entry in a conversation. SenderID is a weak reference:
// it is nulled when the sender account is deleted while the message persists.
type Message struct {
	ID             int64       `json:"id" db:"id"`
	ConversationID int64       `json:"conversationId" db:"conversation_id"`
	Role           MessageRole `json:"role" db:"role"`
	SenderID       *int64      `json:"senderId,omitempty" db:"sender_id"`
	Content        string      `json:"content" db:"content"`
	CreatedAt      time.Time   `json:"createdAt" db:"created_at"`

	// Related entities
	Sender *User `json:"sender,omitempty"`
}
