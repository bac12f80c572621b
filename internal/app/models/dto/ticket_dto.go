package dto

import (
	"time"

	"github.com/deniz/campuscare/internal/app/models"
)

// CreateTicketRequest opens a support ticket with an initial message
type CreateTicketRequest struct {
	Message string `json:"message" binding:"required"`
}

// AddTicketMessageRequest appends a message to a ticket
type AddTicketMessageRequest struct {
	Body string `json:"body" binding:"required"`
}

// TicketResponse is the ticket view
type TicketResponse struct {
	ID           int64                   `json:"id"`
	StudentID    int64                   `json:"studentId"`
	CounsellorID *int64                  `json:"counsellorId,omitempty"`
	Status       models.TicketStatus     `json:"status"`
	CreatedAt    time.Time               `json:"createdAt"`
	Messages     []TicketMessageResponse `json:"messages,omitempty"`
}

// TicketMessageResponse is one ticket message view
type TicketMessageResponse struct {
	ID        int64     `json:"id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewTicketResponse maps a ticket model to its view
func NewTicketResponse(ticket *models.Ticket) *TicketResponse {
	resp := &TicketResponse{
		ID:           ticket.ID,
		StudentID:    ticket.StudentID,
		CounsellorID: ticket.CounsellorID,
		Status:       ticket.Status,
		CreatedAt:    ticket.CreatedAt,
	}
	for _, m := range ticket.Messages {
		resp.Messages = append(resp.Messages, TicketMessageResponse{
			ID:        m.ID,
			Body:      m.Body,
			CreatedAt: m.CreatedAt,
		})
	}
	return resp
}
