package models

import "time"

// TicketStatus is the two-state ticket machine with a one-way transition
type TicketStatus string

const (
	TicketStatusOpen   TicketStatus = "open"
	TicketStatusClosed TicketStatus = "closed"
)

// Ticket belongs to a student and is optionally assigned to a counsellor.
// CounsellorID is a weak reference, nulled when the counsellor is deleted.
type Ticket struct {
	ID           int64        `json:"id" db:"id"`
	StudentID    int64        `json:"studentId" db:"student_id"`
	CounsellorID *int64       `json:"counsellorId,omitempty" db:"counsellor_id"`
	Status       TicketStatus `json:"status" db:"status"`
	CreatedAt    time.Time    `json:"createdAt" db:"created_at"`

	// Related entities
	Messages []TicketMessage `json:"messages,omitempty"`
}

// TicketMessage is one entry in a ticket's ordered message list,
// appended by either party.
type TicketMessage struct {
	ID        int64     `json:"id" db:"id"`
	TicketID  int64     `json:"ticketId" db:"ticket_id"`
	Body      string    `json:"body" db:"body"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Close transitions the ticket to closed. Closing an already-closed
// ticket is a no-op reported as failure.
func (t *Ticket) Close() bool {
	if t.Status == TicketStatusClosed {
		return false
	}
	t.Status = TicketStatusClosed
	return true
}
