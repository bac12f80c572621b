package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deniz/campuscare/internal/app/models"
	"github.com/deniz/campuscare/internal/db"
	"github.com/deniz/campuscare/internal/pkg/apperrors"
)

// TicketRepository handles tickets and their message lists
type TicketRepository struct {
	db *pgxpool.Pool
}

// NewTicketRepository creates a new TicketRepository
func NewTicketRepository(db *pgxpool.Pool) *TicketRepository {
	return &TicketRepository{db: db}
}

// Create opens a ticket with its initial message in one transaction
func (r *TicketRepository) Create(ctx context.Context, studentID int64, initialMessage string) (*models.Ticket, error) {
	ticket := &models.Ticket{
		StudentID: studentID,
		Status:    models.TicketStatusOpen,
	}

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO tickets (student_id, status)
			VALUES ($1, $2)
			RETURNING id, created_at`,
			studentID, models.TicketStatusOpen).Scan(&ticket.ID, &ticket.CreatedAt)
		if err != nil {
			return fmt.Errorf("error creating ticket: %w", err)
		}

		msg := models.TicketMessage{TicketID: ticket.ID, Body: initialMessage}
		err = tx.QueryRow(ctx, `
			INSERT INTO ticket_messages (ticket_id, body)
			VALUES ($1, $2)
			RETURNING id, created_at`,
			ticket.ID, initialMessage).Scan(&msg.ID, &msg.CreatedAt)
		if err != nil {
			return fmt.Errorf("error creating initial ticket message: %w", err)
		}
		ticket.Messages = append(ticket.Messages, msg)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return ticket, nil
}

// GetByID retrieves a ticket without its messages
func (r *TicketRepository) GetByID(ctx context.Context, id int64) (*models.Ticket, error) {
	ticket := &models.Ticket{}
	err := r.db.QueryRow(ctx, `
		SELECT id, student_id, counsellor_id, status, created_at
		FROM tickets
		WHERE id = $1`,
		id).Scan(&ticket.ID, &ticket.StudentID, &ticket.CounsellorID, &ticket.Status, &ticket.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, fmt.Errorf("error retrieving ticket: %w", err)
	}

	return ticket, nil
}

// GetWithMessages retrieves a ticket and its ordered message list
func (r *TicketRepository) GetWithMessages(ctx context.Context, id int64) (*models.Ticket, error) {
	ticket, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, ticket_id, body, created_at
		FROM ticket_messages
		WHERE ticket_id = $1
		ORDER BY created_at, id`,
		id)
	if err != nil {
		return nil, fmt.Errorf("error listing ticket messages: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		msg := models.TicketMessage{}
		if err := rows.Scan(&msg.ID, &msg.TicketID, &msg.Body, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning ticket message: %w", err)
		}
		ticket.Messages = append(ticket.Messages, msg)
	}

	return ticket, rows.Err()
}

// AppendMessage appends one message to a ticket. Appending always succeeds
// for an existing ticket, open or closed.
func (r *TicketRepository) AppendMessage(ctx context.Context, ticketID int64, body string) (*models.TicketMessage, error) {
	msg := &models.TicketMessage{TicketID: ticketID, Body: body}
	err := r.db.QueryRow(ctx, `
		INSERT INTO ticket_messages (ticket_id, body)
		VALUES ($1, $2)
		RETURNING id, created_at`,
		ticketID, body).Scan(&msg.ID, &msg.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("error appending ticket message: %w", err)
	}
	return msg, nil
}

// Close transitions an open ticket to closed. The guarded update makes the
// one-way rule hold even under concurrent close attempts: zero rows affected
// on an existing ticket means it was already closed.
func (r *TicketRepository) Close(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE tickets
		SET status = $1
		WHERE id = $2 AND status = $3`,
		models.TicketStatusClosed, id, models.TicketStatusOpen)
	if err != nil {
		return fmt.Errorf("error closing ticket: %w", err)
	}

	if tag.RowsAffected() == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return apperrors.ErrTicketAlreadyClosed
	}

	return nil
}

// Assign sets the ticket's counsellor
func (r *TicketRepository) Assign(ctx context.Context, ticketID, counsellorID int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE tickets
		SET counsellor_id = $1
		WHERE id = $2`,
		counsellorID, ticketID)
	if err != nil {
		return fmt.Errorf("error assigning ticket: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrTicketNotFound
	}
	return nil
}

// ListByStudent retrieves a student's tickets, newest first
func (r *TicketRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Ticket, error) {
	return r.list(ctx, `
		SELECT id, student_id, counsellor_id, status, created_at
		FROM tickets
		WHERE student_id = $1
		ORDER BY created_at DESC`, studentID)
}

// ListByCounsellor retrieves tickets assigned to a counsellor, newest first
func (r *TicketRepository) ListByCounsellor(ctx context.Context, counsellorID int64) ([]*models.Ticket, error) {
	return r.list(ctx, `
		SELECT id, student_id, counsellor_id, status, created_at
		FROM tickets
		WHERE counsellor_id = $1
		ORDER BY created_at DESC`, counsellorID)
}

func (r *TicketRepository) list(ctx context.Context, query string, arg int64) ([]*models.Ticket, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("error listing tickets: %w", err)
	}
	defer rows.Close()

	var tickets []*models.Ticket
	for rows.Next() {
		ticket := &models.Ticket{}
		if err := rows.Scan(&ticket.ID, &ticket.StudentID, &ticket.CounsellorID, &ticket.Status, &ticket.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning ticket: %w", err)
		}
		tickets = append(tickets, ticket)
	}

	return tickets, rows.Err()
}
