package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deniz/campuscare/internal/app/models"
	"github.com/deniz/campuscare/internal/app/models/dto"
	"github.com/deniz/campuscare/internal/db"
	"github.com/deniz/campuscare/internal/pkg/apperrors"
)

// ConversationRepository handles conversations and their message logs
type ConversationRepository struct {
	db *pgxpool.Pool
}

// NewConversationRepository creates a new ConversationRepository
func NewConversationRepository(db *pgxpool.Pool) *ConversationRepository {
	return &ConversationRepository{db: db}
}

// Create opens a new conversation for a user
func (r *ConversationRepository) Create(ctx context.Context, userID int64) (*models.Conversation, error) {
	conv := &models.Conversation{UserID: userID}
	err := r.db.QueryRow(ctx, `
		INSERT INTO conversations (user_id)
		VALUES ($1)
		RETURNING id, created_at`,
		userID).Scan(&conv.ID, &conv.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("error creating conversation: %w", err)
	}
	return conv, nil
}

// GetByID retrieves a conversation
func (r *ConversationRepository) GetByID(ctx context.Context, id int64) (*models.Conversation, error) {
	conv := &models.Conversation{}
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, created_at
		FROM conversations
		WHERE id = $1`,
		id).Scan(&conv.ID, &conv.UserID, &conv.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrConversationNotFound
		}
		return nil, fmt.Errorf("error retrieving conversation: %w", err)
	}

	return conv, nil
}

// AppendExchange appends the user prompt and the bot reply to a conversation
// in one transaction: a logged exchange is always both messages or neither.
// The bot message carries no sender reference.
func (r *ConversationRepository) AppendExchange(ctx context.Context, conversationID, senderID int64, prompt, reply string) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO messages (conversation_id, role, sender_id, content)
			VALUES ($1, $2, $3, $4)`,
			conversationID, models.MessageRoleUser, senderID, prompt)
		if err != nil {
			return fmt.Errorf("error appending user message: %w", err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO messages (conversation_id, role, sender_id, content)
			VALUES ($1, $2, NULL, $3)`,
			conversationID, models.MessageRoleBot, reply)
		if err != nil {
			return fmt.Errorf("error appending bot message: %w", err)
		}

		return nil
	})
}

// ListMessages retrieves a conversation's message log with optional filters,
// oldest first.
func (r *ConversationRepository) ListMessages(ctx context.Context, conversationID int64, filter *dto.ListMessagesRequest) ([]*models.Message, error) {
	builder := squirrel.Select("id", "conversation_id", "role", "sender_id", "content", "created_at").
		From("messages").
		Where(squirrel.Eq{"conversation_id": conversationID}).
		OrderBy("created_at ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filter != nil {
		if filter.Before != nil {
			builder = builder.Where(squirrel.Lt{"created_at": *filter.Before})
		}
		if filter.After != nil {
			builder = builder.Where(squirrel.Gt{"created_at": *filter.After})
		}
		if filter.Role != "" {
			builder = builder.Where(squirrel.Eq{"role": filter.Role})
		}
		if filter.Limit > 0 {
			builder = builder.Limit(uint64(filter.Limit))
		}
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building message query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing messages: %w", err)
	}
	defer rows.Close()

	var messages []*models.Message
	for rows.Next() {
		m := &models.Message{}
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.Role, &m.SenderID, &m.Content, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning message: %w", err)
		}
		messages = append(messages, m)
	}

	return messages, rows.Err()
}

// DeleteAllForUser removes every conversation a user owns; messages cascade
func (r *ConversationRepository) DeleteAllForUser(ctx context.Context, userID int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM conversations WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("error deleting conversations: %w", err)
	}
	return tag.RowsAffected(), nil
}
