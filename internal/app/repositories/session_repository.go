package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deniz/campuscare/internal/app/models"
	"github.com/deniz/campuscare/internal/pkg/apperrors"
)

// SessionRepository handles counselling session persistence
type SessionRepository struct {
	db *pgxpool.Pool
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create schedules a session between a student and a counsellor
func (r *SessionRepository) Create(ctx context.Context, studentID, counsellorID int64, dateTime time.Time) (*models.CounsellingSession, error) {
	session := &models.CounsellingSession{
		StudentID:    studentID,
		CounsellorID: counsellorID,
		DateTime:     dateTime,
		Status:       models.SessionStatusScheduled,
	}

	err := r.db.QueryRow(ctx, `
		INSERT INTO counselling_sessions (student_id, counsellor_id, date_time, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		studentID, counsellorID, dateTime, models.SessionStatusScheduled).Scan(&session.ID)
	if err != nil {
		return nil, fmt.Errorf("error creating counselling session: %w", err)
	}

	return session, nil
}

// GetByID retrieves a session
func (r *SessionRepository) GetByID(ctx context.Context, id int64) (*models.CounsellingSession, error) {
	session := &models.CounsellingSession{}
	err := r.db.QueryRow(ctx, `
		SELECT id, student_id, counsellor_id, date_time, status
		FROM counselling_sessions
		WHERE id = $1`,
		id).Scan(&session.ID, &session.StudentID, &session.CounsellorID, &session.DateTime, &session.Status)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, fmt.Errorf("error retrieving counselling session: %w", err)
	}

	return session, nil
}

// UpdateStatus persists a session's status
func (r *SessionRepository) UpdateStatus(ctx context.Context, id int64, status models.SessionStatus) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE counselling_sessions
		SET status = $1
		WHERE id = $2`,
		status, id)
	if err != nil {
		return fmt.Errorf("error updating session status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrSessionNotFound
	}
	return nil
}

// ListByStudent retrieves a student's sessions ordered by date
func (r *SessionRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.CounsellingSession, error) {
	return r.list(ctx, `
		SELECT id, student_id, counsellor_id, date_time, status
		FROM counselling_sessions
		WHERE student_id = $1
		ORDER BY date_time`, studentID)
}

// ListByCounsellor retrieves a counsellor's sessions ordered by date
func (r *SessionRepository) ListByCounsellor(ctx context.Context, counsellorID int64) ([]*models.CounsellingSession, error) {
	return r.list(ctx, `
		SELECT id, student_id, counsellor_id, date_time, status
		FROM counselling_sessions
		WHERE counsellor_id = $1
		ORDER BY date_time`, counsellorID)
}

func (r *SessionRepository) list(ctx context.Context, query string, arg int64) ([]*models.CounsellingSession, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("error listing counselling sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*models.CounsellingSession
	for rows.Next() {
		session := &models.CounsellingSession{}
		if err := rows.Scan(&session.ID, &session.StudentID, &session.CounsellorID, &session.DateTime, &session.Status); err != nil {
			return nil, fmt.Errorf("error scanning counselling session: %w", err)
		}
		sessions = append(sessions, session)
	}

	return sessions, rows.Err()
}
