package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deniz/campuscare/internal/app/models"
)

// StudentRepository handles student detail rows
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

// CreateDetail inserts the student detail row within the registration transaction
func (r *StudentRepository) CreateDetail(ctx context.Context, tx pgx.Tx, detail *models.StudentDetail) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO student_details (user_id, course_enrollments)
		VALUES ($1, $2)`,
		detail.UserID, detail.CourseEnrollments)
	if err != nil {
		return fmt.Errorf("error creating student detail: %w", err)
	}
	return nil
}

// GetByUserID retrieves the student detail for a user, nil when absent
func (r *StudentRepository) GetByUserID(ctx context.Context, userID int64) (*models.StudentDetail, error) {
	detail := &models.StudentDetail{}
	err := r.db.QueryRow(ctx, `
		SELECT user_id, course_enrollments
		FROM student_details
		WHERE user_id = $1`,
		userID).Scan(&detail.UserID, &detail.CourseEnrollments)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving student detail: %w", err)
	}

	return detail, nil
}

// UpdateEnrollments replaces the ordered course enrollment list
func (r *StudentRepository) UpdateEnrollments(ctx context.Context, userID int64, enrollments []string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE student_details
		SET course_enrollments = $1
		WHERE user_id = $2`,
		enrollments, userID)
	if err != nil {
		return fmt.Errorf("error updating enrollments: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("student detail not found for user %d", userID)
	}
	return nil
}
