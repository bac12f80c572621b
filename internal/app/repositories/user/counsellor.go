package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deniz/campuscare/internal/app/models"
)

// CounsellorRepository handles counsellor detail rows
type CounsellorRepository struct {
	db *pgxpool.Pool
}

// NewCounsellorRepository creates a new CounsellorRepository
func NewCounsellorRepository(db *pgxpool.Pool) *CounsellorRepository {
	return &CounsellorRepository{db: db}
}

// CreateDetail inserts the counsellor detail row within the registration transaction
func (r *CounsellorRepository) CreateDetail(ctx context.Context, tx pgx.Tx, detail *models.CounsellorDetail) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO counsellor_details (user_id, specialisation)
		VALUES ($1, $2)`,
		detail.UserID, detail.Specialisation)
	if err != nil {
		return fmt.Errorf("error creating counsellor detail: %w", err)
	}
	return nil
}

// GetByUserID retrieves the counsellor detail for a user, nil when absent
func (r *CounsellorRepository) GetByUserID(ctx context.Context, userID int64) (*models.CounsellorDetail, error) {
	detail := &models.CounsellorDetail{}
	err := r.db.QueryRow(ctx, `
		SELECT user_id, specialisation
		FROM counsellor_details
		WHERE user_id = $1`,
		userID).Scan(&detail.UserID, &detail.Specialisation)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving counsellor detail: %w", err)
	}

	return detail, nil
}
