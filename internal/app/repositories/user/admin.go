package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deniz/campuscare/internal/app/models"
)

// AdminRepository handles admin detail rows
type AdminRepository struct {
	db *pgxpool.Pool
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{db: db}
}

// CreateDetail inserts the admin detail row within the registration transaction
func (r *AdminRepository) CreateDetail(ctx context.Context, tx pgx.Tx, detail *models.AdminDetail) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO admin_details (user_id, admin_level)
		VALUES ($1, $2)`,
		detail.UserID, detail.AdminLevel)
	if err != nil {
		return fmt.Errorf("error creating admin detail: %w", err)
	}
	return nil
}

// GetByUserID retrieves the admin detail for a user, nil when absent
func (r *AdminRepository) GetByUserID(ctx context.Context, userID int64) (*models.AdminDetail, error) {
	detail := &models.AdminDetail{}
	err := r.db.QueryRow(ctx, `
		SELECT user_id, admin_level
		FROM admin_details
		WHERE user_id = $1`,
		userID).Scan(&detail.UserID, &detail.AdminLevel)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving admin detail: %w", err)
	}

	return detail, nil
}
