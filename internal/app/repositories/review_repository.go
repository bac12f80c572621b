package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deniz/campuscare/internal/app/models"
	"github.com/deniz/campuscare/internal/pkg/apperrors"
)

// ReviewRepository handles review persistence. The store itself does not
// validate the stars range; that happens at the input boundary.
type ReviewRepository struct {
	db *pgxpool.Pool
}

// NewReviewRepository creates a new ReviewRepository
func NewReviewRepository(db *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create inserts a review
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO reviews (feature, text, stars, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		review.Feature, review.Text, review.Stars, review.UserID).Scan(&review.ID)
	if err != nil {
		return fmt.Errorf("error creating review: %w", err)
	}
	return nil
}

// GetAll retrieves every review
func (r *ReviewRepository) GetAll(ctx context.Context) ([]*models.Review, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, feature, text, stars, user_id
		FROM reviews
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error listing reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*models.Review
	for rows.Next() {
		review := &models.Review{}
		if err := rows.Scan(&review.ID, &review.Feature, &review.Text, &review.Stars, &review.UserID); err != nil {
			return nil, fmt.Errorf("error scanning review: %w", err)
		}
		reviews = append(reviews, review)
	}

	return reviews, rows.Err()
}

// Delete removes a review
func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrReviewNotFound
	}
	return nil
}
