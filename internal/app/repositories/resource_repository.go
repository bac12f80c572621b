package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deniz/campuscare/internal/app/models"
	"github.com/deniz/campuscare/internal/pkg/apperrors"
)

// ResourceRepository handles support resource persistence
type ResourceRepository struct {
	db *pgxpool.Pool
}

// NewResourceRepository creates a new ResourceRepository
func NewResourceRepository(db *pgxpool.Pool) *ResourceRepository {
	return &ResourceRepository{db: db}
}

// Create inserts a resource
func (r *ResourceRepository) Create(ctx context.Context, resource *models.Resource) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO resources (title, description)
		VALUES ($1, $2)
		RETURNING id, last_updated`,
		resource.Title, resource.Description).Scan(&resource.ID, &resource.LastUpdated)
	if err != nil {
		return fmt.Errorf("error creating resource: %w", err)
	}
	return nil
}

// GetByID retrieves a resource
func (r *ResourceRepository) GetByID(ctx context.Context, id int64) (*models.Resource, error) {
	resource := &models.Resource{}
	err := r.db.QueryRow(ctx, `
		SELECT id, title, description, last_updated
		FROM resources
		WHERE id = $1`,
		id).Scan(&resource.ID, &resource.Title, &resource.Description, &resource.LastUpdated)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving resource: %w", err)
	}

	return resource, nil
}

// GetAll retrieves every resource
func (r *ResourceRepository) GetAll(ctx context.Context) ([]*models.Resource, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, description, last_updated
		FROM resources
		ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("error listing resources: %w", err)
	}
	defer rows.Close()

	var resources []*models.Resource
	for rows.Next() {
		resource := &models.Resource{}
		if err := rows.Scan(&resource.ID, &resource.Title, &resource.Description, &resource.LastUpdated); err != nil {
			return nil, fmt.Errorf("error scanning resource: %w", err)
		}
		resources = append(resources, resource)
	}

	return resources, rows.Err()
}

// Update replaces title and description and refreshes last_updated
func (r *ResourceRepository) Update(ctx context.Context, resource *models.Resource) error {
	err := r.db.QueryRow(ctx, `
		UPDATE resources
		SET title = $1, description = $2, last_updated = CURRENT_TIMESTAMP
		WHERE id = $3
		RETURNING last_updated`,
		resource.Title, resource.Description, resource.ID).Scan(&resource.LastUpdated)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrResourceNotFound
		}
		return fmt.Errorf("error updating resource: %w", err)
	}

	return nil
}
