package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/deniz/campuscare/internal/app/models"
	"github.com/deniz/campuscare/internal/app/models/dto"
	"github.com/deniz/campuscare/internal/app/repositories"
)

// ResourceService handles the self-help resource catalogue
type ResourceService struct {
	resourceRepo *repositories.ResourceRepository
	logger       zerolog.Logger
}

// NewResourceService creates a new ResourceService
func NewResourceService(resourceRepo *repositories.ResourceRepository, logger zerolog.Logger) *ResourceService {
	return &ResourceService{
		resourceRepo: resourceRepo,
		logger:       logger,
	}
}

// GetAll returns the catalogue, most recently updated first
func (s *ResourceService) GetAll(ctx context.Context) ([]*dto.ResourceResponse, error) {
	resources, err := s.resourceRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ResourceResponse, 0, len(resources))
	for _, resource := range resources {
		responses = append(responses, dto.NewResourceResponse(resource))
	}
	return responses, nil
}

// Get returns one resource
func (s *ResourceService) Get(ctx context.Context, id int64) (*dto.ResourceResponse, error) {
	resource, err := s.resourceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewResourceResponse(resource), nil
}

// Update replaces a resource's title and description, refreshing its
// last-updated timestamp
func (s *ResourceService) Update(ctx context.Context, id int64, req *dto.UpdateResourceRequest) (*dto.ResourceResponse, error) {
	resource := &models.Resource{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
	}

	if err := s.resourceRepo.Update(ctx, resource); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("resourceID", id).Msg("Resource updated")
	return dto.NewResourceResponse(resource), nil
}
