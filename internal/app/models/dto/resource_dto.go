package dto

import (
	"time"

	"github.com/deniz/campuscare/internal/app/models"
)

// UpdateResourceRequest replaces a resource's title and description
type UpdateResourceRequest struct {
	Title       string `json:"title" binding:"required,max=256"`
	Description string `json:"description" binding:"required"`
}

// ResourceResponse is the resource view
type ResourceResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// NewResourceResponse maps a resource model to its view
func NewResourceResponse(resource *models.Resource) *ResourceResponse {
	return &ResourceResponse{
		ID:          resource.ID,
		Title:       resource.Title,
		Description: resource.Description,
		LastUpdated: resource.LastUpdated,
	}
}
