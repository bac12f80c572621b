package dto

import "github.com/deniz/campuscare/internal/app/models"

// CreateReviewRequest is the review submission payload. Feature must be one
// of the known choices and stars in 1..5; both are checked at this boundary.
type CreateReviewRequest struct {
	Feature string `json:"feature" binding:"required"`
	Text    string `json:"text"`
	Stars   int    `json:"stars" binding:"required"`
}

// ReviewResponse is the review view
type ReviewResponse struct {
	ID      int64   `json:"id"`
	Feature string  `json:"feature"`
	Text    *string `json:"text,omitempty"`
	Stars   int     `json:"stars"`
	UserID  *int64  `json:"userId,omitempty"`
}

// NewReviewResponse maps a review model to its view
func NewReviewResponse(review *models.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:      review.ID,
		Feature: review.Feature,
		Text:    review.Text,
		Stars:   review.Stars,
		UserID:  review.UserID,
	}
}
