package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/deniz/campuscare/internal/app/models"
	"github.com/deniz/campuscare/internal/app/models/dto"
	"github.com/deniz/campuscare/internal/app/repositories"
	"github.com/deniz/campuscare/internal/pkg/apperrors"
	"github.com/deniz/campuscare/internal/pkg/validation"
)

// ReviewService handles review submission and moderation
type ReviewService struct {
	reviewRepo *repositories.ReviewRepository
	logger     zerolog.Logger
}

// NewReviewService creates a new ReviewService
func NewReviewService(reviewRepo *repositories.ReviewRepository, logger zerolog.Logger) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		logger:     logger,
	}
}

// Create validates and stores a review. Feature and stars are checked here
// at the input boundary, the store trusts them.
func (s *ReviewService) Create(ctx context.Context, userID int64, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if !validation.IsValidFeature(req.Feature) {
		return nil, apperrors.NewValidationError("unknown feature choice: " + req.Feature)
	}
	if !validation.IsValidStars(req.Stars) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("stars must be between %d and %d", validation.StarsMin, validation.StarsMax))
	}

	review := &models.Review{
		Feature: req.Feature,
		Stars:   req.Stars,
		UserID:  &userID,
	}
	if text := strings.TrimSpace(req.Text); text != "" {
		review.Text = &text
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("reviewID", review.ID).Str("feature", review.Feature).Msg("Review submitted")
	return dto.NewReviewResponse(review), nil
}

// GetAll returns every review, newest first
func (s *ReviewService) GetAll(ctx context.Context) ([]*dto.ReviewResponse, error) {
	reviews, err := s.reviewRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		responses = append(responses, dto.NewReviewResponse(review))
	}
	return responses, nil
}

// Delete removes a review, used by the admin moderation surface
func (s *ReviewService) Delete(ctx context.Context, id int64) error {
	if err := s.reviewRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("reviewID", id).Msg("Review deleted")
	return nil
}
