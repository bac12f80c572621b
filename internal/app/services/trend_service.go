package services

import (
	"context"
	"fmt"

	"github.com/deniz/campuscare/internal/app/models"
	"github.com/deniz/campuscare/internal/app/models/dto"
	"github.com/deniz/campuscare/internal/pkg/querylog"
)

// commonQueryCount caps the trend report's frequent-query list
const commonQueryCount = 5

// ReviewLister is the read side of the review store the trend report needs.
// Satisfied by repositories.ReviewRepository.
type ReviewLister interface {
	GetAll(ctx context.Context) ([]*models.Review, error)
}

// TrendService derives read-only statistics from the reviews and the
// in-process chatbot query log
type TrendService struct {
	reviews  ReviewLister
	queryLog *querylog.Log
}

// NewTrendService creates a new TrendService
func NewTrendService(reviews ReviewLister, queryLog *querylog.Log) *TrendService {
	return &TrendService{
		reviews:  reviews,
		queryLog: queryLog,
	}
}

// BuildReport aggregates the star average, rating total and most frequent
// chatbot queries. An empty review collection yields an explicit zero
// average, not an error.
func (s *TrendService) BuildReport(ctx context.Context) (*dto.TrendReportResponse, error) {
	reviews, err := s.reviews.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading reviews for trend report: %w", err)
	}

	report := &dto.TrendReportResponse{
		TotalRatings:  len(reviews),
		CommonQueries: s.queryLog.Top(commonQueryCount),
	}

	if len(reviews) > 0 {
		sum := 0
		for _, review := range reviews {
			sum += review.Stars
		}
		report.AvgScore = float64(sum) / float64(len(reviews))
	}

	return report, nil
}
