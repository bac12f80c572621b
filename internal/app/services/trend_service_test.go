package services

import (
	"context"
	"testing"

	"github.com/deniz/campuscare/internal/app/models"
	"github.com/deniz/campuscare/internal/pkg/querylog"
)

type stubReviewLister struct {
	reviews []*models.Review
}

func (s *stubReviewLister) GetAll(ctx context.Context) ([]*models.Review, error) {
	return s.reviews, nil
}

func TestBuildReportAverages(t *testing.T) {
	lister := &stubReviewLister{reviews: []*models.Review{
		{Stars: 2},
		{Stars: 4},
	}}
	svc := NewTrendService(lister, querylog.New())

	report, err := svc.BuildReport(context.Background())
	if err != nil {
		t.Fatalf("BuildReport() error: %v", err)
	}
	if report.AvgScore != 3.0 {
		t.Fatalf("AvgScore = %v, want 3.0", report.AvgScore)
	}
	if report.TotalRatings != 2 {
		t.Fatalf("TotalRatings = %d, want 2", report.TotalRatings)
	}
}

func TestBuildReportEmpty(t *testing.T) {
	svc := NewTrendService(&stubReviewLister{}, querylog.New())

	report, err := svc.BuildReport(context.Background())
	if err != nil {
		t.Fatalf("BuildReport() error: %v", err)
	}
	if report.AvgScore != 0 {
		t.Fatalf("AvgScore = %v, want 0 for empty collection", report.AvgScore)
	}
	if report.TotalRatings != 0 {
		t.Fatalf("TotalRatings = %d, want 0", report.TotalRatings)
	}
	if len(report.CommonQueries) != 0 {
		t.Fatalf("CommonQueries has %d entries, want 0", len(report.CommonQueries))
	}
}

func TestBuildReportCommonQueries(t *testing.T) {
	log := querylog.New()
	log.Append("exam dates")
	log.Append("library hours")
	log.Append("exam dates")
	svc := NewTrendService(&stubReviewLister{}, log)

	report, err := svc.BuildReport(context.Background())
	if err != nil {
		t.Fatalf("BuildReport() error: %v", err)
	}
	if len(report.CommonQueries) != 2 {
		t.Fatalf("CommonQueries has %d entries, want 2", len(report.CommonQueries))
	}
	if report.CommonQueries[0].Text != "exam dates" || report.CommonQueries[0].Count != 2 {
		t.Fatalf("top query = %+v, want {exam dates 2}", report.CommonQueries[0])
	}
}
