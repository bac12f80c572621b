package dto

import "github.com/deniz/campuscare/internal/pkg/querylog"

// TrendReportResponse carries the derived read-only statistics.
// AvgScore is an explicit zero for an empty review collection.
type TrendReportResponse struct {
	AvgScore      float64               `json:"avg_score"`
	TotalRatings  int                   `json:"total_ratings"`
	CommonQueries []querylog.QueryCount `json:"common_queries"`
}
