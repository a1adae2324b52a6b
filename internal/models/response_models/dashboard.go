package response_models

import (
	"time"
)

type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	// "day" | "week" | "month"
	Interval string `json:"interval"`
	// Optional: timezone used for bucketing (defaults to UTC if empty)
	Timezone string `json:"timezone,omitempty"`
}

type KPIBlock struct {
	TotalSubmissions int64 `json:"total_submissions"`
	NewSubmissions   int64 `json:"new_submissions"`
	TotalReports     int64 `json:"total_reports"`
	// Submissions that have at least one generated report.
	ReportedSubmissions int64   `json:"reported_submissions"`
	ReportCoveragePct   float64 `json:"report_coverage_pct"`
}

type SeriesPoint struct {
	Bucket time.Time `json:"bucket"`
	Value  int64     `json:"value"`
}

type CountSeries struct {
	Points []SeriesPoint `json:"points"`
	Total  int64         `json:"total"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type DashboardReport struct {
	Range             TimeRange           `json:"range"`
	KPIs              KPIBlock            `json:"kpis"`
	ByStatus          []StatusCount       `json:"by_status"`
	Submissions       CountSeries         `json:"submissions"`
	Reports           CountSeries         `json:"reports"`
	RecentSubmissions []SubmissionSummary `json:"recent_submissions"`
}
