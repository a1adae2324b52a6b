package services

import (
	"context"
	"fmt"
	"time"

	resp "uobsurvey/internal/models/response_models"
	"uobsurvey/internal/repositories"
	"uobsurvey/pkg/utils"
)

const recentSubmissionsLimit = 5

type DashboardService interface {
	BuildDashboard(ctx context.Context, rng resp.TimeRange) (*resp.DashboardReport, error)
}

type dashboardService struct {
	repo        repositories.DashboardRepository
	submissions repositories.SubmissionRepository
}

func NewDashboardService(repo repositories.DashboardRepository, submissions repositories.SubmissionRepository) DashboardService {
	return &dashboardService{repo: repo, submissions: submissions}
}

// normalizeRange ensures sane defaults and ordering
func normalizeRange(r resp.TimeRange) resp.TimeRange {
	out := r
	if out.Interval == "" {
		out.Interval = "day"
	}
	if out.End.IsZero() {
		out.End = time.Now().UTC()
	}
	if out.Start.IsZero() {
		out.Start = out.End.AddDate(0, 0, -30) // last 30 days default
	}
	if out.Start.After(out.End) {
		out.Start, out.End = out.End, out.Start
	}
	return out
}

func toCountSeries(rows []repositories.BucketSum) resp.CountSeries {
	series := resp.CountSeries{Points: make([]resp.SeriesPoint, 0, len(rows))}
	for _, r := range rows {
		series.Points = append(series.Points, resp.SeriesPoint{Bucket: r.Bucket, Value: r.Sum})
		series.Total += r.Sum
	}
	return series
}

func (s *dashboardService) BuildDashboard(ctx context.Context, rng resp.TimeRange) (*resp.DashboardReport, error) {
	rng = normalizeRange(rng)

	// ---------- Core counts ----------
	total, err := s.submissions.Count(ctx)
	if err != nil {
		return nil, dbErr("counting submissions", err)
	}
	newSubmissions, err := s.repo.CountNewSubmissions(ctx, rng.Start, rng.End)
	if err != nil {
		return nil, dbErr("counting new submissions", err)
	}
	totalReports, err := s.repo.CountTotalReports(ctx)
	if err != nil {
		return nil, dbErr("counting reports", err)
	}
	reported, err := s.repo.CountReportedSubmissions(ctx)
	if err != nil {
		return nil, dbErr("counting reported submissions", err)
	}

	statusRows, err := s.submissions.CountByStatus(ctx)
	if err != nil {
		return nil, dbErr("counting by status", err)
	}
	byStatus := make([]resp.StatusCount, 0, len(statusRows))
	for _, r := range statusRows {
		byStatus = append(byStatus, resp.StatusCount{Status: r.Status, Count: r.Count})
	}

	// ---------- Series ----------
	submissionRows, err := s.repo.SubmissionsSeries(ctx, rng.Start, rng.End, rng.Interval, rng.Timezone)
	if err != nil {
		return nil, dbErr("submission series", err)
	}
	reportRows, err := s.repo.ReportsSeries(ctx, rng.Start, rng.End, rng.Interval, rng.Timezone)
	if err != nil {
		return nil, dbErr("report series", err)
	}

	// ---------- Recent ----------
	recentRows, err := s.repo.RecentSubmissions(ctx, recentSubmissionsLimit)
	if err != nil {
		return nil, dbErr("recent submissions", err)
	}
	recent := make([]resp.SubmissionSummary, 0, len(recentRows))
	for i := range recentRows {
		recent = append(recent, toSubmissionSummary(&recentRows[i]))
	}

	var coverage float64
	if total > 0 {
		coverage = float64(reported) * 100 / float64(total)
	}

	return &resp.DashboardReport{
		Range: rng,
		KPIs: resp.KPIBlock{
			TotalSubmissions:    total,
			NewSubmissions:      newSubmissions,
			TotalReports:        totalReports,
			ReportedSubmissions: reported,
			ReportCoveragePct:   coverage,
		},
		ByStatus:          byStatus,
		Submissions:       toCountSeries(submissionRows),
		Reports:           toCountSeries(reportRows),
		RecentSubmissions: recent,
	}, nil
}

func dbErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", utils.ErrDatabaseError, op, err)
}
