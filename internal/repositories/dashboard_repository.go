package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	dbm "uobsurvey/internal/models/db_models"
)

type DashboardRepository interface {
	// KPIs / counts
	CountNewSubmissions(ctx context.Context, start, end time.Time) (int64, error)
	CountTotalReports(ctx context.Context) (int64, error)
	CountReportedSubmissions(ctx context.Context) (int64, error)

	// Time series
	SubmissionsSeries(ctx context.Context, start, end time.Time, interval, tz string) ([]BucketSum, error)
	ReportsSeries(ctx context.Context, start, end time.Time, interval, tz string) ([]BucketSum, error)

	RecentSubmissions(ctx context.Context, limit int) ([]dbm.SurveySubmission, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

// ---------- Row helpers ----------
type BucketSum struct {
	Bucket time.Time `gorm:"column:bucket"`
	Sum    int64     `gorm:"column:sum"`
}

// ---------- Helpers ----------
func dateTrunc(tz string, unixColumn string) string {
	// unixColumn holds UNIX seconds; e.g.
	// date_trunc('day', timezone('Asia/Singapore', to_timestamp(submitted_at)))
	if tz == "" {
		return "date_trunc(?, to_timestamp(" + unixColumn + "))"
	}
	return "date_trunc(?, timezone(?, to_timestamp(" + unixColumn + ")))"
}

func truncArgs(interval, tz string) []interface{} {
	if tz == "" {
		return []interface{}{interval}
	}
	return []interface{}{interval, tz}
}

// ---------- Counts ----------
func (r *dashboardRepository) CountNewSubmissions(ctx context.Context, start, end time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.SurveySubmission{}).
		Where("submitted_at BETWEEN ? AND ?", start.Unix(), end.Unix()).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountTotalReports(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.AssessmentReport{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountReportedSubmissions(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.AssessmentReport{}).
		Distinct("submission_id").
		Count(&n).Error
	return n, err
}

// ---------- Series ----------
func (r *dashboardRepository) SubmissionsSeries(ctx context.Context, start, end time.Time, interval, tz string) ([]BucketSum, error) {
	return r.series(ctx, "survey_submissions", "submitted_at", start, end, interval, tz)
}

func (r *dashboardRepository) ReportsSeries(ctx context.Context, start, end time.Time, interval, tz string) ([]BucketSum, error) {
	return r.series(ctx, "assessment_reports", "generated_at", start, end, interval, tz)
}

func (r *dashboardRepository) series(ctx context.Context, table, column string, start, end time.Time, interval, tz string) ([]BucketSum, error) {
	var rows []BucketSum
	truncExpr := dateTrunc(tz, column)
	tx := r.db.WithContext(ctx).
		Table(table).
		Select(truncExpr+" AS bucket, COUNT(*) AS sum", truncArgs(interval, tz)...).
		Where("deleted_at IS NULL").
		Where(column+" BETWEEN ? AND ?", start.Unix(), end.Unix()).
		Group("bucket").
		Order("bucket ASC")
	err := tx.Find(&rows).Error
	return rows, err
}

// ---------- Recent ----------
func (r *dashboardRepository) RecentSubmissions(ctx context.Context, limit int) ([]dbm.SurveySubmission, error) {
	var rows []dbm.SurveySubmission
	err := r.db.WithContext(ctx).
		Order("submitted_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
