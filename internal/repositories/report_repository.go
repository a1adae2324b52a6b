package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "uobsurvey/internal/models/db_models"
	"uobsurvey/pkg/utils"
)

type ReportRepository interface {
	SaveReport(ctx context.Context, report *dbm.AssessmentReport) error
	LatestReport(ctx context.Context, submissionID uuid.UUID) (*dbm.AssessmentReport, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) SaveReport(ctx context.Context, report *dbm.AssessmentReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *reportRepository) LatestReport(ctx context.Context, submissionID uuid.UUID) (*dbm.AssessmentReport, error) {
	var report dbm.AssessmentReport
	err := r.db.WithContext(ctx).
		Where("submission_id = ?", submissionID).
		Order("generated_at DESC, created_at DESC").
		First(&report).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrReportNotFound
		}
		return nil, err
	}
	return &report, nil
}
