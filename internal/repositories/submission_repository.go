package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbm "uobsurvey/internal/models/db_models"
	"uobsurvey/pkg/utils"
)

type SubmissionRepository interface {
	Save(ctx context.Context, submission *dbm.SurveySubmission) (uuid.UUID, error)
	List(ctx context.Context, limit int, newestFirst bool) ([]dbm.SurveySubmission, error)
	FindByID(ctx context.Context, id uuid.UUID) (*dbm.SurveySubmission, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) ([]StatusRow, error)
}

type StatusRow struct {
	Status string `gorm:"column:status"`
	Count  int64  `gorm:"column:count"`
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

// Save inserts the submission, or updates it when the id already exists so
// a retried submit never creates a duplicate row.
func (r *submissionRepository) Save(ctx context.Context, submission *dbm.SurveySubmission) (uuid.UUID, error) {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(submission).Error
	if err != nil {
		return uuid.Nil, err
	}
	return submission.ID, nil
}

func (r *submissionRepository) List(ctx context.Context, limit int, newestFirst bool) ([]dbm.SurveySubmission, error) {
	order := "submitted_at ASC"
	if newestFirst {
		order = "submitted_at DESC"
	}

	var rows []dbm.SurveySubmission
	err := r.db.WithContext(ctx).
		Order(order).
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *submissionRepository) FindByID(ctx context.Context, id uuid.UUID) (*dbm.SurveySubmission, error) {
	var submission dbm.SurveySubmission
	err := r.db.WithContext(ctx).First(&submission, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrSubmissionNotFound
		}
		return nil, err
	}
	return &submission, nil
}

// Delete soft-deletes the submission together with its reports.
func (r *submissionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&dbm.SurveySubmission{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return utils.ErrSubmissionNotFound
		}
		return tx.Where("submission_id = ?", id).Delete(&dbm.AssessmentReport{}).Error
	})
}

func (r *submissionRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.SurveySubmission{}).Count(&n).Error
	return n, err
}

func (r *submissionRepository) CountByStatus(ctx context.Context) ([]StatusRow, error) {
	var rows []StatusRow
	err := r.db.WithContext(ctx).
		Model(&dbm.SurveySubmission{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Order("count DESC").
		Find(&rows).Error
	return rows, err
}
