package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	resp "uobsurvey/internal/models/response_models"
	"uobsurvey/internal/repositories"
	"uobsurvey/pkg/utils"
)

const (
	SortNewest = "newest"
	SortOldest = "oldest"

	MinListLimit = 1
	MaxListLimit = 100
)

type SubmissionServiceInterface interface {
	ListSubmissions(ctx context.Context, limit int, sort string) ([]resp.SubmissionSummary, error)
	GetSubmission(ctx context.Context, id string) (*resp.SubmissionDetail, error)
	DeleteSubmission(ctx context.Context, id string) error
}

type SubmissionService struct {
	repo   repositories.SubmissionRepository
	logger *zap.Logger
}

func NewSubmissionService(repo repositories.SubmissionRepository, logger *zap.Logger) SubmissionServiceInterface {
	return &SubmissionService{repo: repo, logger: logger}
}

func (s *SubmissionService) ListSubmissions(ctx context.Context, limit int, sort string) ([]resp.SubmissionSummary, error) {
	if limit < MinListLimit || limit > MaxListLimit {
		return nil, fmt.Errorf("limit %d: %w", limit, utils.ErrInvalidLimit)
	}

	var newestFirst bool
	switch sort {
	case SortNewest:
		newestFirst = true
	case SortOldest:
		newestFirst = false
	default:
		return nil, fmt.Errorf("sort %q: %w", sort, utils.ErrInvalidSortOrder)
	}

	rows, err := s.repo.List(ctx, limit, newestFirst)
	if err != nil {
		return nil, fmt.Errorf("%w: listing submissions: %w", utils.ErrDatabaseError, err)
	}

	out := make([]resp.SubmissionSummary, 0, len(rows))
	for i := range rows {
		out = append(out, toSubmissionSummary(&rows[i]))
	}
	return out, nil
}

func (s *SubmissionService) GetSubmission(ctx context.Context, id string) (*resp.SubmissionDetail, error) {
	subID, err := parseSubmissionID(id)
	if err != nil {
		return nil, err
	}

	row, err := s.repo.FindByID(ctx, subID)
	if err != nil {
		return nil, wrapRepoErr(err, "loading submission")
	}
	out := toSubmissionDetail(row)
	return &out, nil
}

func (s *SubmissionService) DeleteSubmission(ctx context.Context, id string) error {
	subID, err := parseSubmissionID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, subID); err != nil {
		return wrapRepoErr(err, "deleting submission")
	}
	s.logger.Info("submission deleted", zap.String("submission_id", id))
	return nil
}

// wrapRepoErr passes domain sentinels through and marks anything else as a
// database failure.
func wrapRepoErr(err error, op string) error {
	if errors.Is(err, utils.ErrSubmissionNotFound) || errors.Is(err, utils.ErrReportNotFound) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", utils.ErrDatabaseError, op, err)
}
