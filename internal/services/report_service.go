package services

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	dbm "uobsurvey/internal/models/db_models"
	resp "uobsurvey/internal/models/response_models"
	"uobsurvey/internal/repositories"
	"uobsurvey/internal/survey"
	"uobsurvey/pkg/events"
	"uobsurvey/pkg/export"
)

type ReportServiceInterface interface {
	GenerateReport(ctx context.Context, submissionID string) (*resp.ReportResponse, error)
	LatestReport(ctx context.Context, submissionID string) (*resp.ReportResponse, error)
	ExportReport(ctx context.Context, submissionID, format string) (*ExportedReport, error)
}

type ExportedReport struct {
	FileName string
	export.Rendered
}

type ReportService struct {
	submissions repositories.SubmissionRepository
	reports     repositories.ReportRepository
	assembler   *survey.Assembler
	publisher   events.PublisherInterface
	provider    string
	logger      *zap.Logger
	now         func() time.Time
}

func NewReportService(
	submissions repositories.SubmissionRepository,
	reports repositories.ReportRepository,
	assembler *survey.Assembler,
	publisher events.PublisherInterface,
	provider string,
	logger *zap.Logger,
) ReportServiceInterface {
	return &ReportService{
		submissions: submissions,
		reports:     reports,
		assembler:   assembler,
		publisher:   publisher,
		provider:    provider,
		logger:      logger,
		now:         time.Now,
	}
}

// GenerateReport runs the four section prompts, formats the document and
// stores it as the submission's latest report. Any section failure aborts
// the whole report.
func (r *ReportService) GenerateReport(ctx context.Context, submissionID string) (*resp.ReportResponse, error) {
	subID, err := parseSubmissionID(submissionID)
	if err != nil {
		return nil, err
	}
	row, err := r.submissions.FindByID(ctx, subID)
	if err != nil {
		return nil, wrapRepoErr(err, "loading submission")
	}
	submission := toSubmission(row)

	start := r.now()
	sections, err := r.assembler.Assemble(ctx, submission)
	if err != nil {
		r.logger.Error("report generation failed", zap.String("submission_id", submissionID), zap.Error(err))
		return nil, err
	}

	generatedAt := r.now().UTC()
	report := &dbm.AssessmentReport{
		SubmissionID: subID,
		Sections:     datatypes.NewJSONType(sections),
		Markdown:     survey.FormatDocument(sections, submission, generatedAt),
		Provider:     r.provider,
		GeneratedAt:  generatedAt.Unix(),
	}
	if err := r.reports.SaveReport(ctx, report); err != nil {
		return nil, wrapRepoErr(err, "saving report")
	}

	r.logger.Info("report generated",
		zap.String("submission_id", submissionID),
		zap.String("report_id", report.ID.String()),
		zap.Duration("took", generatedAt.Sub(start)))

	err = r.publisher.Publish(ctx, events.TopicReportGenerated, events.ReportGenerated{
		SubmissionID: submissionID,
		ReportID:     report.ID.String(),
		Organization: submission.Organization,
		GeneratedAt:  generatedAt,
	})
	if err != nil {
		r.logger.Warn("publishing report event failed", zap.String("submission_id", submissionID), zap.Error(err))
	}

	out := toReportResponse(report)
	return &out, nil
}

func (r *ReportService) LatestReport(ctx context.Context, submissionID string) (*resp.ReportResponse, error) {
	subID, err := parseSubmissionID(submissionID)
	if err != nil {
		return nil, err
	}
	report, err := r.reports.LatestReport(ctx, subID)
	if err != nil {
		return nil, wrapRepoErr(err, "loading report")
	}
	out := toReportResponse(report)
	return &out, nil
}

func (r *ReportService) ExportReport(ctx context.Context, submissionID, format string) (*ExportedReport, error) {
	f, err := export.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	report, err := r.LatestReport(ctx, submissionID)
	if err != nil {
		return nil, err
	}

	rendered, err := export.Render(f, report.Markdown)
	if err != nil {
		return nil, err
	}
	return &ExportedReport{
		FileName: ReportFileName(submissionID, rendered.Extension),
		Rendered: rendered,
	}, nil
}
