package submission_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"uobsurvey/internal/config"
	"uobsurvey/internal/repositories"
	"uobsurvey/internal/services"
	"uobsurvey/internal/survey"
	"uobsurvey/pkg/events"
	"uobsurvey/pkg/logger"
	mem "uobsurvey/pkg/memcache"
)

var Module = fx.Provide(
	provideSubmissionRepo, provideReportRepo,
	provideSurveyService, provideSubmissionService, provideReportService,
)

func provideSubmissionRepo(db *gorm.DB) repositories.SubmissionRepository {
	return repositories.NewSubmissionRepository(db)
}

func provideReportRepo(db *gorm.DB) repositories.ReportRepository {
	return repositories.NewReportRepository(db)
}

func provideSurveyService(
	sessions mem.Store[survey.Session],
	flow *survey.Controller,
	guide *survey.Guide,
	baseline survey.QuestionSet,
	submissions repositories.SubmissionRepository,
	publisher events.PublisherInterface,
	l *zap.Logger,
) services.SurveyServiceInterface {
	return services.NewSurveyService(sessions, flow, guide, baseline, submissions, publisher, logger.Module(l, "survey"))
}

func provideSubmissionService(repo repositories.SubmissionRepository, l *zap.Logger) services.SubmissionServiceInterface {
	return services.NewSubmissionService(repo, logger.Module(l, "submissions"))
}

func provideReportService(
	cfg *config.Config,
	submissions repositories.SubmissionRepository,
	reports repositories.ReportRepository,
	assembler *survey.Assembler,
	publisher events.PublisherInterface,
	l *zap.Logger,
) services.ReportServiceInterface {
	return services.NewReportService(submissions, reports, assembler, publisher, cfg.LLM.Provider, logger.Module(l, "reports"))
}
