package dashboard

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"uobsurvey/internal/repositories"
	"uobsurvey/internal/services"
)

var Module = fx.Provide(
	provideDashboardRepo, provideDashboardService,
)

func provideDashboardRepo(db *gorm.DB) repositories.DashboardRepository {
	return repositories.NewDashboardRepository(db)
}

func provideDashboardService(dashboardRepo repositories.DashboardRepository, submissionRepo repositories.SubmissionRepository) services.DashboardService {
	return services.NewDashboardService(dashboardRepo, submissionRepo)
}
