package controllers_fx

import (
	"go.uber.org/fx"

	"uobsurvey/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewSurveyController),
	fx.Provide(controllers.NewSubmissionController),
	fx.Provide(controllers.NewDashboardController))
