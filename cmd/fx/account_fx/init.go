package account_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"uobsurvey/internal/config"
	"uobsurvey/internal/services"
	"uobsurvey/pkg/logger"
)

var Module = fx.Provide(
	provideAccountService)

func provideAccountService(cfg *config.Config, l *zap.Logger) (services.AccountServiceInterface, error) {
	return services.NewAccountService(cfg.Auth, logger.Module(l, "accounts"))
}
