package config_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"uobsurvey/internal/config"
	"uobsurvey/pkg/logger"
)

var Module = fx.Provide(
	provideConfig, provideLogger)

func provideConfig() *config.Config {
	return config.Load()
}

func provideLogger(lc fx.Lifecycle, cfg *config.Config) *zap.Logger {
	l := logger.New(cfg.App.LogFilePath, cfg.IsProduction())
	lc.Append(fx.StopHook(func() {
		_ = l.Sync()
	}))
	return l
}
