package db_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"uobsurvey/internal/config"
	"uobsurvey/internal/infra"
	"uobsurvey/pkg/logger"
)

var Module = fx.Provide(
	provideDB)

func provideDB(lc fx.Lifecycle, cfg *config.Config, l *zap.Logger) (*gorm.DB, error) {
	dbLogger := logger.Module(l, "db")
	db, err := infra.InitPostgresql(cfg.Database, dbLogger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(func() {
		infra.ClosePostgresql(db, dbLogger)
	}))
	return db, nil
}
