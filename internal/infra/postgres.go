package infra

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"uobsurvey/internal/config"
	dbm "uobsurvey/internal/models/db_models"
)

func InitPostgresql(cfg config.DatabaseConfig, logger *zap.Logger) (*gorm.DB, error) {
	if cfg.Connection == "" {
		return nil, errors.New("POSTGRES_URL is not set")
	}

	connectionPool, err := gorm.Open(postgres.Open(cfg.Connection), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if cfg.AutoMigrate {
		if err := connectionPool.AutoMigrate(dbm.AllModels()...); err != nil {
			return nil, fmt.Errorf("migrating schema: %w", err)
		}
		logger.Info("database schema migrated")
	}

	return connectionPool, nil
}

func ClosePostgresql(db *gorm.DB, logger *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("getting database instance", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Error("closing database connection", zap.Error(err))
	} else {
		logger.Info("PostgreSQL database connection closed")
	}
}
