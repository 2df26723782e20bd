// Package sqlite contains the local persistence layer using GORM and SQLite.
package sqlite

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"automarket/config"
	"automarket/internal/domain/lifecycle"
	"automarket/internal/errors"
	"automarket/internal/infra/persistence/model"

	"go.uber.org/fx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the credential store and closes it on shutdown
func New(params Params) (*gorm.DB, error) {
	path := params.Config.Storage.Path
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, errors.Wrap(err, "failed to create storage directory")
		}
	}

	db, err := Open(path, newGormSlogLogger(params.Logger, params.Config))
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.Wrap(sqlDB.PingContext(ctx), "failed to ping SQLite")
		},
		OnStop: func(_ context.Context) error {
			return sqlDB.Close()
		},
	})

	return db, nil
}

// Open connects to the database at dsn and migrates the settings table
func Open(dsn string, logger gormlogger.Interface) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open SQLite database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}
	// One writer at a time; also keeps ":memory:" databases on a single connection
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&model.SettingModel{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate settings table")
	}

	return db, nil
}
