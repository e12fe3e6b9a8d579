package db

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"waste-service/internal/config"
)

const slowQueryThreshold = 200 * time.Millisecond

func New(cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg.DB)
	if err != nil {
		return nil, err
	}

	dbLog := log.With().Str("component", "gorm").Logger()
	database, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.New(gormWriter{log: dbLog}, gormlogger.Config{
			SlowThreshold:             slowQueryThreshold,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.DB.Driver, err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}

	switch {
	case cfg.DB.MaxOpenConns > 0:
		sqlDB.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	case cfg.DB.Driver == config.DriverSQLite:
		// sqlite allows a single writer; one connection avoids SQLITE_BUSY.
		sqlDB.SetMaxOpenConns(1)
	}
	if cfg.DB.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	}
	if cfg.DB.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(database); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	log.Info().Str("driver", cfg.DB.Driver).Msg("database ready")
	return database, nil
}

// gormWriter sends gorm's log lines to zerolog at warn level. gorm only
// prints warnings, errors and slow queries at the configured LogLevel.
type gormWriter struct {
	log zerolog.Logger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.log.Warn().Msgf(format, args...)
}

func Close(database *gorm.DB) error {
	sqlDB, err := database.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dialectorFor(cfg config.DBConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return sqlite.Open(cfg.DSN), nil
	case config.DriverPostgres:
		return postgres.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
