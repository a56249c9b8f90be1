// Package database owns the connection pool and schema lifecycle.
package database

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"spendwise/internal/config"
	"spendwise/internal/logger"
	"spendwise/internal/models"
)

// Manager holds the process-wide connection pool. It is created once at
// start-up and handed to the services that need it.
type Manager struct {
	db  *gorm.DB
	cfg *config.Config
}

// NewManager opens the database selected by cfg.DBDriver.
func NewManager(cfg *config.Config) (*Manager, error) {
	gormCfg := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Warn)}

	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.DBPath)
	default:
		dialector = postgres.New(postgres.Config{
			DSN:                  cfg.PostgresDSN(),
			PreferSimpleProtocol: true,
		})
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return &Manager{db: db, cfg: cfg}, nil
}

// Migrate brings the schema up to date. Postgres runs the versioned SQL
// migrations; SQLite, used for local development, is auto-migrated.
func (m *Manager) Migrate() error {
	if m.cfg.DBDriver == config.DriverSQLite {
		return AutoMigrate(m.db)
	}
	return RunMigrations(m.cfg)
}

// RunMigrations applies pending SQL migrations from cfg.MigrationsPath.
func RunMigrations(cfg *config.Config) error {
	log := logger.Get()
	log.Info("Running database migrations...")

	mig, err := migrate.New("file://"+cfg.MigrationsPath, cfg.PostgresURL())
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func() {
		srcErr, dbErr := mig.Close()
		if srcErr != nil {
			log.Warnf("migrate source close error: %v", srcErr)
		}
		if dbErr != nil {
			log.Warnf("migrate database close error: %v", dbErr)
		}
	}()

	if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Info("Database migrations completed successfully")
	return nil
}

// AutoMigrate creates the schema from the GORM models. Income and expenses
// share one model, so each ledger table is migrated explicitly.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.AuditLog{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	for _, kind := range []models.TransactionKind{models.TransactionKindIncome, models.TransactionKindExpense} {
		if err := db.Table(kind.Table()).AutoMigrate(&models.Transaction{}); err != nil {
			return fmt.Errorf("auto-migrate %s: %w", kind.Table(), err)
		}
	}
	return nil
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Close releases the connection pool.
func (m *Manager) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
