// Package database contains the persistence schema and the logic for opening
// the backing store.
//
// The store is a single SQLite file accessed through GORM. On process start
// the schema is created if absent (AutoMigrate); existing tables are never
// migrated. Each request borrows a session scoped to its context; the
// underlying connection is returned to the pool on every exit path.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/ecomportal/backend/internal/config"
	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Database wraps the GORM handle and a logger.
type Database struct {
	DB  *gorm.DB
	log *zerolog.Logger
}

// PingTimeout bounds the connectivity check at startup and in health checks.
const PingTimeout = 5 * time.Second

// New opens (or creates) the SQLite database file and ensures the schema
// exists.
//
// The DSN enables foreign key enforcement (_fk=1), which SQLite leaves off by
// default, and a busy timeout so concurrent writers queue instead of failing
// immediately.
func New(cfg *config.Config, logger *zerolog.Logger) (*Database, error) {
	dsn := fmt.Sprintf("file:%s?_fk=1&_busy_timeout=5000", cfg.Database.Path)

	gormLogLevel := gormlogger.Silent
	if cfg.Primary.Env == "local" {
		gormLogLevel = gormlogger.Warn
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormLogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite allows a single writer at a time; keeping one open connection
	// avoids SQLITE_BUSY churn under concurrent writes.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access underlying connection: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	database := &Database{
		DB:  db,
		log: logger,
	}

	ctx, cancel := context.WithTimeout(context.Background(), PingTimeout)
	defer cancel()
	if err := database.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Create tables if absent. AutoMigrate is additive only; it never drops
	// or rewrites existing columns.
	if err := db.AutoMigrate(&Customer{}, &Order{}, &OrderItem{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database schema: %w", err)
	}

	logger.Info().Str("path", cfg.Database.Path).Msg("connected to the database")

	return database, nil
}

// Session returns a request-scoped unit of work bound to ctx.
//
// Each call produces a fresh session so per-request state (context deadline,
// cancellation) never leaks between requests.
func (db *Database) Session(ctx context.Context) *gorm.DB {
	return db.DB.WithContext(ctx).Session(&gorm.Session{})
}

// Ping verifies the store answers.
func (db *Database) Ping(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the underlying connection pool.
func (db *Database) Close() error {
	db.log.Info().Msg("closing database connection")
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
