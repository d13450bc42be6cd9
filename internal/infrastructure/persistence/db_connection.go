package persistence

import (
	"fmt"
	"log"
	"strings"

	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDBConnection opens the configured database and applies the pool settings.
// SQLite in-memory databases are pinned to a single connection.
func NewDBConnection(settings config.DatabaseSettings) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	switch settings.Type {
	case config.PostgresDbType:
		db, err = connectPostgres(settings)
	case config.SqliteDbType:
		db, err = connectSQLite(settings)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", settings.Type)
	}
	if err != nil {
		return nil, err
	}

	if err := configurePool(db, settings); err != nil {
		_ = CloseDB(db)
		return nil, err
	}
	return db, nil
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	}
}

// connectPostgres connects with settings.DSN. When settings.Name is set, the
// database is created if missing and the connection is reopened against it.
func connectPostgres(settings config.DatabaseSettings) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(settings.DSN), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	if settings.Name == "" {
		return db, nil
	}

	// Fails when the database exists
	_ = db.Exec("CREATE DATABASE " + quoteIdentifier(settings.Name)).Error

	if err := CloseDB(db); err != nil {
		return nil, fmt.Errorf("failed to close initial DB connection: %w", err)
	}

	dsn := fmt.Sprintf("%s dbname=%s", settings.DSN, settings.Name)
	db, err = gorm.Open(postgres.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database '%s': %w", settings.Name, err)
	}
	return db, nil
}

func connectSQLite(settings config.DatabaseSettings) (*gorm.DB, error) {
	dsn := settings.DSN
	if dsn == "" {
		dsn = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite: %w", err)
	}
	return db, nil
}

func configurePool(db *gorm.DB, settings config.DatabaseSettings) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get raw DB connection: %w", err)
	}

	if settings.Type == config.SqliteDbType && isInMemory(settings.DSN) {
		// Every connection to :memory: opens a fresh database
		sqlDB.SetMaxOpenConns(1)
		return nil
	}

	if settings.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(settings.MaxOpenConns)
	}
	if settings.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(settings.MaxIdleConns)
	}
	if settings.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(settings.ConnMaxLifetime)
	}
	return nil
}

func isInMemory(dsn string) bool {
	return dsn == "" || strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}

func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// CloseDB closes the database connection
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

// DropDatabase drops a PostgreSQL database. Used to clean up integration tests.
func DropDatabase(adminDSN, dbName string) error {
	db, err := gorm.Open(postgres.Open(adminDSN), gormConfig())
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer func() {
		if err := CloseDB(db); err != nil {
			log.Printf("Warning: failed to close database connection: %v", err)
		}
	}()

	if err := db.Exec("DROP DATABASE IF EXISTS " + quoteIdentifier(dbName)).Error; err != nil {
		return fmt.Errorf("failed to drop database '%s': %w", dbName, err)
	}
	return nil
}
