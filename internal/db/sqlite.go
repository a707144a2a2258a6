package db

import (
	"context"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fsdevblog/shortlink/internal/models"
)

// SQLite подключение к файлу SQLite через gorm.
type SQLite struct {
	*gorm.DB
}

// NewSQLite открывает базу по пути dbPath и накатывает схему.
func NewSQLite(dbPath string) (*SQLite, error) {
	conn, connErr := connectSQLite(dbPath)
	if connErr != nil {
		return nil, fmt.Errorf("init database error: %w", connErr)
	}
	if migrateErr := migrateSQLite(conn); migrateErr != nil {
		return nil, fmt.Errorf("migrate database error: %w", migrateErr)
	}
	return &SQLite{DB: conn}, nil
}

// Ping проверяет соединение с базой.
func (s *SQLite) Ping(ctx context.Context) error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx) //nolint:wrapcheck
}

// Close закрывает пул соединений.
func (s *SQLite) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}
	return sqlDB.Close() //nolint:wrapcheck
}

func connectSQLite(dbPath string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database with path %s error: %w", dbPath, err)
	}

	// SQLite пишет одним соединением, так вставки не упираются в SQLITE_BUSY.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

func migrateSQLite(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.ShortLink{}); err != nil {
		return fmt.Errorf("migrating sql: %w", err)
	}
	return nil
}
