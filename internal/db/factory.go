package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type StorageType string

const (
	StorageTypeSQLite   StorageType = "sqlite"
	StorageTypePostgres StorageType = "postgres"
	StorageTypeInMemory StorageType = "inMemory"
)

type FactoryConfig struct {
	StorageType  StorageType
	PostgresDSN  *string
	SQLiteDBPath *string
}

// NewConnectionFactory открывает хранилище нужного типа.
// Возвращает *SQLite, *pgxpool.Pool или *MemoryStorage.
func NewConnectionFactory(ctx context.Context, config FactoryConfig) (any, error) {
	switch config.StorageType {
	case StorageTypeSQLite:
		if config.SQLiteDBPath == nil || *config.SQLiteDBPath == "" {
			return nil, errors.New("sqlite db path is empty")
		}
		conn, err := NewSQLite(*config.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create sqlite connection: %w", err)
		}
		return conn, nil
	case StorageTypePostgres:
		if config.PostgresDSN == nil || *config.PostgresDSN == "" {
			return nil, errors.New("postgres dsn is empty")
		}
		pool, err := NewPostgresConnection(ctx, *config.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("failed to create postgres connection: %w", err)
		}
		if migrateErr := MigratePostgres(ctx, pool); migrateErr != nil {
			pool.Close()
			return nil, migrateErr
		}
		return pool, nil
	case StorageTypeInMemory:
		return NewMemStorage(), nil
	default:
		return nil, fmt.Errorf("unknown storage type: %s", config.StorageType)
	}
}

// CloseConnection закрывает соединение, созданное NewConnectionFactory.
func CloseConnection(conn any) error {
	switch c := conn.(type) {
	case *SQLite:
		return c.Close()
	case *pgxpool.Pool:
		c.Close()
		return nil
	case *MemoryStorage:
		return nil
	default:
		return fmt.Errorf("unknown connection type %T", conn)
	}
}
