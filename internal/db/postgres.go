package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPostgresConnection создает новый пул подключений к PostgreSQL.
//
// Параметры:
//   - ctx: контекст выполнения
//   - dsn: строка подключения к базе данных (Data Source Name)
//
// Возвращает:
//   - *pgxpool.Pool: пул подключений к PostgreSQL
//   - error: ошибка создания подключения
func NewPostgresConnection(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	poolConfig, confErr := pgxpool.ParseConfig(dsn)
	if confErr != nil {
		return nil, fmt.Errorf("failed to parse config: %w", confErr)
	}
	pool, poolErr := pgxpool.NewWithConfig(ctx, poolConfig)
	if poolErr != nil {
		return nil, fmt.Errorf("failed to create pool: %w", poolErr)
	}
	if pingErr := pool.Ping(ctx); pingErr != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", pingErr)
	}
	return pool, nil
}

// id типа SERIAL (int4) совпадает по диапазону с ключом ссылки.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS short_links (
    id SERIAL PRIMARY KEY,
    url TEXT NOT NULL,
    created_at timestamp with time zone NOT NULL DEFAULT now()
);
`

// MigratePostgres создает таблицу short_links, если ее нет.
func MigratePostgres(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
