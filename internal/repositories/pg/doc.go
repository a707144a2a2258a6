// Package pg предоставляет реализацию репозитория ссылок для PostgreSQL через pgx.
//
// Ключ выдает последовательность столбца SERIAL. pgx.ErrNoRows приводится к
// repositories.ErrNotFound, прочие ошибки к repositories.ErrUnknown.
package pg
