// Package sql предоставляет реализацию репозитория ссылок для SQLite через gorm.
//
// Ключ назначает сама база (rowid), ошибки gorm приводятся к ошибкам уровня репозитория
// с помощью ConvertErrorType:
//   - gorm.ErrRecordNotFound -> repositories.ErrNotFound
//   - другие ошибки -> repositories.ErrUnknown
package sql
