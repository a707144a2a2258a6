// Package memstore предоставляет реализацию репозитория ссылок для in-memory хранилища.
//
// Все методы репозитория преобразуют внутренние ошибки хранилища в общие ошибки уровня репозитория
// с помощью convertErrorType:
//   - memory.ErrNotFound -> repositories.ErrNotFound
//   - memory.ErrKeySpaceExhausted -> repositories.ErrKeySpaceExhausted
//   - другие ошибки -> repositories.ErrUnknown
package memstore
