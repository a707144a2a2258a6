package memstore

import (
	"errors"
	"fmt"

	"github.com/fsdevblog/shortlink/internal/db/memory"
	"github.com/fsdevblog/shortlink/internal/repositories"
)

// convertErrorType конвертирует ошибки хранилища в памяти в ошибки уровня репозитория.
// Для nil возвращает nil.
func convertErrorType(err error) error {
	if err == nil {
		return nil
	}

	var nativeErr error
	switch {
	case errors.Is(err, memory.ErrNotFound):
		nativeErr = repositories.ErrNotFound
	case errors.Is(err, memory.ErrKeySpaceExhausted):
		nativeErr = repositories.ErrKeySpaceExhausted
	default:
		nativeErr = repositories.ErrUnknown
	}

	return fmt.Errorf("%w: %s", nativeErr, err.Error())
}
