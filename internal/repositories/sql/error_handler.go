package sql

import (
	"fmt"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/fsdevblog/shortlink/internal/repositories"
)

// ConvertErrorType оборачивает ошибку gorm в ошибку уровня репозитория.
func ConvertErrorType(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %s", repositories.ErrNotFound, err.Error())
	case errors.Is(err, repositories.ErrKeySpaceExhausted):
		return err
	default:
		return fmt.Errorf("%w: %s", repositories.ErrUnknown, err.Error())
	}
}
