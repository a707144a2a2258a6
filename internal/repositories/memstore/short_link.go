package memstore

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/shortlink/internal/db"
	"github.com/fsdevblog/shortlink/internal/db/memory"
	"github.com/fsdevblog/shortlink/internal/models"
)

// ShortLinkRepo репозиторий ссылок в памяти.
type ShortLinkRepo struct {
	s      *db.MemoryStorage
	logger *logrus.Entry
}

// NewShortLinkRepo создает новый экземпляр репозитория.
//
// Параметры:
//   - store: экземпляр хранилища в памяти
//   - logger: логгер
//
// Возвращает:
//   - *ShortLinkRepo: инициализированный репозиторий
func NewShortLinkRepo(store *db.MemoryStorage, logger *logrus.Logger) *ShortLinkRepo {
	return &ShortLinkRepo{
		s:      store,
		logger: logger.WithField("module", "repository/memstore/short_link"),
	}
}

// Create сохраняет ссылку и заполняет link.ID выделенным ключом.
//
// Параметры:
//   - ctx: контекст выполнения
//   - link: ссылка для сохранения, URL должен быть заполнен
//
// Возвращает:
//   - error: ошибка создания (преобразованная через convertErrorType)
func (r *ShortLinkRepo) Create(ctx context.Context, link *models.ShortLink) error {
	createdAt := time.Now().UTC()
	stored, err := memory.Insert(ctx, r.s.MStorage, func(id int32) *models.ShortLink {
		return &models.ShortLink{ID: id, URL: link.URL, CreatedAt: createdAt}
	})
	if err != nil {
		r.logger.WithError(err).Errorf("failed to create record for url %s", link.URL)
		return fmt.Errorf("failed to create record: %w", convertErrorType(err))
	}

	*link = *stored
	return nil
}

// GetByID получает ссылку по ключу.
//
// Параметры:
//   - ctx: контекст выполнения
//   - id: ключ записи
//
// Возвращает:
//   - *models.ShortLink: найденная запись
//   - error: ошибка поиска (преобразованная через convertErrorType)
func (r *ShortLinkRepo) GetByID(ctx context.Context, id int32) (*models.ShortLink, error) {
	link, err := memory.Get[models.ShortLink](ctx, id, r.s.MStorage)
	if err != nil {
		return nil, fmt.Errorf("failed to get record by id %d: %w", id, convertErrorType(err))
	}
	return link, nil
}
