package sql

import (
	"context"
	"math"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/fsdevblog/shortlink/internal/models"
	"github.com/fsdevblog/shortlink/internal/repositories"
)

// shortLinkRow строка таблицы short_links. rowid в SQLite 64-битный,
// поэтому ключ читаем как int64 и проверяем диапазон до приведения к int32.
type shortLinkRow struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	URL       string
	CreatedAt time.Time
}

func (shortLinkRow) TableName() string {
	return "short_links"
}

type ShortLinkRepo struct {
	db     *gorm.DB
	logger *logrus.Entry
}

func NewShortLinkRepo(db *gorm.DB, logger *logrus.Logger) *ShortLinkRepo {
	return &ShortLinkRepo{
		db:     db,
		logger: logger.WithField("module", "repository/sql/short_link"),
	}
}

// Create вставляет запись и заполняет link.ID ключом, назначенным базой.
func (r *ShortLinkRepo) Create(ctx context.Context, link *models.ShortLink) error {
	row := shortLinkRow{URL: link.URL}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return err //nolint:wrapcheck
		}
		if row.ID > math.MaxInt32 {
			return repositories.ErrKeySpaceExhausted
		}
		return nil
	})
	if err != nil {
		r.logger.WithError(err).Errorf("failed to create record for url %s", link.URL)
		return errors.Wrap(ConvertErrorType(err), "failed to create record")
	}

	link.ID = int32(row.ID) //nolint:gosec
	link.CreatedAt = row.CreatedAt
	return nil
}

func (r *ShortLinkRepo) GetByID(ctx context.Context, id int32) (*models.ShortLink, error) {
	var link models.ShortLink
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&link).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.WithError(err).Errorf("failed to get record by id %d", id)
		}
		return nil, errors.Wrapf(ConvertErrorType(err), "failed to get record by id %d", id)
	}
	return &link, nil
}
