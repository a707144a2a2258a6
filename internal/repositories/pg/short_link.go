package pg

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/shortlink/internal/models"
	"github.com/fsdevblog/shortlink/internal/repositories"
)

// sequenceExhausted код PostgreSQL при переполнении последовательности SERIAL.
const sequenceExhausted = "2200H"

// Querier подмножество pgxpool.Pool, которое нужно репозиторию.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type ShortLinkRepo struct {
	conn   Querier
	logger *logrus.Entry
}

func NewShortLinkRepo(conn Querier, logger *logrus.Logger) *ShortLinkRepo {
	return &ShortLinkRepo{
		conn:   conn,
		logger: logger.WithField("module", "repository/pg/short_link"),
	}
}

func (r *ShortLinkRepo) Create(ctx context.Context, link *models.ShortLink) error {
	const q = `INSERT INTO short_links (url) VALUES ($1) RETURNING id, created_at`

	if err := r.conn.QueryRow(ctx, q, link.URL).Scan(&link.ID, &link.CreatedAt); err != nil {
		r.logger.WithError(err).Errorf("failed to create record for url %s", link.URL)
		return fmt.Errorf("failed to create record: %w", convertErrorType(err))
	}
	return nil
}

func (r *ShortLinkRepo) GetByID(ctx context.Context, id int32) (*models.ShortLink, error) {
	const q = `SELECT id, url, created_at FROM short_links WHERE id = $1`

	var link models.ShortLink
	if err := r.conn.QueryRow(ctx, q, id).Scan(&link.ID, &link.URL, &link.CreatedAt); err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			r.logger.WithError(err).Errorf("failed to get record by id %d", id)
		}
		return nil, fmt.Errorf("failed to get record by id %d: %w", id, convertErrorType(err))
	}
	return &link, nil
}

func convertErrorType(err error) error {
	var pgErr *pgconn.PgError
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return fmt.Errorf("%w: %s", repositories.ErrNotFound, err.Error())
	case errors.As(err, &pgErr) && pgErr.Code == sequenceExhausted:
		return fmt.Errorf("%w: %s", repositories.ErrKeySpaceExhausted, err.Error())
	default:
		return fmt.Errorf("%w: %s", repositories.ErrUnknown, err.Error())
	}
}
