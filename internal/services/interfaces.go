package services

import (
	"context"

	"github.com/fsdevblog/shortlink/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock.go -package=mocks

// ShortLinkRepository описывает хранилище ссылок.
type ShortLinkRepository interface {
	// Create сохраняет ссылку, хранилище назначает ей уникальный ключ и записывает его в link.ID.
	Create(ctx context.Context, link *models.ShortLink) error
	// GetByID находит ссылку по ключу. Отсутствие записи: repositories.ErrNotFound.
	GetByID(ctx context.Context, id int32) (*models.ShortLink, error)
}

// LinkCache кеш ключ -> URL поверх хранилища.
type LinkCache interface {
	Get(ctx context.Context, id int32) (url string, found bool, err error)
	Set(ctx context.Context, id int32, url string) error
}

type Pinger interface {
	Ping(ctx context.Context) error
}
