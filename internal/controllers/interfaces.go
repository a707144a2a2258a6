package controllers

import (
	"context"

	"github.com/fsdevblog/shortlink/internal/models"
	"github.com/fsdevblog/shortlink/internal/resolver"
)

type ConnectionChecker interface {
	CheckConnection(ctx context.Context) error
}

type ShortLinkService interface {
	// Create сохраняет проверенный URL и возвращает запись с ключом.
	Create(ctx context.Context, rawURL string) (*models.ShortLink, error)
	// Resolve разрешает последний сегмент пути. Ошибка только при сбое хранилища.
	Resolve(ctx context.Context, segment string) (resolver.Outcome, error)
}
