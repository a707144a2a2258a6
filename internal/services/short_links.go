package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/shortlink/internal/models"
	"github.com/fsdevblog/shortlink/internal/repositories"
	"github.com/fsdevblog/shortlink/internal/resolver"
)

// ShortLinkService создает ссылки и разрешает короткие токены.
type ShortLinkService struct {
	repo   ShortLinkRepository
	cache  LinkCache
	logger *logrus.Entry
}

// NewShortLinkService создает сервис. cache может быть nil.
func NewShortLinkService(repo ShortLinkRepository, cache LinkCache, logger *logrus.Logger) *ShortLinkService {
	return &ShortLinkService{
		repo:   repo,
		cache:  cache,
		logger: logger.WithField("module", "services/short_links"),
	}
}

// Create сохраняет URL и возвращает запись с назначенным ключом.
// rawURL должен быть уже проверен вызывающей стороной.
func (s *ShortLinkService) Create(ctx context.Context, rawURL string) (*models.ShortLink, error) {
	link := models.ShortLink{URL: rawURL}
	if err := s.repo.Create(ctx, &link); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnknown, err)
	}

	s.logger.WithFields(logrus.Fields{"id": link.ID, "token": link.Token()}).Debug("short link created")
	return &link, nil
}

// Resolve разрешает сегмент пути в URL. Ошибка возвращается только при сбое хранилища.
func (s *ShortLinkService) Resolve(ctx context.Context, segment string) (resolver.Outcome, error) {
	outcome, err := resolver.Resolve(ctx, segment, s.lookup)
	if err != nil {
		return resolver.NotFound, fmt.Errorf("%w: resolve %q: %w", ErrUnknown, segment, err)
	}
	return outcome, nil
}

// lookup читает сначала кеш, затем хранилище. Ошибки кеша не фатальны.
func (s *ShortLinkService) lookup(ctx context.Context, id int32) (string, bool, error) {
	if s.cache != nil {
		url, found, err := s.cache.Get(ctx, id)
		switch {
		case err != nil:
			s.logger.WithError(err).Warnf("cache get %d failed", id)
		case found:
			return url, true, nil
		}
	}

	link, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", false, nil
		}
		return "", false, err
	}

	if s.cache != nil {
		if setErr := s.cache.Set(ctx, id, link.URL); setErr != nil {
			s.logger.WithError(setErr).Warnf("cache set %d failed", id)
		}
	}
	return link.URL, true, nil
}
