package services

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/shortlink/internal/db"
	"github.com/fsdevblog/shortlink/internal/repositories/memstore"
	"github.com/fsdevblog/shortlink/internal/repositories/pg"
	"github.com/fsdevblog/shortlink/internal/repositories/sql"
)

type Services struct {
	ShortLinkService *ShortLinkService
	PingService      *PingService
}

// CheckedCache кеш, доступность которого проверяет /ping.
type CheckedCache interface {
	LinkCache
	Pinger
}

type FactoryOptions struct {
	cache CheckedCache
}

// WithCache подключает кеш к разрешению ссылок.
func WithCache(cache CheckedCache) func(*FactoryOptions) {
	return func(o *FactoryOptions) {
		o.cache = cache
	}
}

// Factory собирает сервисный слой поверх соединения из db.NewConnectionFactory.
func Factory(conn any, logger *logrus.Logger, opts ...func(*FactoryOptions)) (*Services, error) {
	var options FactoryOptions
	for _, opt := range opts {
		opt(&options)
	}

	var (
		repo   ShortLinkRepository
		pinger Pinger
	)
	switch c := conn.(type) {
	case *db.SQLite:
		repo, pinger = sql.NewShortLinkRepo(c.DB, logger), c
	case *pgxpool.Pool:
		repo, pinger = pg.NewShortLinkRepo(c, logger), c
	case *db.MemoryStorage:
		repo, pinger = memstore.NewShortLinkRepo(c, logger), c
	default:
		return nil, fmt.Errorf("unknown connection type %T", conn)
	}

	pingers := []Pinger{pinger}
	var cache LinkCache
	if options.cache != nil {
		cache = options.cache
		pingers = append(pingers, options.cache)
	}

	return &Services{
		ShortLinkService: NewShortLinkService(repo, cache, logger),
		PingService:      NewPingService(pingers...),
	}, nil
}
