package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"github.com/fsdevblog/shortlink/internal/cache"
	"github.com/fsdevblog/shortlink/internal/config"
	"github.com/fsdevblog/shortlink/internal/controllers"
	"github.com/fsdevblog/shortlink/internal/db"
	"github.com/fsdevblog/shortlink/internal/logs"
	"github.com/fsdevblog/shortlink/internal/services"
)

const (
	initTimeout     = 10 * time.Second
	shutdownTimeout = 10 * time.Second
)

type App struct {
	config     config.Config
	dbConn     any
	cache      *cache.Redis
	dbServices *services.Services
	Logger     *zap.Logger
}

// New открывает хранилище, при необходимости подключает Redis и собирает сервисный слой.
func New(appConf config.Config) (*App, error) {
	logger, loggerErr := logs.New(logs.WithLevel(appConf.LogLevel))
	if loggerErr != nil {
		return nil, fmt.Errorf("init logger: %w", loggerErr)
	}
	storeLogger := config.NewLogrus(os.Stdout)

	ctx, cancel := context.WithTimeout(context.Background(), initTimeout)
	defer cancel()

	a := &App{
		config: appConf,
		Logger: logger,
	}
	if err := a.initServices(ctx, storeLogger); err != nil {
		a.close()
		return nil, fmt.Errorf("init services: %w", err)
	}
	return a, nil
}

// Must вызывает панику если произошла ошибка.
func Must(a *App, err error) *App {
	if err != nil {
		panic(err)
	}
	return a
}

// Run запускает web сервер и блокируется до SIGINT/SIGTERM или ошибки сервера.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	defer a.close()

	server := &http.Server{
		Addr: a.config.ServerAddress,
		Handler: controllers.SetupRouter(controllers.RouterParams{
			LinkService: a.dbServices.ShortLinkService,
			PingService: a.dbServices.PingService,
			AppConf:     a.config,
			Logger:      a.Logger,
		}),
		ReadHeaderTimeout: controllers.DefaultRequestTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	var serverErr error
	select {
	case <-ctx.Done():
		a.Logger.Info("Shutdown command received")
	case serverErr = <-errChan:
		a.Logger.Error("server error", zap.Error(serverErr))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		a.Logger.Error("graceful shutdown failed", zap.Error(err))
	}

	return serverErr
}

func (a *App) initServices(ctx context.Context, storeLogger *logrus.Logger) error {
	dbConn, connErr := db.NewConnectionFactory(ctx, db.FactoryConfig{
		StorageType:  storageType(a.config.DBType),
		PostgresDSN:  &a.config.DatabaseDSN,
		SQLiteDBPath: &a.config.SQLitePath,
	})
	if connErr != nil {
		return connErr //nolint:wrapcheck
	}
	a.dbConn = dbConn

	var opts []func(*services.FactoryOptions)
	if a.config.RedisAddr != "" {
		client, redisErr := cache.NewRedisClient(ctx, a.config.RedisAddr)
		if redisErr != nil {
			return redisErr //nolint:wrapcheck
		}
		a.cache = cache.NewRedis(client, a.config.CacheTTL)
		opts = append(opts, services.WithCache(a.cache))
	}

	dbServices, dbServErr := services.Factory(dbConn, storeLogger, opts...)
	if dbServErr != nil {
		return dbServErr //nolint:wrapcheck
	}
	a.dbServices = dbServices
	return nil
}

// close освобождает соединения с хранилищем и кешем.
func (a *App) close() {
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.Logger.Error("close redis", zap.Error(err))
		}
	}
	if a.dbConn != nil {
		if err := db.CloseConnection(a.dbConn); err != nil {
			a.Logger.Error("close storage", zap.Error(err))
		}
	}
	_ = a.Logger.Sync()
}

func storageType(t config.DBType) db.StorageType {
	switch t {
	case config.DBTypePostgres:
		return db.StorageTypePostgres
	case config.DBTypeInMemory:
		return db.StorageTypeInMemory
	default:
		return db.StorageTypeSQLite
	}
}
