package controllers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fsdevblog/shortlink/internal/config"
	"github.com/fsdevblog/shortlink/internal/controllers/middlewares"
)

type RouterParams struct {
	LinkService ShortLinkService
	PingService ConnectionChecker
	AppConf     config.Config
	Logger      *zap.Logger
}

// SetupRouter регистрирует маршруты. Любой не найденный путь считается короткой ссылкой.
func SetupRouter(params RouterParams) *gin.Engine {
	r := gin.New()
	r.Use(middlewares.RequestID())
	r.Use(middlewares.LoggerMiddleware(params.Logger))
	r.Use(gin.Recovery())

	shortLinkController := NewShortLinkController(params.LinkService, params.AppConf.BaseURL)

	r.GET("/", shortLinkController.Index)
	r.POST("/shortLink", shortLinkController.CreateShortLink)
	r.POST("/api/shorten", shortLinkController.CreateShortLinkJSON)

	if params.PingService != nil {
		r.GET("/ping", NewPingController(params.PingService).Ping)
	}

	r.NoRoute(shortLinkController.Redirect)
	return r
}
