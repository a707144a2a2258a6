package controllers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PingController проверка работоспособности сервиса.
type PingController struct {
	conn ConnectionChecker
}

func NewPingController(conn ConnectionChecker) *PingController {
	return &PingController{conn: conn}
}

// Ping обрабатывает GET /ping: 200 "pong" если хранилище (и кеш) доступны, иначе 500.
func (c *PingController) Ping(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), DefaultRequestTimeout)
	defer cancel()
	if err := c.conn.CheckConnection(pingCtx); err != nil {
		_ = ctx.Error(fmt.Errorf("ping error: %w", err))
		ctx.Status(http.StatusInternalServerError)
		return
	}
	ctx.String(http.StatusOK, "pong")
}
