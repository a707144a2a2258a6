package config

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// NewLogrus создает логгер слоя хранения и сервисов.
// В release режиме gin пишет JSON уровня info, иначе текст уровня debug.
func NewLogrus(out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)

	logger.SetFormatter(new(logrus.JSONFormatter))
	logger.SetLevel(logrus.InfoLevel)

	if gin.Mode() != gin.ReleaseMode {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(new(logrus.TextFormatter))
	}

	return logger
}
