// Package logs собирает zap логгер приложения и HTTP слоя.
package logs

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EncodingType определяет формат вывода логов.
type EncodingType string

const (
	EncodingTypeConsole EncodingType = "console"
	EncodingTypeJSON    EncodingType = "json"
)

// LoggerOptions настройки логгера.
type LoggerOptions struct {
	Level            string         // Уровень логирования, пустой: по режиму gin
	Encoding         EncodingType   // Формат вывода
	OutputPaths      []string       // Пути вывода логов
	ErrorOutputPaths []string       // Пути вывода ошибок
	InitialFields    map[string]any // Поля каждой записи
}

// WithLevel задает уровень логирования. Пустая строка оставляет уровень по умолчанию.
func WithLevel(level string) func(*LoggerOptions) {
	return func(o *LoggerOptions) {
		if level != "" {
			o.Level = level
		}
	}
}

// WithOutput перенаправляет вывод, например в файл или "stderr".
func WithOutput(paths ...string) func(*LoggerOptions) {
	return func(o *LoggerOptions) {
		o.OutputPaths = paths
	}
}

// New создает логгер. В release режиме gin: JSON уровня info, иначе консоль уровня debug.
func New(opts ...func(*LoggerOptions)) (*zap.Logger, error) {
	isProduction := gin.Mode() == gin.ReleaseMode

	options := LoggerOptions{
		Level:            "debug",
		Encoding:         EncodingTypeConsole,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}
	if isProduction {
		options.Level = "info"
		options.Encoding = EncodingTypeJSON
	}

	for _, opt := range opts {
		opt(&options)
	}

	lvl, errLvl := zap.ParseAtomicLevel(options.Level)
	if errLvl != nil {
		return nil, fmt.Errorf("parse level: %w", errLvl)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "ts"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	if options.Encoding == EncodingTypeConsole {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	conf := zap.Config{
		Level:            lvl,
		Development:      !isProduction,
		Encoding:         string(options.Encoding),
		EncoderConfig:    encoderConfig,
		OutputPaths:      options.OutputPaths,
		ErrorOutputPaths: options.ErrorOutputPaths,
		InitialFields:    options.InitialFields,
	}

	log, err := conf.Build(zap.AddStacktrace(zap.ErrorLevel))
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return log, nil
}

// MustNew как New, но паникует при ошибке.
func MustNew(opts ...func(*LoggerOptions)) *zap.Logger {
	log, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return log
}
