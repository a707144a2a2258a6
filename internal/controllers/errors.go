package controllers

import "errors"

// Ошибки.
var (
	ErrInvalidRequest = errors.New("invalid request") // Не форма или нет обязательного поля
	ErrInvalidURL     = errors.New("invalid url")     // originalUrl не абсолютный URL
)

// Тексты ответов клиенту.
const (
	msgInvalidRequest = "Cannot process request"
	msgInvalidURL     = "Invalid URL"
	msgInternal       = "Internal server error"
	msgUnavailable    = "Service unavailable"
)
