package repositories

import "errors"

var (
	ErrNotFound          = errors.New("[repository]: record not found")
	ErrKeySpaceExhausted = errors.New("[repository]: key space exhausted")
	ErrUnknown           = errors.New("[repository]: unknown error")
)
