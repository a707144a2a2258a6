package services

import "errors"

var (
	ErrUnknown = errors.New("[service]: unknown error")
)
