package memory

import "errors"

var (
	ErrNotFound          = errors.New("record not found")
	ErrKeySpaceExhausted = errors.New("key space exhausted")
)
