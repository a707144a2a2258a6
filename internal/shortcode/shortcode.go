// Package shortcode кодирует числовой ключ записи в короткий URL-safe токен и обратно.
//
// Токен это 4 байта ключа в little-endian, закодированные base64url без паддинга,
// поэтому длина токена всегда TokenLength символов.
package shortcode

import (
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	keySize = 4 // размер int32 в байтах

	// TokenLength длина любого токена, который возвращает Encode.
	TokenLength = 6
)

// ErrMalformedToken токен не является результатом Encode.
var ErrMalformedToken = errors.New("malformed short token")

// encoding строгий вариант: ненулевые хвостовые биты отклоняются,
// у каждого ключа ровно один допустимый токен.
var encoding = base64.RawURLEncoding.Strict()

// DecodeError возвращается Decode для некорректного токена.
type DecodeError struct {
	Token string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode token %q: %v", e.Token, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is позволяет сравнивать любую DecodeError с ErrMalformedToken.
func (e *DecodeError) Is(target error) bool {
	return target == ErrMalformedToken
}

// Encode возвращает токен для ключа. Определена для любого int32, включая ноль и отрицательные.
func Encode(id int32) string {
	var buf [keySize]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(id))
	return encoding.EncodeToString(buf[:])
}

// Decode восстанавливает ключ из токена.
//
// Возвращает *DecodeError, если строка не base64url или декодируется не в 4 байта.
func Decode(token string) (int32, error) {
	// base64 пропускает переводы строк, поэтому длину проверяем заранее.
	if len(token) != TokenLength {
		return 0, &DecodeError{Token: token, Err: fmt.Errorf("invalid length %d", len(token))}
	}

	raw, err := encoding.DecodeString(token)
	if err != nil {
		return 0, &DecodeError{Token: token, Err: err}
	}
	if len(raw) != keySize {
		return 0, &DecodeError{Token: token, Err: fmt.Errorf("decoded %d bytes, want %d", len(raw), keySize)}
	}

	return int32(binary.LittleEndian.Uint32(raw)), nil //nolint:gosec
}
