// Package resolver превращает последний сегмент входящего пути в целевой URL.
package resolver

import (
	"context"
	"fmt"
	"strings"

	"github.com/fsdevblog/shortlink/internal/shortcode"
)

// Lookup ищет сохраненный URL по ключу. found=false означает отсутствие записи,
// err заполняется только при сбое хранилища.
type Lookup func(ctx context.Context, id int32) (url string, found bool, err error)

// Outcome результат разрешения токена. Found=false: редиректим на главную.
type Outcome struct {
	URL   string
	Found bool
}

// NotFound исход для битого или неизвестного токена.
var NotFound = Outcome{}

// Found исход для найденной записи.
func Found(url string) Outcome {
	return Outcome{URL: url, Found: true}
}

// Resolve декодирует сегмент и ищет запись.
//
// Битый токен и отсутствующая запись дают одинаковый NotFound. Ошибка возвращается
// только если lookup не смог обратиться к хранилищу.
func Resolve(ctx context.Context, segment string, lookup Lookup) (Outcome, error) {
	id, decodeErr := shortcode.Decode(segment)
	if decodeErr != nil {
		return NotFound, nil
	}

	url, found, err := lookup(ctx, id)
	if err != nil {
		return NotFound, fmt.Errorf("lookup key %d: %w", id, err)
	}
	if !found {
		return NotFound, nil
	}
	return Found(url), nil
}

// LastSegment возвращает часть пути после последнего `/`.
func LastSegment(path string) string {
	return path[strings.LastIndexByte(path, '/')+1:]
}
