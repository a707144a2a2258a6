package memory

import (
	"context"
	"math"
	"sync"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// MStorage потокобезопасное хранилище записей с автоинкрементным int32 ключом.
// Значения хранятся сериализованными, чтобы снаружи нельзя было изменить сохраненную запись.
type MStorage struct {
	data   map[int32][]byte
	lastID int32
	m      sync.RWMutex
}

func NewMemStorage() *MStorage {
	return &MStorage{
		data: make(map[int32][]byte),
	}
}

func (m *MStorage) Len() int {
	m.m.RLock()
	defer m.m.RUnlock()

	return len(m.data)
}

// Ping всегда успешен, хранилище в памяти процесса.
func (m *MStorage) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Insert выделяет следующий ключ, строит запись через build и сохраняет ее.
// Выделение ключа и запись выполняются под одной блокировкой, поэтому ключи не повторяются.
func Insert[T any](ctx context.Context, m *MStorage, build func(id int32) *T) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err //nolint:wrapcheck
	}

	m.m.Lock()
	defer m.m.Unlock()

	if m.lastID == math.MaxInt32 {
		return nil, ErrKeySpaceExhausted
	}
	id := m.lastID + 1

	val := build(id)
	bytes, err := json.Marshal(val)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal json for object `%+v`", val)
	}

	m.data[id] = bytes
	m.lastID = id
	return val, nil
}

func Get[T any](ctx context.Context, key int32, m *MStorage) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err //nolint:wrapcheck
	}

	m.m.RLock()
	defer m.m.RUnlock()

	val, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	var result T
	if err := json.Unmarshal(val, &result); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal json by key `%d`", key)
	}
	return &result, nil
}
