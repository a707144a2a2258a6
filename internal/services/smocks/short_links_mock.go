package smocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/fsdevblog/shortlink/internal/models"
	"github.com/fsdevblog/shortlink/internal/resolver"
)

type ShortLinkMock struct {
	mock.Mock
}

func (m *ShortLinkMock) Create(ctx context.Context, rawURL string) (*models.ShortLink, error) {
	args := m.Called(ctx, rawURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ShortLink), args.Error(1) //nolint:forcetypeassert
}

func (m *ShortLinkMock) Resolve(ctx context.Context, segment string) (resolver.Outcome, error) {
	args := m.Called(ctx, segment)
	return args.Get(0).(resolver.Outcome), args.Error(1) //nolint:forcetypeassert
}

type PingMock struct {
	mock.Mock
}

func (m *PingMock) CheckConnection(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
