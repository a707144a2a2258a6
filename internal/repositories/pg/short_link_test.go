package pg

import (
	"context"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/shortlink/internal/db"
	"github.com/fsdevblog/shortlink/internal/models"
	"github.com/fsdevblog/shortlink/internal/repositories"
)

func TestConvertErrorType(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: repositories.ErrNotFound},
		{
			name: "sequence exhausted",
			err:  &pgconn.PgError{Code: sequenceExhausted, Message: "nextval: reached maximum value"},
			want: repositories.ErrKeySpaceExhausted,
		},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: repositories.ErrUnknown},
		{name: "other", err: errors.New("conn closed"), want: repositories.ErrUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, convertErrorType(tt.err), tt.want)
		})
	}
}

// ShortLinkRepoSuite работает с настоящей базой, DSN берется из TEST_DATABASE_DSN.
type ShortLinkRepoSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *ShortLinkRepo
}

func (s *ShortLinkRepoSuite) SetupSuite() {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		s.T().Skip("TEST_DATABASE_DSN is not set")
	}

	pool, err := db.NewPostgresConnection(context.Background(), dsn)
	s.Require().NoError(err)
	s.Require().NoError(db.MigratePostgres(context.Background(), pool))
	s.pool = pool

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	s.repo = NewShortLinkRepo(pool, logger)
}

func (s *ShortLinkRepoSuite) SetupTest() {
	_, err := s.pool.Exec(context.Background(), "TRUNCATE short_links RESTART IDENTITY")
	s.Require().NoError(err)
}

func (s *ShortLinkRepoSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *ShortLinkRepoSuite) TestCreateAndGet() {
	ctx := context.Background()

	link := models.ShortLink{URL: gofakeit.URL()}
	s.Require().NoError(s.repo.Create(ctx, &link))
	s.Equal(int32(1), link.ID)

	got, err := s.repo.GetByID(ctx, link.ID)
	s.Require().NoError(err)
	s.Equal(link.URL, got.URL)

	_, err = s.repo.GetByID(ctx, link.ID+1)
	s.ErrorIs(err, repositories.ErrNotFound)
}

func TestShortLinkRepoSuite(t *testing.T) {
	suite.Run(t, new(ShortLinkRepoSuite))
}
