package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jokesapi/src/core/domain"
	"jokesapi/src/core/usecase"
)

// stubRepo implements ports.JokeRepository with function fields.
type stubRepo struct {
	createFn func(ctx context.Context, text string, author *string) (*domain.Joke, error)
	getFn    func(ctx context.Context, id int64) (*domain.Joke, error)
	listFn   func(ctx context.Context, q domain.JokeQuery) ([]domain.Joke, error)
	countFn  func(ctx context.Context, f domain.JokeFilter) (int64, error)

	listCalls  atomic.Int32
	countCalls atomic.Int32
}

func (s *stubRepo) Health(ctx context.Context) error { return nil }

func (s *stubRepo) CreateJoke(ctx context.Context, text string, author *string) (*domain.Joke, error) {
	return s.createFn(ctx, text, author)
}

func (s *stubRepo) GetJokeByID(ctx context.Context, id int64) (*domain.Joke, error) {
	return s.getFn(ctx, id)
}

func (s *stubRepo) ListJokes(ctx context.Context, q domain.JokeQuery) ([]domain.Joke, error) {
	s.listCalls.Add(1)
	return s.listFn(ctx, q)
}

func (s *stubRepo) CountJokes(ctx context.Context, f domain.JokeFilter) (int64, error) {
	s.countCalls.Add(1)
	return s.countFn(ctx, f)
}

func discardLog() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestListComputesOffsetAndPassesQueryThrough(t *testing.T) {
	var got domain.JokeQuery
	repo := &stubRepo{
		listFn: func(_ context.Context, q domain.JokeQuery) ([]domain.Joke, error) {
			got = q
			return nil, nil
		},
		countFn: func(_ context.Context, f domain.JokeFilter) (int64, error) {
			return 0, nil
		},
	}
	svc := usecase.NewJokeService(repo, discardLog())

	filter := domain.JokeFilter{Author: "John", Search: "funny"}
	_, err := svc.List(context.Background(), filter, domain.SortByCreatedAt, domain.SortAsc, 3, 10)
	require.NoError(t, err)

	assert.Equal(t, 20, got.Offset)
	assert.Equal(t, 10, got.Limit)
	assert.Equal(t, filter, got.Filter)
	assert.Equal(t, domain.SortByCreatedAt, got.SortBy)
	assert.Equal(t, domain.SortAsc, got.Order)
	assert.Equal(t, int32(1), repo.listCalls.Load())
	assert.Equal(t, int32(1), repo.countCalls.Load())
}

func TestListTotalPagesIsCeiling(t *testing.T) {
	tests := []struct {
		total     int64
		limit     int
		wantPages int64
	}{
		{total: 0, limit: 10, wantPages: 0},
		{total: 1, limit: 10, wantPages: 1},
		{total: 10, limit: 10, wantPages: 1},
		{total: 11, limit: 10, wantPages: 2},
		{total: 25, limit: 10, wantPages: 3},
		{total: 100, limit: 1, wantPages: 100},
		{total: 5, limit: 100, wantPages: 1},
	}

	for _, tt := range tests {
		repo := &stubRepo{
			listFn: func(context.Context, domain.JokeQuery) ([]domain.Joke, error) {
				return nil, nil
			},
			countFn: func(context.Context, domain.JokeFilter) (int64, error) {
				return tt.total, nil
			},
		}
		svc := usecase.NewJokeService(repo, discardLog())

		page, err := svc.List(context.Background(), domain.JokeFilter{}, domain.SortByID, domain.SortDesc, 1, tt.limit)
		require.NoError(t, err)
		assert.Equal(t, tt.wantPages, page.TotalPages, "total=%d limit=%d", tt.total, tt.limit)
		assert.Equal(t, tt.total, page.Total)
	}
}

func TestListEmptyResultIsNotNil(t *testing.T) {
	repo := &stubRepo{
		listFn: func(context.Context, domain.JokeQuery) ([]domain.Joke, error) {
			return nil, nil
		},
		countFn: func(context.Context, domain.JokeFilter) (int64, error) {
			return 0, nil
		},
	}
	svc := usecase.NewJokeService(repo, discardLog())

	page, err := svc.List(context.Background(), domain.JokeFilter{}, domain.SortByID, domain.SortDesc, 1, 10)
	require.NoError(t, err)
	assert.NotNil(t, page.Jokes)
	assert.Empty(t, page.Jokes)
}

func TestListPropagatesEitherReadFailure(t *testing.T) {
	boom := &domain.StoreError{Kind: domain.StoreConnection, Message: "down"}

	t.Run("page fetch fails", func(t *testing.T) {
		repo := &stubRepo{
			listFn: func(context.Context, domain.JokeQuery) ([]domain.Joke, error) {
				return nil, boom
			},
			countFn: func(context.Context, domain.JokeFilter) (int64, error) {
				return 0, nil
			},
		}
		svc := usecase.NewJokeService(repo, discardLog())

		_, err := svc.List(context.Background(), domain.JokeFilter{}, domain.SortByID, domain.SortDesc, 1, 10)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("count fails", func(t *testing.T) {
		repo := &stubRepo{
			listFn: func(context.Context, domain.JokeQuery) ([]domain.Joke, error) {
				return nil, nil
			},
			countFn: func(context.Context, domain.JokeFilter) (int64, error) {
				return 0, boom
			},
		}
		svc := usecase.NewJokeService(repo, discardLog())

		_, err := svc.List(context.Background(), domain.JokeFilter{}, domain.SortByID, domain.SortDesc, 1, 10)
		assert.ErrorIs(t, err, boom)
	})
}

func TestGetPassesAbsenceThrough(t *testing.T) {
	repo := &stubRepo{
		getFn: func(_ context.Context, id int64) (*domain.Joke, error) {
			return nil, nil
		},
	}
	svc := usecase.NewJokeService(repo, discardLog())

	joke, err := svc.Get(context.Background(), 999999)
	require.NoError(t, err)
	assert.Nil(t, joke)
}

func TestCreateForwardsAuthor(t *testing.T) {
	var gotText string
	var gotAuthor *string
	repo := &stubRepo{
		createFn: func(_ context.Context, text string, author *string) (*domain.Joke, error) {
			gotText, gotAuthor = text, author
			return &domain.Joke{ID: 1, Text: text, Author: author}, nil
		},
	}
	svc := usecase.NewJokeService(repo, discardLog())

	joke, err := svc.Create(context.Background(), "X", nil)
	require.NoError(t, err)
	assert.Equal(t, "X", gotText)
	assert.Nil(t, gotAuthor)
	assert.Nil(t, joke.Author)

	_, err = svc.Create(context.Background(), "Y", ptr("John"))
	require.NoError(t, err)
	require.NotNil(t, gotAuthor)
	assert.Equal(t, "John", *gotAuthor)
}

func ptr(s string) *string { return &s }
