package usecase

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"jokesapi/src/core/domain"
	"jokesapi/src/core/ports"
)

// JokeService implements the joke operations on top of the repository.
type JokeService struct {
	repo ports.JokeRepository
	log  *slog.Logger
}

func NewJokeService(repo ports.JokeRepository, log *slog.Logger) *JokeService {
	return &JokeService{repo: repo, log: log}
}

// List returns one page of jokes matching the filter, ordered by the
// given field and direction, plus the total count of matching records.
// The page fetch and the count are independent reads and run in parallel;
// the first failure cancels the other.
func (s *JokeService) List(ctx context.Context, f domain.JokeFilter, sortBy domain.SortField, order domain.SortOrder, page, limit int) (*domain.JokePage, error) {
	q := domain.JokeQuery{
		Filter: f,
		SortBy: sortBy,
		Order:  order,
		Offset: (page - 1) * limit,
		Limit:  limit,
	}

	var (
		jokes []domain.Joke
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		jokes, err = s.repo.ListJokes(gctx, q)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.repo.CountJokes(gctx, q.Filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if jokes == nil {
		jokes = []domain.Joke{}
	}
	return &domain.JokePage{
		Jokes:      jokes,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + int64(limit) - 1) / int64(limit),
	}, nil
}

// Get returns the joke with the given id, or (nil, nil) when none exists.
func (s *JokeService) Get(ctx context.Context, id int64) (*domain.Joke, error) {
	return s.repo.GetJokeByID(ctx, id)
}

// Create persists a new joke. Text has already passed validation;
// a nil author is stored as null.
func (s *JokeService) Create(ctx context.Context, text string, author *string) (*domain.Joke, error) {
	return s.repo.CreateJoke(ctx, text, author)
}
