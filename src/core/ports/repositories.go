// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra/repo. This ensures the core has no dependency on infrastructure.
package ports

import (
	"context"

	"jokesapi/src/core/domain"
)

// Repository is the base interface for all repositories.
type Repository interface {
	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error
}

// JokeRepository is the storage collaborator for Joke records.
//
// Contract notes:
//   - GetJokeByID returns (nil, nil) when no record has the id; the
//     caller decides how absence maps to its own error domain.
//   - Every other failure is reported as a *domain.StoreError.
//   - ListJokes and CountJokes take the same filter and are independent
//     reads; callers may run them concurrently.
type JokeRepository interface {
	Repository

	CreateJoke(ctx context.Context, text string, author *string) (*domain.Joke, error)
	GetJokeByID(ctx context.Context, id int64) (*domain.Joke, error)
	ListJokes(ctx context.Context, q domain.JokeQuery) ([]domain.Joke, error)
	CountJokes(ctx context.Context, f domain.JokeFilter) (int64, error)
}
